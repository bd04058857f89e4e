// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package scope

// Value is a single backtrackable cell.  The previous content is
// saved at most once per frame.  A cell created inside a frame reverts
// to its initial content when that frame is popped.
type Value[T any] struct {
	ctx   *Context
	v     T
	frame uint64
}

// NewValue creates a cell on c holding init.
func NewValue[T any](c *Context, init T) *Value[T] {
	return &Value[T]{ctx: c, v: init, frame: noFrame}
}

// Get returns the current content.
func (v *Value[T]) Get() T {
	return v.v
}

// Set replaces the content until the current frame is popped.
func (v *Value[T]) Set(x T) {
	cur := v.ctx.frame()
	if v.frame != cur {
		old, oldFrame := v.v, v.frame
		v.ctx.OnPop(func() {
			v.v = old
			v.frame = oldFrame
		})
		v.frame = cur
	}
	v.v = x
}
