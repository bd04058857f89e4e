// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package scope

// List is an append only backtrackable list.  Pop truncates it
// to its length at the matching Push.
type List[T any] struct {
	ctx *Context
	d   []T
}

// NewList creates an empty list on c.
func NewList[T any](c *Context) *List[T] {
	return &List[T]{ctx: c}
}

// Append adds x at the end of l.
func (l *List[T]) Append(x T) {
	n := len(l.d)
	l.ctx.OnPop(func() {
		var zero T
		for i := n; i < len(l.d); i++ {
			l.d[i] = zero
		}
		l.d = l.d[:n]
	})
	l.d = append(l.d, x)
}

// Len returns the length of l.
func (l *List[T]) Len() int {
	return len(l.d)
}

// At returns the i'th element.
func (l *List[T]) At(i int) T {
	return l.d[i]
}

// Items returns the current elements.  The result is only valid
// until the next modification of l.
func (l *List[T]) Items() []T {
	return l.d
}
