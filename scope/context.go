// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package scope

// Context holds the undo trail shared by all containers
// created on it.
type Context struct {
	trail  []func()
	marks  []int
	frames []uint64
	serial uint64
	pops   int
}

// New creates a context at level 0.
func New() *Context {
	return &Context{
		trail: make([]func(), 0, 128),
		marks: make([]int, 0, 16)}
}

// Level returns the number of Pushes not yet Popped.
func (c *Context) Level() int {
	return len(c.marks)
}

// Push opens a new frame.
func (c *Context) Push() {
	c.serial++
	c.marks = append(c.marks, len(c.trail))
	c.frames = append(c.frames, c.serial)
}

// Pop undoes every change recorded since the last Push.
//
// Pop panics if there is no matching Push.
func (c *Context) Pop() {
	n := len(c.marks)
	if n == 0 {
		panic("Pop without Push")
	}
	c.back(c.marks[n-1])
	c.marks = c.marks[:n-1]
	c.frames = c.frames[:n-1]
	c.pops++
}

// PopTo pops until Level() == lvl.  If lvl is not smaller than
// Level(), PopTo does nothing.
func (c *Context) PopTo(lvl int) {
	if lvl < 0 {
		lvl = 0
	}
	for c.Level() > lvl {
		c.Pop()
	}
}

// Pops returns the total number of Pops performed on c.
func (c *Context) Pops() int {
	return c.pops
}

// noFrame is never the id of a frame.
const noFrame = ^uint64(0)

// frame identifies the current frame.  Distinct frames never share an id,
// even when they have the same level.
func (c *Context) frame() uint64 {
	n := len(c.frames)
	if n == 0 {
		return 0
	}
	return c.frames[n-1]
}

// OnPop registers f to be called when the current frame is
// popped.  At level 0 f is never called.
func (c *Context) OnPop(f func()) {
	if len(c.marks) == 0 {
		return
	}
	c.trail = append(c.trail, f)
}

func (c *Context) back(to int) {
	for i := len(c.trail) - 1; i >= to; i-- {
		c.trail[i]()
		c.trail[i] = nil
	}
	c.trail = c.trail[:to]
}
