// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package scope

// Map is a backtrackable map.
type Map[K comparable, V any] struct {
	ctx *Context
	m   map[K]V
}

// NewMap creates an empty map on c.
func NewMap[K comparable, V any](c *Context) *Map[K, V] {
	return &Map[K, V]{ctx: c, m: make(map[K]V)}
}

// Get returns the value for k and whether it is present.
func (m *Map[K, V]) Get(k K) (V, bool) {
	v, ok := m.m[k]
	return v, ok
}

// Has returns whether k is present.
func (m *Map[K, V]) Has(k K) bool {
	_, ok := m.m[k]
	return ok
}

// Len returns the number of keys present.
func (m *Map[K, V]) Len() int {
	return len(m.m)
}

// Set maps k to v until the current frame is popped.
func (m *Map[K, V]) Set(k K, v V) {
	old, ok := m.m[k]
	m.ctx.OnPop(func() {
		if ok {
			m.m[k] = old
		} else {
			delete(m.m, k)
		}
	})
	m.m[k] = v
}

// Range calls f for every entry until f returns false.  Order is
// unspecified.
func (m *Map[K, V]) Range(f func(K, V) bool) {
	for k, v := range m.m {
		if !f(k, v) {
			return
		}
	}
}
