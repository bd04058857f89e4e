// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "fmt"

// Sort identifies the sort (type) of a term.
type Sort uint16

// Builtin sorts.  Uninterpreted sorts are numbered from
// SortFirstUser on.
const (
	SortNull Sort = iota
	SortBool
	SortInt
	SortString
	SortRegLan
	SortFirstUser
)

// IsBuiltin returns whether s is one of the theory sorts.
func (s Sort) IsBuiltin() bool {
	return s > SortNull && s < SortFirstUser
}

// IsUninterpreted returns whether s is a declared sort.
func (s Sort) IsUninterpreted() bool {
	return s >= SortFirstUser
}

func (s Sort) String() string {
	switch s {
	case SortNull:
		return "snull"
	case SortBool:
		return "Bool"
	case SortInt:
		return "Int"
	case SortString:
		return "String"
	case SortRegLan:
		return "RegLan"
	}
	return fmt.Sprintf("S%d", uint16(s-SortFirstUser))
}
