// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package smtcore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Version is a semantic version packed as major<<20 | minor<<10 | patch,
// so that versions compare as integers.
type Version uint32

const (
	fieldBits = 10
	fieldMax  = 1<<fieldBits - 1
	majorMax  = 1<<(32-2*fieldBits) - 1
)

// V is the version of this module.
var V = MakeVersion(1, 2, 0)

// MakeVersion packs a version.  Out of range fields are truncated.
func MakeVersion(major, minor, patch int) Version {
	return Version(major&majorMax)<<(2*fieldBits) |
		Version(minor&fieldMax)<<fieldBits |
		Version(patch&fieldMax)
}

// ParseVersion parses "major[.minor[.patch]]" with an optional leading
// "v".  Missing fields are zero.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(strings.TrimPrefix(strings.TrimSpace(s), "v"), ".")
	if len(parts) > 3 {
		return 0, errors.Errorf("version %q: too many fields", s)
	}
	var fs [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, errors.Errorf("version %q: bad field %q", s, p)
		}
		lim := fieldMax
		if i == 0 {
			lim = majorMax
		}
		if n > lim {
			return 0, errors.Errorf("version %q: field %d exceeds %d", s, n, lim)
		}
		fs[i] = n
	}
	return MakeVersion(fs[0], fs[1], fs[2]), nil
}

func (v Version) Major() int {
	return int(v >> (2 * fieldBits))
}

func (v Version) Minor() int {
	return int(v>>fieldBits) & fieldMax
}

func (v Version) Patch() int {
	return int(v) & fieldMax
}

// Supports returns whether input written for req can be run by v: the
// major versions agree and v is not older than req.
func (v Version) Supports(req Version) bool {
	return v.Major() == req.Major() && v >= req
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}
