// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"compress/bzip2"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// path2Reader opens the scenario at p, "-" meaning stdin.  Files ending in
// .gz or .bz2 are decompressed.
func path2Reader(p string, stdin io.Reader) (io.ReadCloser, error) {
	if p == "-" {
		return io.NopCloser(stdin), nil
	}
	f, e := os.Open(p)
	if e != nil {
		return nil, errors.Wrap(e, "open scenario")
	}
	if strings.HasSuffix(p, ".gz") {
		r, e := gzip.NewReader(f)
		if e != nil {
			f.Close()
			return nil, errors.Wrapf(e, "%s", p)
		}
		return readCloser{r, f}, nil
	}
	if strings.HasSuffix(p, ".bz2") {
		return readCloser{bzip2.NewReader(f), f}, nil
	}
	return f, nil
}

type readCloser struct {
	io.Reader
	f *os.File
}

func (r readCloser) Close() error {
	return r.f.Close()
}
