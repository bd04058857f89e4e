// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package z contains the small value types shared by all smtcore
// packages: hash-consed term handles and sorts.
package z
