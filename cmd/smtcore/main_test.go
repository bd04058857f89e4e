// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const conflicting = `
vars: [x, y, v]
facts:
  - x == "ab" + y
  - x == "ac" + v
`

const quantified = `
sorts:
  U: [a, b]
quantifiers:
  - forall: func(u U) bool { return P(u) }
`

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func write(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestCheckUnsat(t *testing.T) {
	out, err := execute(t, "", "check", write(t, "c.yaml", conflicting))
	require.NoError(t, err)
	assert.Contains(t, out, "c conflict ")
	assert.True(t, strings.HasSuffix(out, "s UNSATISFIABLE\n"), out)
}

func TestCheckSatcomp(t *testing.T) {
	_, err := execute(t, "", "check", "--satcomp", write(t, "c.yaml", conflicting))
	assert.Equal(t, exitCode(20), err)

	_, err = execute(t, quantified, "check", "--satcomp", "-q", "-")
	assert.Equal(t, exitCode(10), err)
}

func TestCheckRoundsStdin(t *testing.T) {
	out, err := execute(t, quantified, "check", "--stats", "--model", "-")
	require.NoError(t, err)
	exp := []string{
		"c lemma (=> (forall ((u U)) (P u)) (P a))",
		"c lemma (=> (forall ((u U)) (P u)) (P b))",
		"c round 1 effort last-call outcome lemmas",
		"c round 2 effort last-call outcome none",
		"s SATISFIABLE",
		"v (forall ((u U)) (P u))",
		"v (P a)",
		"v (P b)",
		"c tried 2 added 0 total 2",
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), len(exp))
	assert.Equal(t, exp, lines[:len(exp)])
}

func TestCheckGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(conflicting))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	out, err := execute(t, "", "check", "-q", write(t, "c.yaml.gz", buf.String()))
	require.NoError(t, err)
	assert.Equal(t, "s UNSATISFIABLE\n", out)
}

func TestCheckErrors(t *testing.T) {
	_, err := execute(t, "", "check", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = execute(t, "", "check", write(t, "bad.yaml", "facts: [\"x == y\"]\n"))
	assert.ErrorContains(t, err, "undeclared")

	_, err = execute(t, "", "check", "--log-level", "loud", write(t, "c.yaml", conflicting))
	assert.Error(t, err)

	_, err = execute(t, "", "check", "--config", write(t, "cfg.yaml", "quant:\n  mbqi: nope\n"), "-")
	assert.Error(t, err)

	_, err = execute(t, "", "check")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "smtcore 1.2.0\n", out)
}
