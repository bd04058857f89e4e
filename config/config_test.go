// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/smtcore/quant"
)

func write(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "smtcore.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadDefault(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	cfg, err := Load("")
	require.NoError(t, err)
	if d := cmp.Diff(Default(), cfg); d != "" {
		t.Errorf("defaults (-want +got):\n%s", d)
	}
}

func TestLoadMerge(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	p := write(t, `
log:
  level: debug
quant:
  mbqi: fmc
  oneInstPerRound: true
strings:
  cardinality: false
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	exp := Default()
	exp.Log.Level = "debug"
	exp.Quant.Mbqi = quant.MbqiFmc
	exp.Quant.OneInstPerRound = true
	exp.Strings.Cardinality = false
	if d := cmp.Diff(exp, cfg); d != "" {
		t.Errorf("merged (-want +got):\n%s", d)
	}
	assert.Equal(t, logrus.DebugLevel, cfg.Logger().GetLevel())
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "trace")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(write(t, "quant:\n  bogus: 1\n"))
	assert.Error(t, err)

	_, err = Load(write(t, "quant:\n  mbqi: nope\n"))
	assert.ErrorContains(t, err, "nope")

	_, err = Load(write(t, "log:\n  level: loud\n"))
	assert.Error(t, err)

	_, err = Load(write(t, "strings:\n  alphabetCard: 0\n"))
	assert.Error(t, err)
}
