// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package config holds the configuration of a Core, loaded from YAML.
package config

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/go-air/smtcore/quant"
	"github.com/go-air/smtcore/theory/strs"
)

// EnvLogLevel overrides Log.Level when set.
const EnvLogLevel = "SMTCORE_LOG_LEVEL"

// Log configures logging.
type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Config is the configuration of a Core.
type Config struct {
	Log     Log           `yaml:"log"`
	Quant   quant.Options `yaml:"quant"`
	Strings strs.Options  `yaml:"strings"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Log:     Log{Level: "info"},
		Quant:   quant.DefaultOptions(),
		Strings: strs.DefaultOptions()}
}

// Load reads the file at path over the defaults.  An empty path gives the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrap(err, "read config")
		}
		if err := Parse(data, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "config %s", path)
		}
	}
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.Log.Level = lvl
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// Parse decodes YAML data over cfg.  Unknown fields are errors.
func Parse(data []byte, cfg *Config) error {
	if len(data) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return errors.Wrap(err, "decode yaml")
	}
	return nil
}

// Validate checks c for consistency.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log.level")
	}
	if err := c.Quant.Validate(); err != nil {
		return errors.Wrap(err, "quant")
	}
	if c.Strings.AlphabetCard < 1 {
		return errors.Errorf("strings.alphabetCard must be positive, got %d", c.Strings.AlphabetCard)
	}
	return nil
}

// Logger returns a logger configured by c.Log.
func (c *Config) Logger() *logrus.Logger {
	l := logrus.New()
	if lvl, err := logrus.ParseLevel(c.Log.Level); err == nil {
		l.SetLevel(lvl)
	}
	if c.Log.JSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	return l
}
