// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command smtcore checks scenarios with an smtcore.Core.
package main

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-air/smtcore/config"
)

type rootFlags struct {
	config   string
	logLevel string
	cfg      config.Config
}

func newRootCmd() *cobra.Command {
	rf := &rootFlags{}
	rootCmd := &cobra.Command{
		Use:   "smtcore",
		Short: "smtcore",
		Long: `smtcore checks string constraints and quantified formulas over
finite models, reporting conflicts and instantiation lemmas.`,
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(rf.config)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				if _, err := log.ParseLevel(rf.logLevel); err != nil {
					return errors.Wrap(err, "--log-level")
				}
				cfg.Log.Level = rf.logLevel
			}
			rf.cfg = cfg
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&rf.config, "config", "", "path of a YAML configuration")
	rootCmd.PersistentFlags().StringVar(&rf.logLevel, "log-level", "info", "log level (overrides the configuration)")

	rootCmd.AddCommand(newCheckCmd(rf))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if ec, ok := err.(exitCode); ok {
			os.Exit(int(ec))
		}
		log.Error(err)
		os.Exit(1)
	}
}
