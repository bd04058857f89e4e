// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/go-air/smtcore"
	"github.com/go-air/smtcore/inter"
	"github.com/go-air/smtcore/scenario"
)

// exitCode is returned by a command which wants the process to exit with
// a particular code.
type exitCode int

func (e exitCode) Error() string {
	return fmt.Sprintf("exit %d", int(e))
}

type checkFlags struct {
	timeout time.Duration
	model   bool
	satcomp bool
	stats   bool
	quiet   bool
}

func newCheckCmd(rf *rootFlags) *cobra.Command {
	cf := &checkFlags{}
	cmd := &cobra.Command{
		Use:   "check <scenario.yaml>",
		Short: "Check a scenario",
		Long: `Check reads a scenario from a YAML file, or stdin if the path is "-",
asserts its facts and quantified formulas and checks them in rounds until
the status is known or no more lemmas are produced.

        $ smtcore check --stats scenario.yaml
        `,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := path2Reader(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer r.Close()
			sc, err := scenario.Decode(r)
			if err != nil {
				return errors.Wrap(err, args[0])
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if cf.timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, cf.timeout)
				defer cancel()
			}
			c := smtcore.New(rf.cfg)
			if err := sc.Apply(c); err != nil {
				return errors.Wrap(err, args[0])
			}
			res, err := run(ctx, cmd.OutOrStdout(), c, sc.NumRounds(), cf)
			if err != nil {
				return err
			}
			return handleExit(cf, res.Status)
		},
	}
	cf.addFlags(cmd.Flags())
	return cmd
}

func (cf *checkFlags) addFlags(fs *pflag.FlagSet) {
	fs.DurationVar(&cf.timeout, "timeout", 30*time.Second, "timeout")
	fs.BoolVar(&cf.model, "model", false, "output the values of the atoms")
	fs.BoolVar(&cf.satcomp, "satcomp", false, "if true, exit 10 sat, 20 unsat")
	fs.BoolVar(&cf.stats, "stats", false, "if true, print some statistics after checking")
	fs.BoolVarP(&cf.quiet, "quiet", "q", false, "do not output conflicts and lemmas")
}

// run checks c up to rounds times, stopping once the status is known or a
// round adds nothing.
func run(ctx context.Context, w io.Writer, c *smtcore.Core, rounds int, cf *checkFlags) (smtcore.Result, error) {
	st := c.Store()
	var res smtcore.Result
	nc, nl := 0, 0
	for i := 1; i <= rounds; i++ {
		var err error
		res, err = c.Check(ctx)
		if err != nil {
			return res, err
		}
		if !cf.quiet {
			for _, e := range c.Conflicts()[nc:] {
				fmt.Fprintf(w, "c conflict %s\n", st.String(e))
			}
			for _, l := range c.Lemmas()[nl:] {
				fmt.Fprintf(w, "c lemma %s\n", st.String(l))
			}
		}
		nc, nl = res.Conflicts, res.Lemmas
		if cf.stats {
			fmt.Fprintf(w, "c round %d effort %s outcome %s\n", i, res.Effort, res.Outcome)
		}
		if res.Status != smtcore.Unknown || res.Outcome == inter.None {
			break
		}
	}
	outputResult(w, res.Status)
	if cf.model && res.Status != smtcore.Unsat {
		outputModel(w, c)
	}
	if cf.stats {
		b := res.Budget
		fmt.Fprintf(w, "c tried %d added %d total %d\n", b.Tried, b.Added, b.Total)
		fmt.Fprintf(w, "c conflicts %d lemmas %d checks %d incomplete %t\n",
			res.Conflicts, res.Lemmas, c.Checks(), res.Incomplete)
	}
	return res, nil
}

func outputResult(w io.Writer, s smtcore.Status) {
	switch s {
	case smtcore.Sat:
		fmt.Fprintf(w, "s SATISFIABLE\n")
	case smtcore.Unsat:
		fmt.Fprintf(w, "s UNSATISFIABLE\n")
	default:
		fmt.Fprintf(w, "s UNKNOWN\n")
	}
}

func outputModel(w io.Writer, c *smtcore.Core) {
	st := c.Store()
	for _, a := range c.Atoms() {
		v, ok := c.Value(a)
		if !ok {
			continue
		}
		if v {
			fmt.Fprintf(w, "v %s\n", st.String(a))
		} else {
			fmt.Fprintf(w, "v %s\n", st.String(st.Not(a)))
		}
	}
}

func handleExit(cf *checkFlags, s smtcore.Status) error {
	if !cf.satcomp {
		return nil
	}
	switch s {
	case smtcore.Sat:
		return exitCode(10)
	case smtcore.Unsat:
		return exitCode(20)
	}
	return nil
}
