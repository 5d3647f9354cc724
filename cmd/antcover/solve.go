// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/antcover/colony"
	"github.com/katalvlaran/antcover/config"
	"github.com/katalvlaran/antcover/parallel"
	"github.com/katalvlaran/antcover/scpio"
	"github.com/katalvlaran/antcover/setcover"
	"github.com/katalvlaran/antcover/store"
)

type solveFlags struct {
	dir           string
	file          string
	out           string
	metricsAddr   string
	trace         bool
	runs          int
	deadline      time.Duration
	seed          int64
	iterated      bool
	neighbourhood string
}

func newSolveCmd(g *globalFlags) *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve (-f instance | -d directory)",
		Short: "Solve one instance file or every instance in a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, g)
			if err != nil {
				return err
			}
			if err := f.overlay(cmd, &cfg); err != nil {
				return err
			}

			return runSolve(cmd, cfg, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.dir, "dir", "d", "", "directory of instance files, processed smallest first")
	fl.StringVarP(&f.file, "file", "f", "", "single instance file")
	fl.StringVarP(&f.out, "out", "o", "", "directory for <instance>.sol files (stdout when empty)")
	fl.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	fl.BoolVar(&f.trace, "trace", false, "export OpenTelemetry spans to stderr")
	fl.IntVar(&f.runs, "runs", 0, "parallel colony runs (overrides config)")
	fl.DurationVar(&f.deadline, "deadline", 0, "wall-clock budget per instance (overrides config)")
	fl.Int64Var(&f.seed, "seed", 0, "parent random seed (overrides config)")
	fl.BoolVar(&f.iterated, "iterated", false, "seed ants from the best known cover (overrides config)")
	fl.StringVar(&f.neighbourhood, "neighbourhood", "", "all | sample (overrides config)")
	cmd.MarkFlagsMutuallyExclusive("dir", "file")
	cmd.MarkFlagsOneRequired("dir", "file")

	return cmd
}

// overlay applies explicitly set flags over cfg and re-validates.
func (f solveFlags) overlay(cmd *cobra.Command, cfg *config.Config) error {
	changed := cmd.Flags().Changed
	if changed("runs") {
		cfg.Run.Runs = f.runs
	}
	if changed("deadline") {
		cfg.Run.Deadline = f.deadline
	}
	if changed("seed") {
		cfg.Run.Seed = f.seed
	}
	if changed("iterated") {
		cfg.Colony.Iterated = f.iterated
	}
	if changed("neighbourhood") {
		cfg.Colony.Neighbourhood = f.neighbourhood
	}

	return cfg.Validate()
}

func runSolve(cmd *cobra.Command, cfg config.Config, f solveFlags) error {
	if f.metricsAddr != "" {
		stop := startMetrics(f.metricsAddr)
		defer stop()
	}
	if f.trace {
		stop, err := startTracing(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer stop()
	}

	var st *store.Store
	if cfg.Store.Enabled {
		var err error
		if st, err = store.Open(cfg.StoreOptions()); err != nil {
			return err
		}
		defer st.Close()
	}

	files := []string{f.file}
	if f.dir != "" {
		var err error
		if files, err = scpio.ListInstances(f.dir); err != nil {
			return err
		}
	}

	var failed []error
	for _, path := range files {
		if err := solveFile(cmd, cfg, st, f.out, path); err != nil {
			if setcover.KindOf(err) == setcover.KindInvalidSolution || len(files) == 1 {
				return err
			}
			log.WithError(err).WithField("file", path).Warn("Error processing instance")
			failed = append(failed, err)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d instances failed: %w", len(failed), len(files), errors.Join(failed...))
	}

	return nil
}

// solveFile runs the whole pipeline on one instance file.
func solveFile(cmd *cobra.Command, cfg config.Config, st *store.Store, outDir, path string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	name := scpio.InstanceName(path)
	entry := log.WithField("instance", name)

	p, err := scpio.ReadInstanceFile(path, cfg.SetcoverOptions())
	if err != nil {
		return err
	}
	ix, err := p.Build(ctx)
	if err != nil {
		return err
	}
	env := setcover.NewEnvironment(ix)

	var opts []colony.Option
	if st != nil {
		rec, err := st.Get(name)
		switch {
		case err == nil:
			entry.WithField("cost", rec.Cost).Info("Loaded stored solution")
			opts = append(opts, colony.WithIncumbent(rec.Solution))
		case !errors.Is(err, store.ErrNotFound):
			return err
		}
	}
	factory, err := colony.Factory(cfg.Colony, opts...)
	if err != nil {
		return err
	}
	coord, err := parallel.NewCoordinator(cfg.ParallelOptions())
	if err != nil {
		return err
	}

	res, err := coord.Solve(ctx, env, factory)
	if err != nil {
		return err
	}
	if err := env.ValidateSolution(res.Solution); err != nil {
		return err
	}

	if outDir == "" {
		if err := scpio.WriteSolution(cmd.OutOrStdout(), res.Solution); err != nil {
			return err
		}
	} else if _, err := scpio.WriteSolutionFile(outDir, name, res.Solution); err != nil {
		return err
	}

	if st != nil {
		if _, err := st.Put(store.Record{
			Instance:      name,
			Solution:      res.Solution,
			NumSamples:    ix.NumSamples(),
			NumCandidates: ix.NumCandidates(),
			RunID:         res.RunID.String(),
		}); err != nil {
			return err
		}
	}
	entry.WithFields(logrus.Fields{
		"cost":    res.Cost,
		"elapsed": res.Elapsed,
	}).Info("Instance solved")

	return nil
}
