// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"code.hybscloud.com/either/internal/config"
	"code.hybscloud.com/either/internal/observability"
	"code.hybscloud.com/either/internal/stress"
)

// RunOptions holds flags for the run command. Zero values defer to the
// loaded configuration.
type RunOptions struct {
	*RootOptions
	Trials  int
	Workers int
	Seed    uint64
	Mix     string
	Rate    float64
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a batch of adversarial trials",
		Long: `Run a batch of adversarial trials and print the outcome report.

Each trial creates one endpoint pair and lets two goroutines act on it at
the same moment. Modes are drawn from the configured mix of
send/send, send/discard, discard/send and discard/discard.

Example:
  eitherstress run --trials 1000000 --workers 8
  eitherstress run --mix 1:0:0:1 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runStress(ctx, opts, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Trials, "trials", "n", 0, "number of trials (default from config)")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", 0, "number of worker goroutines (default from config)")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "mode selection seed (default from config)")
	cmd.Flags().Float64Var(&opts.Rate, "rate", 0, "max trials started per second (default from config, 0 = unlimited)")
	cmd.Flags().StringVar(&opts.Mix, "mix", "", "mode weights as send_send:send_discard:discard_send:discard_discard")

	return cmd
}

func runStress(ctx context.Context, opts *RunOptions, cmd *cobra.Command) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if opts.Verbose {
		cfg.Log.Level = "debug"
	}
	ropts, err := opts.apply(cfg.Stress)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	}

	logger, err := observability.SetupLogger(cfg.Log)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to set up logging", err)
	}
	defer func() { _ = logger.Sync() }()

	runner, err := stress.NewRunner(ropts, logger)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid stress options", err)
	}
	logger.Debug("resolved options",
		zap.Int("queue_capacity", ropts.QueueCapacity),
		zap.Any("mix", ropts.Mix),
		zap.Float64("rate", ropts.Rate),
	)

	rep, runErr := runner.Run(ctx)
	if err := rep.Encode(cmd.OutOrStdout(), opts.Format); err != nil {
		return WrapExitError(ExitCommandError, "failed to write report", err)
	}
	if runErr != nil {
		return WrapExitError(ExitCommandError, "run interrupted", runErr)
	}
	if err := rep.Err(); err != nil {
		return WrapExitError(ExitFailure, "stress run failed", err)
	}
	return nil
}

// apply merges flag overrides into the configured stress settings.
func (o *RunOptions) apply(c config.StressConfig) (stress.Options, error) {
	ropts := stress.Options{
		Trials:        c.Trials,
		Workers:       c.Workers,
		QueueCapacity: c.QueueCapacity,
		Seed:          c.Seed,
		Rate:          c.Rate,
		Mix: stress.Mix{
			SendSend:       c.Mix.SendSend,
			SendDiscard:    c.Mix.SendDiscard,
			DiscardSend:    c.Mix.DiscardSend,
			DiscardDiscard: c.Mix.DiscardDiscard,
		},
	}
	if o.Trials > 0 {
		ropts.Trials = o.Trials
	}
	if o.Workers > 0 {
		ropts.Workers = o.Workers
	}
	if o.Seed > 0 {
		ropts.Seed = o.Seed
	}
	if o.Rate > 0 {
		ropts.Rate = o.Rate
	}
	if o.Mix != "" {
		mix, err := parseMix(o.Mix)
		if err != nil {
			return stress.Options{}, err
		}
		ropts.Mix = mix
	}
	return ropts, nil
}

// parseMix reads four colon-separated non-negative weights.
func parseMix(s string) (stress.Mix, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 4 {
		return stress.Mix{}, fmt.Errorf("mix %q: want 4 colon-separated weights", s)
	}
	var w [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return stress.Mix{}, fmt.Errorf("mix %q: weight %q is not a non-negative integer", s, p)
		}
		w[i] = n
	}
	return stress.Mix{SendSend: w[0], SendDiscard: w[1], DiscardSend: w[2], DiscardDiscard: w[3]}, nil
}
