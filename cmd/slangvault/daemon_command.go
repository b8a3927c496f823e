package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"slangvault/internal/logging"
	"slangvault/internal/runlock"
	"slangvault/internal/runner"
)

func newDaemonCommand(ctx *commandContext) *cobra.Command {
	var schedule string

	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Run fetch cycles on a cron schedule until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if schedule == "" {
				schedule = cfg.Run.Schedule
			}

			var lock *runlock.Lock
			if cfg.Run.LockEnabled {
				lock, err = runlock.Acquire(cfg.Paths.DataDir)
				if err != nil {
					return err
				}
				defer lock.Release()
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			scheduler := cron.New()
			// Each tick builds a fresh runner so the seen set and log file
			// follow the run, not the daemon lifetime.
			_, err = scheduler.AddFunc(schedule, func() {
				logger, closer, err := logging.NewForRun(cfg, time.Now())
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "set up logging: %v\n", err)
					return
				}
				if closer != nil {
					defer closer.Close()
				}
				if _, err := runner.New(cfg, logger).Run(runCtx, 0); err != nil {
					logger.Warn("run ended early", logging.Error(err))
				}
			})
			if err != nil {
				return fmt.Errorf("invalid schedule %q: %w", schedule, err)
			}

			scheduler.Start()
			fmt.Fprintf(cmd.OutOrStdout(), "Scheduled fetch runs (%s); press Ctrl-C to stop\n", schedule)
			<-runCtx.Done()
			<-scheduler.Stop().Done()
			return nil
		},
	}

	cmd.Flags().StringVar(&schedule, "schedule", "", "Cron expression (default from config)")
	return cmd
}
