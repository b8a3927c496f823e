package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"slangvault/internal/logging"
	"slangvault/internal/runlock"
	"slangvault/internal/runner"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	var requests int

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Run one fetch-and-store cycle",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			logger, closer, err := logging.NewForRun(cfg, time.Now())
			if err != nil {
				return fmt.Errorf("set up logging: %w", err)
			}
			if closer != nil {
				defer closer.Close()
			}

			if cfg.Run.LockEnabled {
				lock, err := runlock.Acquire(cfg.Paths.DataDir)
				if err != nil {
					return err
				}
				defer lock.Release()
			}

			summary, err := runner.New(cfg, logger).Run(cmd.Context(), requests)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Fetched %d records across %d batches (%d skipped)\n",
				summary.Fetched, summary.Batches, summary.SkippedBatches)
			fmt.Fprintf(out, "Stored %d new entries, skipped %d duplicates, dropped %d malformed records\n",
				summary.Admitted, summary.Duplicates, summary.Dropped)
			return nil
		},
	}

	cmd.Flags().IntVarP(&requests, "requests", "n", 0, "Batches to fetch this run (default from config)")
	return cmd
}
