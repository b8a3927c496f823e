package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"slangvault/internal/logging"
	"slangvault/internal/stats"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var recompute bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the archive summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			reporter := stats.NewReporter(cfg.Paths.DataDir, cfg.Paths.DictDir, cfg.Paths.StatsPath, logging.NewNop())

			report, err := reporter.Read()
			if recompute || errors.Is(err, fs.ErrNotExist) {
				report, err = reporter.Recompute()
			}
			if err != nil {
				return fmt.Errorf("load stats: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON || !stdoutIsTerminal() {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			fmt.Fprintf(out, "Last updated: %s\n", report.LastUpdated.Format("2006-01-02 15:04:05 MST"))
			fmt.Fprintf(out, "Unique entries: %d across %d daily files and %d index files\n\n",
				report.TotalUniqueEntries, report.DailyFiles, report.DictionaryFiles)

			fmt.Fprintln(out, renderLetterTable(report))
			fmt.Fprintln(out, renderDailyTable(report))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the report as JSON")
	cmd.Flags().BoolVar(&recompute, "recompute", false, "Rebuild the report from disk instead of reading the stats file")
	return cmd
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func renderLetterTable(report stats.Report) string {
	letters := make([]string, 0, len(report.EntriesByLetter))
	for letter := range report.EntriesByLetter {
		letters = append(letters, letter)
	}
	sort.Strings(letters)

	rows := make([][]string, 0, len(letters))
	for _, letter := range letters {
		s := report.EntriesByLetter[letter]
		rows = append(rows, []string{letter, strconv.Itoa(s.Words), strconv.Itoa(s.Definitions)})
	}
	return renderTable(
		[]string{"Letter", "Words", "Definitions"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight},
	)
}

func renderDailyTable(report stats.Report) string {
	dates := make([]string, 0, len(report.DailyBreakdown))
	for date := range report.DailyBreakdown {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	rows := make([][]string, 0, len(dates))
	for _, date := range dates {
		rows = append(rows, []string{date, strconv.Itoa(report.DailyBreakdown[date])})
	}
	return renderTable(
		[]string{"Date", "Entries"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	)
}
