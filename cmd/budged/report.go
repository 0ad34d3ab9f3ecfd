package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/serikbay/budged/internal/aggregate"
	"github.com/serikbay/budged/internal/config"
	"github.com/serikbay/budged/internal/render"
	"github.com/serikbay/budged/internal/report"
	"github.com/serikbay/budged/internal/statement"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render spending reports from statement PDFs",
		Long: `Parse every PDF statement in the statements directory and render one
report per file.

Report types: raw transaction listing, spending by MCC category, or
spending by category group. Date ordering only applies to the raw
listing; aggregated reports fall back to ordering by sum.`,
		RunE: runReport,
	}

	// Flags
	cmd.Flags().StringP("report", "r", string(report.TypeGroup), "Report type (raw, mcc, group)")
	cmd.Flags().StringP("sort", "s", string(aggregate.SortSum), "Sort order (sum, name, date)")
	cmd.Flags().StringP("format", "f", string(render.FormatASCII), "Output format (ascii, simple)")
	cmd.Flags().StringP("statements-dir", "d", "./statements", "Directory containing PDF statements")
	cmd.Flags().Int("workers", statement.DefaultBatchOptions().Workers, "Number of parallel parser workers")

	// Bind to viper
	_ = viper.BindPFlag("report.type", cmd.Flags().Lookup("report"))
	_ = viper.BindPFlag("report.sort", cmd.Flags().Lookup("sort"))
	_ = viper.BindPFlag("report.format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("statements.dir", cmd.Flags().Lookup("statements-dir"))
	_ = viper.BindPFlag("report.workers", cmd.Flags().Lookup("workers"))

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	typ, err := report.ParseType(viper.GetString("report.type"))
	if err != nil {
		return err
	}
	sortKey, err := aggregate.ParseSort(viper.GetString("report.sort"))
	if err != nil {
		return err
	}
	format, err := render.ParseFormat(viper.GetString("report.format"))
	if err != nil {
		return err
	}
	// Aggregated reports have no per-transaction dates to order by.
	if typ != report.TypeRaw && sortKey == aggregate.SortDate {
		sortKey = aggregate.SortSum
	}

	dir := config.ExpandPath(viper.GetString("statements.dir"))
	paths, err := statement.FindStatements(dir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no PDF statements found in %s", dir)
	}

	slog.Info("parsing statements", "dir", dir, "files", len(paths))
	bar := newParseProgressBar(len(paths))
	results := statement.NewParser().ParseFiles(cmd.Context(), paths, statement.BatchOptions{
		Workers: viper.GetInt("report.workers"),
		Progress: func() {
			if addErr := bar.Add(1); addErr != nil {
				slog.Warn("Failed to update progress bar", "error", addErr)
			}
		},
	})

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			slog.Error("failed to parse statement", "file", res.Path, "error", res.Err)
			continue
		}

		table, asmErr := report.Assemble(typ, res.Transactions, sortKey)
		if asmErr != nil {
			return asmErr
		}
		out, renderErr := render.Render(table, format)
		if renderErr != nil {
			return renderErr
		}

		//nolint:forbidigo // User-facing output
		fmt.Printf("=== %s ===\nParsed %d transactions\n\n%s\n\n",
			filepath.Base(res.Path), len(res.Transactions), out)
	}

	if failed == len(results) {
		return fmt.Errorf("all %d statements failed to parse", failed)
	}
	return nil
}

func newParseProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Parsing statements..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(os.Stderr); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}
