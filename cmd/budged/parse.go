package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/serikbay/budged/internal/aggregate"
	"github.com/serikbay/budged/internal/config"
	"github.com/serikbay/budged/internal/render"
	"github.com/serikbay/budged/internal/report"
	"github.com/serikbay/budged/internal/statement"
)

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <statement.pdf>",
		Short: "Parse a single statement PDF",
		Long: `Parse one ForteBank PDF statement and print its transactions.

By default the raw transaction listing is rendered as a table. With
--json the parsed transactions and summary totals are emitted as a
single JSON document instead.`,
		Args: cobra.ExactArgs(1),
		RunE: runParse,
	}

	// Flags
	cmd.Flags().Bool("json", false, "Emit transactions and totals as JSON")
	cmd.Flags().StringP("sort", "s", string(aggregate.SortSum), "Sort order for the listing (sum, name, date)")
	cmd.Flags().StringP("format", "f", string(render.FormatASCII), "Output format (ascii, simple)")

	// Bind to viper
	_ = viper.BindPFlag("parse.json", cmd.Flags().Lookup("json"))
	_ = viper.BindPFlag("parse.sort", cmd.Flags().Lookup("sort"))
	_ = viper.BindPFlag("parse.format", cmd.Flags().Lookup("format"))

	return cmd
}

func runParse(_ *cobra.Command, args []string) error {
	path := config.ExpandPath(args[0])
	txns, err := statement.NewParser().ParseFile(path)
	if err != nil {
		return err
	}

	if viper.GetBool("parse.json") {
		payload := struct {
			File             string                     `json:"file"`
			TransactionCount int                        `json:"transaction_count"`
			Transactions     []report.TransactionRecord `json:"transactions"`
			Totals           report.TotalsRecord        `json:"totals"`
		}{
			File:             path,
			TransactionCount: len(txns),
			Transactions:     report.Records(txns),
			Totals:           report.TotalsFor(txns),
		}
		data, marshalErr := json.MarshalIndent(payload, "", "  ")
		if marshalErr != nil {
			return fmt.Errorf("failed to encode transactions: %w", marshalErr)
		}
		fmt.Println(string(data)) //nolint:forbidigo // User-facing output
		return nil
	}

	sortKey, err := aggregate.ParseSort(viper.GetString("parse.sort"))
	if err != nil {
		return err
	}
	format, err := render.ParseFormat(viper.GetString("parse.format"))
	if err != nil {
		return err
	}

	table, err := report.Assemble(report.TypeRaw, txns, sortKey)
	if err != nil {
		return err
	}
	out, err := render.Render(table, format)
	if err != nil {
		return err
	}
	fmt.Println(out) //nolint:forbidigo // User-facing output
	return nil
}
