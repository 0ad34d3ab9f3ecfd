package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/serikbay/budged/internal/config"
	"github.com/serikbay/budged/internal/statement"
)

func statementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "statements",
		Short: "List statement PDFs in the statements directory",
		RunE:  runStatements,
	}

	cmd.Flags().StringP("statements-dir", "d", "./statements", "Directory containing PDF statements")
	_ = viper.BindPFlag("statements.dir", cmd.Flags().Lookup("statements-dir"))

	return cmd
}

func runStatements(_ *cobra.Command, _ []string) error {
	dir := config.ExpandPath(viper.GetString("statements.dir"))
	paths, err := statement.FindStatements(dir)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		fmt.Printf("No PDF statements found in %s\n", dir) //nolint:forbidigo // User-facing output
		return nil
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	fmt.Println(titleStyle.Render(fmt.Sprintf("Statements in %s", dir))) //nolint:forbidigo // User-facing output

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() {
		if flushErr := w.Flush(); flushErr != nil {
			slog.Error("failed to flush table writer", "error", flushErr)
		}
	}()

	for _, p := range paths {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", filepath.Base(p), p); err != nil {
			return fmt.Errorf("failed to write statement row: %w", err)
		}
	}
	return nil
}
