package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/serikbay/budged/internal/catalog"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Show the MCC classification table",
		Long:  `Display every known MCC code with its category name and spending group.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			// Header
			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				headerStyle.Render("MCC"),
				headerStyle.Render("Category"),
				headerStyle.Render("Group"))
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				strings.Repeat("-", 4),
				strings.Repeat("-", 40),
				strings.Repeat("-", 16))

			for _, e := range catalog.Entries() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.Code, e.Category, e.Group)
			}
			return nil
		},
	}
}
