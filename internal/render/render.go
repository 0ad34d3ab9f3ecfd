// Package render draws report tables for the terminal. The ascii format
// is a box-drawing table; the simple format is indented plain text that
// survives copy-paste into anything. Both consume model.Table and never
// recompute a number.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/serikbay/budged/internal/common"
	"github.com/serikbay/budged/internal/model"
)

// Format selects the terminal rendering of a report table.
type Format string

const (
	// FormatASCII draws a box-drawing table.
	FormatASCII Format = "ascii"
	// FormatSimple prints indented plain text.
	FormatSimple Format = "simple"
)

// ParseFormat validates an output format supplied by an outer layer.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatASCII, FormatSimple:
		return Format(s), nil
	default:
		return "", common.NewInvalidOption("output format", s)
	}
}

// Render draws the table in the requested format.
func Render(t model.Table, format Format) (string, error) {
	switch format {
	case FormatASCII:
		return ASCII(t), nil
	case FormatSimple:
		return Simple(t), nil
	default:
		return "", common.NewInvalidOption("output format", string(format))
	}
}

// ASCII renders the table with box-drawing borders, the title above and
// the summary rows inside the frame after a blank spacer row.
func ASCII(t model.Table) string {
	rows, kinds := flatten(t)

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(t.Headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(kinds) && col < len(kinds[row]) && kinds[row][col] != model.CellText {
				return numberStyle
			}
			return cellStyle
		})

	if t.Title == "" {
		return tbl.Render()
	}
	return t.Title + "\n" + tbl.Render()
}

// flatten turns typed cells into strings for the table widget, keeping a
// parallel kind matrix for alignment. Summary rows follow the data after
// one blank row, exactly as wide as the header.
func flatten(t model.Table) (rows [][]string, kinds [][]model.CellKind) {
	appendRow := func(cells []model.Cell) {
		row := make([]string, len(cells))
		kindRow := make([]model.CellKind, len(cells))
		for i, c := range cells {
			row[i] = formatCell(c)
			kindRow[i] = c.Kind
		}
		rows = append(rows, row)
		kinds = append(kinds, kindRow)
	}

	for _, cells := range t.Rows {
		appendRow(cells)
	}
	if len(t.Summary) > 0 {
		rows = append(rows, make([]string, len(t.Headers)))
		kinds = append(kinds, make([]model.CellKind, len(t.Headers)))
		for _, cells := range t.Summary {
			appendRow(cells)
		}
	}
	return rows, kinds
}

func formatCell(c model.Cell) string {
	switch c.Kind {
	case model.CellNumber:
		return formatAmount(c.Number)
	case model.CellCount:
		return c.Number.String()
	default:
		return c.Text
	}
}

// Simple renders the table as indented plain text with a footer rule
// before the summary lines.
func Simple(t model.Table) string {
	var lines []string
	if t.Title != "" {
		lines = append(lines, fmt.Sprintf("--- %s ---", t.Title))
	}
	for _, row := range t.Rows {
		lines = append(lines, "  "+simpleRow(row))
	}
	if len(t.Summary) > 0 {
		lines = append(lines, "  "+strings.Repeat("—", 40))
		for _, row := range t.Summary {
			label, amount := summaryParts(row)
			lines = append(lines, fmt.Sprintf("  %-24s%s KZT", label+":", amount))
		}
	}
	return strings.Join(lines, "\n")
}

func simpleRow(row []model.Cell) string {
	parts := make([]string, 0, len(row))
	for _, c := range row {
		switch c.Kind {
		case model.CellNumber:
			parts = append(parts, c.Number.StringFixed(2)+" KZT")
		case model.CellCount:
			parts = append(parts, "("+c.Number.String()+")")
		default:
			if c.Text != "" {
				parts = append(parts, c.Text)
			}
		}
	}
	return strings.Join(parts, "  ")
}

func summaryParts(row []model.Cell) (label, amount string) {
	for _, c := range row {
		switch {
		case c.Kind == model.CellNumber:
			amount = c.Number.StringFixed(2)
		case label == "" && c.Text != "":
			label = c.Text
		}
	}
	return label, amount
}

// formatAmount renders a decimal with two fixed decimals and comma
// thousands separators, e.g. -30000 becomes "-30,000.00".
func formatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}
