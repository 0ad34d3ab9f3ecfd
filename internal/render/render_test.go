package render

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serikbay/budged/internal/common"
	"github.com/serikbay/budged/internal/model"
)

func groupTable() model.Table {
	return model.Table{
		Title:   "Grouped by Category Group (sorted by sum)",
		Headers: []string{"Group", "Sum (KZT)", "Count"},
		Rows: [][]model.Cell{
			{
				model.TextCell("Food & Dining"),
				model.NumberCell(decimal.RequireFromString("-5490")),
				model.CountCell(2),
			},
			{
				model.TextCell("Uncategorized"),
				model.NumberCell(decimal.RequireFromString("82950.86")),
				model.CountCell(2),
			},
		},
		Summary: [][]model.Cell{
			{
				model.TextCell("Total purchases"),
				model.NumberCell(decimal.RequireFromString("-6990")),
				model.TextCell(""),
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{name: "ascii", input: "ascii", want: FormatASCII},
		{name: "simple", input: "simple", want: FormatSimple},
		{name: "unknown", input: "html", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidOption)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, format)
		})
	}
}

func TestRender(t *testing.T) {
	for _, format := range []Format{FormatASCII, FormatSimple} {
		out, err := Render(groupTable(), format)
		require.NoError(t, err)
		assert.NotEmpty(t, out)
	}

	_, err := Render(groupTable(), Format("html"))
	assert.ErrorIs(t, err, common.ErrInvalidOption)
}

func TestASCII(t *testing.T) {
	out := ASCII(groupTable())
	lines := strings.Split(out, "\n")

	require.Greater(t, len(lines), 5)
	assert.Equal(t, "Grouped by Category Group (sorted by sum)", lines[0], "title sits above the frame")
	assert.True(t, strings.HasPrefix(lines[1], "┌"), "frame starts under the title")
	assert.True(t, strings.HasSuffix(lines[len(lines)-1], "┘"))

	assert.Contains(t, out, "Group")
	assert.Contains(t, out, "Food & Dining")
	assert.Contains(t, out, "-5,490.00", "amounts carry thousands separators")
	assert.Contains(t, out, "82,950.86")
	assert.Contains(t, out, "Total purchases")
}

func TestASCIIWithoutTitle(t *testing.T) {
	table := groupTable()
	table.Title = ""

	out := ASCII(table)
	assert.True(t, strings.HasPrefix(out, "┌"))
}

func TestSimple(t *testing.T) {
	want := strings.Join([]string{
		"--- Grouped by Category Group (sorted by sum) ---",
		"  Food & Dining  -5490.00 KZT  (2)",
		"  Uncategorized  82950.86 KZT  (2)",
		"  " + strings.Repeat("—", 40),
		"  Total purchases:        -6990.00 KZT",
	}, "\n")

	assert.Equal(t, want, Simple(groupTable()))
}

func TestSimpleWithoutSummary(t *testing.T) {
	table := groupTable()
	table.Summary = nil

	out := Simple(table)
	assert.NotContains(t, out, "—")
	assert.NotContains(t, out, "Total purchases")
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "0", want: "0.00"},
		{input: "-950", want: "-950.00"},
		{input: "-30000", want: "-30,000.00"},
		{input: "112950.86", want: "112,950.86"},
		{input: "1234567.5", want: "1,234,567.50"},
		{input: "-0.1", want: "-0.10"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, formatAmount(decimal.RequireFromString(tt.input)))
		})
	}
}
