package model

import "github.com/shopspring/decimal"

// AggregatedRow is one line of a category or group spending breakdown.
// Built fresh per report request, never persisted.
type AggregatedRow struct {
	Label string
	Total decimal.Decimal
	Count int
}

// Totals summarizes a statement's money flow. Spend and Bonus are disjoint:
// bonus-paid lines never leak into Spend.
type Totals struct {
	Spend  decimal.Decimal // purchases paid with money
	Bonus  decimal.Decimal // bonus/cashback lines
	Income decimal.Decimal // positive credits outside purchases
	Grand  decimal.Decimal // every parsed line
}

// GrossPurchases is the full purchase volume including bonus-paid lines.
// Subtracting Bonus from it gives the money actually spent.
func (t Totals) GrossPurchases() decimal.Decimal {
	return t.Spend.Add(t.Bonus)
}

// CellKind tags a table cell so renderers know how to align and format it.
type CellKind int

const (
	// CellText is a left-aligned text cell.
	CellText CellKind = iota
	// CellNumber is a right-aligned amount cell, rendered with two decimals.
	CellNumber
	// CellCount is a right-aligned integer cell.
	CellCount
)

// Cell is a single typed table cell.
type Cell struct {
	Text   string
	Number decimal.Decimal
	Kind   CellKind
}

// TextCell builds a text cell.
func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// NumberCell builds an amount cell.
func NumberCell(d decimal.Decimal) Cell {
	return Cell{Kind: CellNumber, Number: d}
}

// CountCell builds an integer cell.
func CountCell(n int) Cell {
	return Cell{Kind: CellCount, Number: decimal.NewFromInt(int64(n))}
}

// Table is the presentation-ready report shape handed to renderers: a
// header descriptor plus ordered rows of typed cells. Summary rows are
// kept separate so renderers can set them off from the data.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]Cell
	Summary [][]Cell
}
