// Package report assembles parsed transactions into presentation-ready
// tables. A report is either a raw per-transaction listing or a spending
// breakdown by category or group; every shape carries the same summary
// footer so the purchase, bonus and net figures always reconcile.
package report

import (
	"fmt"
	"strings"

	"github.com/serikbay/budged/internal/aggregate"
	"github.com/serikbay/budged/internal/common"
	"github.com/serikbay/budged/internal/model"
)

// Type selects the report shape.
type Type string

const (
	// TypeRaw lists every transaction with its date and amount.
	TypeRaw Type = "raw"
	// TypeMCC breaks spending down by MCC category.
	TypeMCC Type = "mcc"
	// TypeGroup breaks spending down by spending group.
	TypeGroup Type = "group"
)

// ParseType validates a report type supplied by an outer layer.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeRaw, TypeMCC, TypeGroup:
		return Type(s), nil
	default:
		return "", common.NewInvalidOption("report type", s)
	}
}

const dateLayout = "02.01.2006"

// Footer labels shared by every report shape.
const (
	labelTotalPurchases = "Total purchases"
	labelSavedBonuses   = "Saved with bonuses"
	labelNetPurchases   = "Net purchases"
	labelGrandTotal     = "Grand total"
)

// Assemble builds the report table of the given type from parsed
// transactions. The input slice is never reordered; raw listings sort a
// copy. Date sort only makes sense for raw listings, so aggregated
// reports reject it.
func Assemble(typ Type, txns []model.Transaction, sortKey aggregate.Sort) (model.Table, error) {
	switch typ {
	case TypeRaw:
		return assembleRaw(txns, sortKey)
	case TypeMCC:
		return assembleAggregated(txns, aggregate.KeyMCC, sortKey)
	case TypeGroup:
		return assembleAggregated(txns, aggregate.KeyGroup, sortKey)
	default:
		return model.Table{}, common.NewInvalidOption("report type", string(typ))
	}
}

func assembleRaw(txns []model.Transaction, sortKey aggregate.Sort) (model.Table, error) {
	sorted := append([]model.Transaction(nil), txns...)
	if err := aggregate.SortTransactions(sorted, sortKey); err != nil {
		return model.Table{}, err
	}

	table := model.Table{
		Title:   title("Raw Transactions", sortKey),
		Headers: []string{"Date", "Type", "Description", "MCC", "Sum (KZT)"},
		Rows:    make([][]model.Cell, 0, len(sorted)),
	}
	for _, tx := range sorted {
		table.Rows = append(table.Rows, []model.Cell{
			model.TextCell(tx.Date.Format(dateLayout)),
			model.TextCell(displayType(tx)),
			model.TextCell(tx.DisplayLabel()),
			model.TextCell(tx.MCC),
			model.NumberCell(tx.Amount),
		})
	}

	totals := aggregate.ComputeTotals(txns)
	table.Summary = [][]model.Cell{
		summaryRow(5, 1, 4, labelTotalPurchases, model.NumberCell(totals.GrossPurchases())),
		summaryRow(5, 1, 4, labelSavedBonuses, model.NumberCell(totals.Bonus)),
		summaryRow(5, 1, 4, labelNetPurchases, model.NumberCell(totals.Spend)),
		summaryRow(5, 1, 4, labelGrandTotal, model.NumberCell(totals.Grand)),
	}
	return table, nil
}

func assembleAggregated(txns []model.Transaction, key aggregate.Key, sortKey aggregate.Sort) (model.Table, error) {
	rows, err := aggregate.By(txns, key)
	if err != nil {
		return model.Table{}, err
	}
	if err := aggregate.SortRows(rows, sortKey); err != nil {
		return model.Table{}, err
	}

	heading := "Category"
	name := "Grouped by MCC Category"
	if key == aggregate.KeyGroup {
		heading = "Group"
		name = "Grouped by Category Group"
	}

	table := model.Table{
		Title:   title(name, sortKey),
		Headers: []string{heading, "Sum (KZT)", "Count"},
		Rows:    make([][]model.Cell, 0, len(rows)),
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []model.Cell{
			model.TextCell(row.Label),
			model.NumberCell(row.Total),
			model.CountCell(row.Count),
		})
	}

	totals := aggregate.ComputeTotals(txns)
	table.Summary = [][]model.Cell{
		summaryRow(3, 0, 1, labelTotalPurchases, model.NumberCell(totals.GrossPurchases())),
		summaryRow(3, 0, 1, labelSavedBonuses, model.NumberCell(totals.Bonus)),
		summaryRow(3, 0, 1, labelNetPurchases, model.NumberCell(totals.Spend)),
	}
	return table, nil
}

// summaryRow lays a footer label and amount into a row of the table's
// width, with every other cell blank. The amount goes in the same column
// as the data rows' sums so the renderer aligns them.
func summaryRow(width, labelCol, amountCol int, label string, amount model.Cell) []model.Cell {
	row := make([]model.Cell, width)
	for i := range row {
		row[i] = model.TextCell("")
	}
	row[labelCol] = model.TextCell(label)
	row[amountCol] = amount
	return row
}

// displayType names a transaction in the listing's Type column. Bonus-paid
// purchases read "Purchase" like everything else bought; the footer's
// bonus line carries the distinction.
func displayType(tx model.Transaction) string {
	if tx.Kind == model.KindBonus && strings.HasPrefix(tx.Description, "Purchase") {
		return "Purchase"
	}
	return tx.Description
}

func title(name string, sortKey aggregate.Sort) string {
	if sortKey == aggregate.SortNone {
		return name
	}
	return fmt.Sprintf("%s (sorted by %s)", name, sortKey)
}
