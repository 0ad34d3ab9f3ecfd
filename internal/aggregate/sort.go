package aggregate

import (
	"sort"

	"github.com/serikbay/budged/internal/common"
	"github.com/serikbay/budged/internal/model"
)

// Sort selects the ordering of report rows. The zero value keeps input
// order, which for raw listings means document order.
type Sort string

const (
	// SortNone keeps rows in their current order.
	SortNone Sort = ""
	// SortSum orders by signed total ascending, so the largest spend
	// comes first; ties break by label.
	SortSum Sort = "sum"
	// SortName orders lexicographically by label.
	SortName Sort = "name"
	// SortDate orders raw listings by transaction date ascending. Not
	// valid for aggregated rows.
	SortDate Sort = "date"
)

// ParseSort validates a sort key supplied by an outer layer.
func ParseSort(s string) (Sort, error) {
	switch Sort(s) {
	case SortNone, SortSum, SortName, SortDate:
		return Sort(s), nil
	default:
		return "", common.NewInvalidOption("sort key", s)
	}
}

// SortRows orders aggregated rows in place. SortDate is rejected: an
// aggregated row has no date.
func SortRows(rows []model.AggregatedRow, key Sort) error {
	switch key {
	case SortNone:
	case SortSum:
		sort.SliceStable(rows, func(i, j int) bool {
			if c := rows[i].Total.Cmp(rows[j].Total); c != 0 {
				return c < 0
			}
			return rows[i].Label < rows[j].Label
		})
	case SortName:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Label < rows[j].Label
		})
	default:
		return common.NewInvalidOption("sort key", string(key))
	}
	return nil
}

// SortTransactions orders a raw listing in place. All sorts are stable, so
// ties keep document order.
func SortTransactions(txns []model.Transaction, key Sort) error {
	switch key {
	case SortNone:
	case SortSum:
		sort.SliceStable(txns, func(i, j int) bool {
			return txns[i].Amount.Cmp(txns[j].Amount) < 0
		})
	case SortName:
		sort.SliceStable(txns, func(i, j int) bool {
			if txns[i].Description != txns[j].Description {
				return txns[i].Description < txns[j].Description
			}
			return txns[i].Details.Raw < txns[j].Details.Raw
		})
	case SortDate:
		sort.SliceStable(txns, func(i, j int) bool {
			return txns[i].Date.Before(txns[j].Date)
		})
	default:
		return common.NewInvalidOption("sort key", string(key))
	}
	return nil
}
