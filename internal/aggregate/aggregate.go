// Package aggregate turns parsed transactions into spending breakdowns:
// partition by resolved category or group, sum per partition, and order
// the result. All arithmetic is fixed-point decimal; nothing here touches
// floats, so totals stay exact across any number of small transactions.
package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/serikbay/budged/internal/catalog"
	"github.com/serikbay/budged/internal/common"
	"github.com/serikbay/budged/internal/model"
)

// Key selects the partition used when summing spending.
type Key string

const (
	// KeyMCC partitions by resolved MCC category name.
	KeyMCC Key = "mcc"
	// KeyGroup partitions by resolved spending group.
	KeyGroup Key = "group"
)

// ParseKey validates a grouping key supplied by an outer layer.
func ParseKey(s string) (Key, error) {
	switch Key(s) {
	case KeyMCC, KeyGroup:
		return Key(s), nil
	default:
		return "", common.NewInvalidOption("group key", s)
	}
}

// By partitions transactions by the resolved key and sums amounts and
// counts per partition. Bonus lines are excluded from every partition;
// BonusTotal recovers exactly the excluded sum. Rows come back ordered by
// label so the result is deterministic before any explicit sort.
func By(txns []model.Transaction, key Key) ([]model.AggregatedRow, error) {
	label, err := labelFunc(key)
	if err != nil {
		return nil, err
	}

	partitions := make(map[string]*model.AggregatedRow)
	for _, t := range txns {
		switch t.Kind {
		case model.KindBonus:
			continue
		case model.KindPurchase, model.KindOther:
		}

		l := label(t)
		row, ok := partitions[l]
		if !ok {
			row = &model.AggregatedRow{Label: l}
			partitions[l] = row
		}
		row.Total = row.Total.Add(t.Amount)
		row.Count++
	}

	rows := make([]model.AggregatedRow, 0, len(partitions))
	for _, row := range partitions {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Label < rows[j].Label
	})
	return rows, nil
}

func labelFunc(key Key) (func(model.Transaction) string, error) {
	switch key {
	case KeyMCC:
		return func(t model.Transaction) string {
			return catalog.CategoryName(t.MCC)
		}, nil
	case KeyGroup:
		return func(t model.Transaction) string {
			return catalog.GroupName(t.MCC)
		}, nil
	default:
		return nil, common.NewInvalidOption("group key", string(key))
	}
}

// BonusTotal sums only bonus-kind lines, the ones By leaves out.
func BonusTotal(txns []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if t.Kind == model.KindBonus {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// ComputeTotals summarizes a statement's money flow across all kinds.
func ComputeTotals(txns []model.Transaction) model.Totals {
	var totals model.Totals
	for _, t := range txns {
		totals.Grand = totals.Grand.Add(t.Amount)
		switch t.Kind {
		case model.KindPurchase:
			totals.Spend = totals.Spend.Add(t.Amount)
		case model.KindBonus:
			totals.Bonus = totals.Bonus.Add(t.Amount)
		case model.KindOther:
			if t.Amount.IsPositive() {
				totals.Income = totals.Income.Add(t.Amount)
			}
		}
	}
	return totals
}
