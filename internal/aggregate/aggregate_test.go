package aggregate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serikbay/budged/internal/catalog"
	"github.com/serikbay/budged/internal/common"
	"github.com/serikbay/budged/internal/model"
)

func tx(day int, desc, mcc, amount string, kind model.Kind) model.Transaction {
	return model.Transaction{
		Date:        time.Date(2026, time.January, day, 0, 0, 0, 0, time.UTC),
		Description: desc,
		MCC:         mcc,
		Kind:        kind,
		Amount:      decimal.RequireFromString(amount),
	}
}

func sumRows(rows []model.AggregatedRow) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Total)
	}
	return total
}

func TestByGroupExample(t *testing.T) {
	txns := []model.Transaction{
		tx(5, "Purchase", "5732", "-15000", model.KindPurchase),
		tx(10, "Bonus Cashback", "", "150", model.KindBonus),
		tx(24, "Purchase", "5651", "-8900", model.KindPurchase),
	}

	byMCC, err := By(txns, KeyMCC)
	require.NoError(t, err)
	require.Len(t, byMCC, 2)
	assert.Equal(t, "Electronics Stores", byMCC[0].Label)
	assert.True(t, byMCC[0].Total.Equal(decimal.RequireFromString("-15000")))
	assert.Equal(t, "Family Clothing Stores", byMCC[1].Label)
	assert.True(t, byMCC[1].Total.Equal(decimal.RequireFromString("-8900")))

	byGroup, err := By(txns, KeyGroup)
	require.NoError(t, err)
	require.Len(t, byGroup, 1)
	assert.Equal(t, "Shopping", byGroup[0].Label)
	assert.True(t, byGroup[0].Total.Equal(decimal.RequireFromString("-23900")))
	assert.Equal(t, 2, byGroup[0].Count)

	assert.True(t, BonusTotal(txns).Equal(decimal.RequireFromString("150")))
}

func TestByExcludesBonusesIdentically(t *testing.T) {
	txns := []model.Transaction{
		tx(30, "Purchase", "5411", "-5490", model.KindPurchase),
		tx(30, "Purchase", "5814", "-3200", model.KindPurchase),
		tx(29, "Purchase with bonuses", "5812", "-1500", model.KindBonus),
		tx(29, "Transfer", "", "-12000", model.KindOther),
		tx(25, "Account replenishment", "", "112950.86", model.KindOther),
		tx(23, "Purchase with bonuses", "5814", "-1200", model.KindBonus),
	}

	byMCC, err := By(txns, KeyMCC)
	require.NoError(t, err)
	byGroup, err := By(txns, KeyGroup)
	require.NoError(t, err)

	// Grouping must not change the grand total, and both keys must leave
	// out the same bonus lines.
	want := decimal.RequireFromString("-5490").
		Add(decimal.RequireFromString("-3200")).
		Add(decimal.RequireFromString("-12000")).
		Add(decimal.RequireFromString("112950.86"))
	assert.True(t, sumRows(byMCC).Equal(want), "mcc total = %s", sumRows(byMCC))
	assert.True(t, sumRows(byGroup).Equal(want), "group total = %s", sumRows(byGroup))

	excluded := decimal.RequireFromString("-2700")
	assert.True(t, BonusTotal(txns).Equal(excluded))

	for _, row := range byMCC {
		assert.NotEqual(t, "Eating Places, Restaurants", row.Label,
			"bonus-only category must not appear in spend rows")
	}
}

func TestByIsDeterministic(t *testing.T) {
	txns := []model.Transaction{
		tx(1, "Purchase", "5411", "-100", model.KindPurchase),
		tx(2, "Purchase", "5541", "-100", model.KindPurchase),
		tx(3, "Purchase", "5411", "-250.50", model.KindPurchase),
		tx(4, "Transfer", "", "-42", model.KindOther),
	}

	first, err := By(txns, KeyGroup)
	require.NoError(t, err)
	second, err := By(txns, KeyGroup)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Re-aggregating does not disturb the partition totals.
	again, err := By(txns, KeyGroup)
	require.NoError(t, err)
	assert.True(t, sumRows(again).Equal(sumRows(first)))
}

func TestByUnknownMCCFallsBack(t *testing.T) {
	txns := []model.Transaction{
		tx(7, "Purchase", "9999", "-500", model.KindPurchase),
		tx(8, "Purchase", "", "-300", model.KindPurchase),
	}

	rows, err := By(txns, KeyMCC)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, catalog.Uncategorized, rows[0].Label)
	assert.True(t, rows[0].Total.Equal(decimal.RequireFromString("-800")))
	assert.Equal(t, 2, rows[0].Count)
}

func TestByInvalidKey(t *testing.T) {
	_, err := By(nil, Key("merchant"))
	assert.ErrorIs(t, err, common.ErrInvalidOption)
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Key
		wantErr bool
	}{
		{name: "mcc", input: "mcc", want: KeyMCC},
		{name: "group", input: "group", want: KeyGroup},
		{name: "unknown", input: "vendor", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ParseKey(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidOption)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, key)
		})
	}
}

func TestComputeTotals(t *testing.T) {
	txns := []model.Transaction{
		tx(30, "Purchase", "5411", "-5490", model.KindPurchase),
		tx(29, "Purchase with bonuses", "5812", "-1500", model.KindBonus),
		tx(29, "Transfer", "", "-12000", model.KindOther),
		tx(25, "Account replenishment", "", "112950.86", model.KindOther),
	}

	totals := ComputeTotals(txns)

	assert.True(t, totals.Spend.Equal(decimal.RequireFromString("-5490")))
	assert.True(t, totals.Bonus.Equal(decimal.RequireFromString("-1500")))
	assert.True(t, totals.Income.Equal(decimal.RequireFromString("112950.86")))
	assert.True(t, totals.Grand.Equal(decimal.RequireFromString("93960.86")))
	assert.True(t, totals.GrossPurchases().Equal(decimal.RequireFromString("-6990")))
}

func TestComputeTotalsEmpty(t *testing.T) {
	totals := ComputeTotals(nil)
	assert.True(t, totals.Grand.IsZero())
	assert.True(t, totals.Spend.IsZero())
	assert.True(t, totals.Bonus.IsZero())
	assert.True(t, totals.Income.IsZero())
}

func TestDecimalAccumulationExact(t *testing.T) {
	// A hundred 0.1 charges must sum to exactly 10, not 9.99999…
	txns := make([]model.Transaction, 0, 100)
	for i := 0; i < 100; i++ {
		txns = append(txns, tx(1+i%28, "Purchase", "5411", "-0.1", model.KindPurchase))
	}

	rows, err := By(txns, KeyMCC)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Total.Equal(decimal.RequireFromString("-10")),
		"got %s", rows[0].Total)
}
