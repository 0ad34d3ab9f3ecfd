package report

import (
	"github.com/serikbay/budged/internal/aggregate"
	"github.com/serikbay/budged/internal/catalog"
	"github.com/serikbay/budged/internal/model"
)

// TransactionRecord is the JSON shape of one parsed transaction, used by
// the CLI's --json output and the MCP tools.
type TransactionRecord struct {
	Date            string  `json:"date"`
	AmountKZT       float64 `json:"amount_kzt"`
	Description     string  `json:"description"`
	Merchant        string  `json:"merchant"`
	MCCCode         string  `json:"mcc_code"`
	MCCName         string  `json:"mcc_name,omitempty"`
	Bank            string  `json:"bank"`
	PaymentMethod   string  `json:"payment_method"`
	ReceiverAccount string  `json:"receiver_account"`
	RawDetails      string  `json:"raw_details"`
}

// TotalsRecord is the JSON shape of the summary footer.
type TotalsRecord struct {
	PurchaseTotal float64 `json:"purchase_total"`
	BonusesTotal  float64 `json:"bonuses_total"`
	NetPurchases  float64 `json:"net_purchases"`
	GrandTotal    float64 `json:"grand_total"`
	IncomeTotal   float64 `json:"income_total"`
}

// Records flattens transactions into their JSON shape. Amounts become
// floats at this boundary only; everything upstream stays decimal.
func Records(txns []model.Transaction) []TransactionRecord {
	records := make([]TransactionRecord, 0, len(txns))
	for _, tx := range txns {
		rec := TransactionRecord{
			Date:            tx.Date.Format(dateLayout),
			AmountKZT:       tx.Amount.InexactFloat64(),
			Description:     tx.Description,
			Merchant:        tx.Details.Merchant,
			MCCCode:         tx.MCC,
			Bank:            tx.Details.Bank,
			PaymentMethod:   tx.Details.PaymentMethod,
			ReceiverAccount: tx.Details.ReceiverAccount,
			RawDetails:      tx.Details.Raw,
		}
		if catalog.Known(tx.MCC) {
			rec.MCCName = catalog.CategoryName(tx.MCC)
		}
		records = append(records, rec)
	}
	return records
}

// TotalsFor computes the summary footer in its JSON shape.
func TotalsFor(txns []model.Transaction) TotalsRecord {
	totals := aggregate.ComputeTotals(txns)
	return TotalsRecord{
		PurchaseTotal: totals.GrossPurchases().InexactFloat64(),
		BonusesTotal:  totals.Bonus.InexactFloat64(),
		NetPurchases:  totals.Spend.InexactFloat64(),
		GrandTotal:    totals.Grand.InexactFloat64(),
		IncomeTotal:   totals.Income.InexactFloat64(),
	}
}

// CategoryTotals sums non-bonus spending per category or group label, in
// the flat map shape the JSON summary uses.
func CategoryTotals(txns []model.Transaction, key aggregate.Key) (map[string]float64, error) {
	rows, err := aggregate.By(txns, key)
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(rows))
	for _, row := range rows {
		out[row.Label] = row.Total.InexactFloat64()
	}
	return out, nil
}
