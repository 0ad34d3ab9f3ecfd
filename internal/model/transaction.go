// Package model defines the core domain types shared across the application.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind classifies a statement line by how it affects spending totals.
// Aggregation switches on it exhaustively, so adding a kind means
// revisiting every consumer.
type Kind string

const (
	// KindPurchase is an ordinary card purchase paid with money.
	KindPurchase Kind = "purchase"
	// KindBonus is a bonus/cashback line; never counted as spending.
	KindBonus Kind = "bonus"
	// KindOther covers transfers, replenishments, fees and everything else.
	KindOther Kind = "other"
)

// Details holds the structured fields mined from the Details column of a
// statement row. Fields are empty when the row doesn't carry them.
type Details struct {
	Raw             string
	Merchant        string
	Bank            string
	PaymentMethod   string
	ReceiverAccount string
}

// Transaction represents a single statement line. It is built once by the
// parser and never mutated afterwards.
type Transaction struct {
	Date        time.Time
	Description string // statement narrative, e.g. "Purchase", "Transfer"
	MCC         string // 4-digit code; empty when the line has no MCC annotation
	Kind        Kind
	Details     Details
	Amount      decimal.Decimal // negative = spend, positive = credit
}

// HasMCC reports whether the line carried an MCC annotation.
func (t Transaction) HasMCC() bool {
	return t.MCC != ""
}

// DisplayLabel returns the short label used in raw listings: a masked
// receiver card for transfers, otherwise the merchant name.
func (t Transaction) DisplayLabel() string {
	if acct := t.Details.ReceiverAccount; acct != "" {
		if len(acct) > 4 {
			acct = acct[len(acct)-4:]
		}
		return "card *" + acct
	}
	return t.Details.Merchant
}
