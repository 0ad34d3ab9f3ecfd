package statement

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/serikbay/budged/internal/model"
)

var (
	datePattern     = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)
	sumPattern      = regexp.MustCompile(`^-?[\d,.]+\s+KZT$`)
	amountScrubber  = regexp.MustCompile(`[^\d.\-]`)
	mccPattern      = regexp.MustCompile(`(?i)(?:MCC|МСС):\s*(\d{4})`)
	receiverPattern = regexp.MustCompile(`Receiver:\s*([\d*]+)`)
	multiSpace      = regexp.MustCompile(`\s{2,}`)
)

// Statements name issuer banks inconsistently; the first keyword hit wins.
var bankKeywords = []struct {
	name     string
	keywords []string
}{
	{"Halyk Bank", []string{"JSC Halyk Bank", "Halyk Bank"}},
	{"Kaspi Bank", []string{"Kaspi Bank"}},
	{"Freedom Bank", []string{"Freedom Bank"}},
	{"Jusan Bank", []string{"Jusan Bank"}},
	{"Bereke Bank", []string{"Bereke Bank"}},
	{"BCC", []string{"BCC"}},
}

// parseAmount converts a statement sum like "-30000.00 KZT" or
// "112,950.86 KZT" into a decimal. Thousands separators and the currency
// suffix are stripped; the sign is kept.
func parseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(amountScrubber.ReplaceAllString(s, ""))
}

// cleanDetails removes PDF line-wrap artifacts: newlines become spaces and
// runs of whitespace collapse to one space.
func cleanDetails(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// parseDetails mines the Details column for structured fields: the MCC
// annotation, the issuer bank, the payment method, the receiver account of
// a transfer, and the merchant name. Absent fields stay empty.
func parseDetails(raw string) (model.Details, string) {
	trimmed := strings.TrimSpace(raw)
	d := model.Details{Raw: trimmed}

	var mcc string
	if m := mccPattern.FindStringSubmatch(trimmed); m != nil {
		mcc = m[1]
	}

	if strings.Contains(strings.ToUpper(trimmed), "APPLE PAY") {
		d.PaymentMethod = "APPLE PAY"
	}

findBank:
	for _, bank := range bankKeywords {
		for _, kw := range bank.keywords {
			if strings.Contains(trimmed, kw) {
				d.Bank = bank.name
				break findBank
			}
		}
	}

	if m := receiverPattern.FindStringSubmatch(trimmed); m != nil {
		d.ReceiverAccount = m[1]
	}

	// The merchant leads the comma-separated narrative; transfer rows name
	// a receiver instead.
	if parts := strings.SplitN(trimmed, ",", 2); len(parts) > 1 && d.ReceiverAccount == "" {
		d.Merchant = strings.TrimSpace(parts[0])
	}

	return d, mcc
}

// classifyKind tags a line by its narrative. Bonus markers take priority
// so bonus-paid purchases never count as spending.
func classifyKind(description string) model.Kind {
	switch {
	case strings.Contains(strings.ToLower(description), "bonus"):
		return model.KindBonus
	case strings.HasPrefix(description, "Purchase"):
		return model.KindPurchase
	default:
		return model.KindOther
	}
}
