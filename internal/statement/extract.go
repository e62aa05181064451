package statement

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"statement-insights-backend/internal/categorize"
	"statement-insights-backend/internal/dates"
)

var (
	// Format A: "- Rs. 1,250.00", "+ INR 500.00".
	walletAmountPattern = regexp.MustCompile(`(?i)([-+])?\s*(?:Rs\.?|INR)\s*([\d,]+\.\d{2})`)
	walletVendorPattern = regexp.MustCompile(`(?i)^(paid to|added to wallet from|added to wallet)\s*`)

	// Format B: "- Rs.250", "+ Rs. 1,000.5".
	upiAmountPattern = regexp.MustCompile(`(?i)([-+])\s*Rs\.?\s*([\d,]+(?:\.\d{1,2})?)`)
	upiVendorPattern = regexp.MustCompile(`(?i)^(paid to|money sent to|received from)\s*`)

	dateMarkerPattern = regexp.MustCompile(`\d{1,2}\s+[A-Za-z]{3}`)
)

// DefaultDirectExpense lists the line prefixes that name a UPI payee on
// their own, without a "Paid to" style introduction.
func DefaultDirectExpense() []string {
	return []string{
		"Paytm", "Recharge", "Automatic", "JAR", "PhonePe", "Amazon",
		"Purchase", "Bill", "Shopping", "Bus", "Train", "Flight", "Movie",
		"Electricity", "Water", "Jio", "Airtel", "VI",
	}
}

// Config carries the static tables used during extraction.
type Config struct {
	Classifier    *categorize.Classifier
	Tags          categorize.TagSet
	DirectExpense []string
	// Year completes year-less date markers when the statement itself never
	// names a year. Zero means the current year.
	Year int
}

// DefaultConfig returns the built-in classifier, tags and payee prefixes.
func DefaultConfig() Config {
	return Config{
		Classifier:    categorize.Default(),
		Tags:          categorize.DefaultTagSet(),
		DirectExpense: DefaultDirectExpense(),
	}
}

// Extractor recognizes transactions in statement lines. It holds no mutable
// state and may be shared between goroutines.
type Extractor struct {
	classifier    *categorize.Classifier
	tags          categorize.TagSet
	directExpense []string
	year          int
}

// NewExtractor builds an Extractor from cfg, filling unset tables with the
// defaults.
func NewExtractor(cfg Config) *Extractor {
	if cfg.Classifier == nil {
		cfg.Classifier = categorize.Default()
	}
	if cfg.Tags.Len() == 0 {
		cfg.Tags = categorize.DefaultTagSet()
	}
	if cfg.DirectExpense == nil {
		cfg.DirectExpense = DefaultDirectExpense()
	}
	prefixes := make([]string, 0, len(cfg.DirectExpense))
	for _, p := range cfg.DirectExpense {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			prefixes = append(prefixes, p)
		}
	}
	if cfg.Year == 0 {
		cfg.Year = time.Now().Year()
	}
	return &Extractor{
		classifier:    cfg.Classifier,
		tags:          cfg.Tags,
		directExpense: prefixes,
		year:          cfg.Year,
	}
}

// Extract runs the wallet recognizer and then the UPI recognizer over the
// same lines and concatenates their results in that order.
func (e *Extractor) Extract(lines []string) []Transaction {
	txs := e.Wallet(lines)
	return append(txs, e.UPI(lines)...)
}

// Wallet recognizes wallet-style entries: an amount line followed by a
// "Paid to" or "Added to wallet" line naming the counterparty.
func (e *Extractor) Wallet(lines []string) []Transaction {
	txs := make([]Transaction, 0)
	years := e.years(lines)
	for i := 0; i+1 < len(lines); i++ {
		m := walletAmountPattern.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}
		amount, ok := parseAmount(m[2])
		if !ok {
			continue
		}

		next := strings.TrimSpace(lines[i+1])
		prefix := walletVendorPattern.FindStringSubmatch(next)
		if prefix == nil {
			continue
		}
		vendor := strings.TrimSpace(next[len(prefix[0]):])
		if vendor == "" {
			continue
		}

		sign := m[1]
		if sign == "" {
			sign = "-"
			if strings.HasPrefix(strings.ToLower(prefix[1]), "added") {
				sign = "+"
			}
		}

		tx := Transaction{
			Vendor: vendor,
			Amount: amount,
			Date:   nearestDate(lines, i),
			year:   years[i],
		}
		if sign == "-" {
			tx.Direction = Debit
			tx.Category = e.classifier.Classify(vendor)
		} else {
			tx.Direction = Credit
			tx.Category = categorize.WalletTopUp
		}
		txs = append(txs, tx)
	}
	return txs
}

// nearestDate returns the closest line at or before idx that carries a
// "<day> <month>" marker, or "" when there is none.
func nearestDate(lines []string, idx int) string {
	for j := idx; j >= 0; j-- {
		if dateMarkerPattern.MatchString(lines[j]) {
			return strings.TrimSpace(lines[j])
		}
	}
	return ""
}

// years gives, for every line, the year that completes a year-less date
// there: the closest year named at or above the line, else the first one
// named anywhere in the statement, else the configured year.
func (e *Extractor) years(lines []string) []int {
	out := make([]int, len(lines))
	fallback, current := e.year, 0
	for i, line := range lines {
		if y, ok := dates.FindYear(line); ok {
			if current == 0 {
				fallback = y
			}
			current = y
		}
		out[i] = current
	}
	for i := range out {
		if out[i] == 0 {
			out[i] = fallback
		}
	}
	return out
}

func parseAmount(raw string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
	if err != nil || d.IsNegative() {
		return decimal.Decimal{}, false
	}
	return d, true
}
