// Package statement turns the text lines of a wallet or UPI statement into
// transactions and aggregates their amounts by category.
package statement

import (
	"time"

	"github.com/shopspring/decimal"

	"statement-insights-backend/internal/dates"
)

// Direction tells whether money left or entered the account.
type Direction string

const (
	Debit  Direction = "Debit"
	Credit Direction = "Credit"
)

// Transaction is a single money movement recognized in a statement.
// Date holds the raw date marker found near the amount and may be empty
// or unparseable.
type Transaction struct {
	Vendor    string          `json:"vendor"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Direction Direction       `json:"type"`
	Date      string          `json:"date"`

	// year completes markers such as "10 Jan" that carry no year.
	year int
}

// ParsedDate normalizes Date. ok is false when it is not a calendar date.
func (t Transaction) ParsedDate() (time.Time, bool) {
	return dates.ParseInYear(t.Date, t.year)
}

// IsDebit reports whether the transaction is money spent.
func (t Transaction) IsDebit() bool {
	return t.Direction == Debit
}
