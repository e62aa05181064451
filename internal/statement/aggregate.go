package statement

import "github.com/shopspring/decimal"

// Totals holds debit sums per category and overall.
type Totals struct {
	ByCategory map[string]decimal.Decimal
	Grand      decimal.Decimal
}

// Aggregate sums debit amounts per category in input order. Credits are
// ignored and categories without debits are absent from ByCategory.
func Aggregate(txs []Transaction) Totals {
	totals := Totals{ByCategory: make(map[string]decimal.Decimal)}
	for _, tx := range txs {
		if !tx.IsDebit() {
			continue
		}
		totals.ByCategory[tx.Category] = totals.ByCategory[tx.Category].Add(tx.Amount)
		totals.Grand = totals.Grand.Add(tx.Amount)
	}
	return totals
}
