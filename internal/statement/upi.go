package statement

import (
	"strings"
)

// upiState is the vendor slot of the UPI recognizer. The zero value is the
// NoVendor state; a non-empty vendor means VendorPending.
type upiState struct {
	vendor string
}

func (s upiState) pending() bool { return s.vendor != "" }

// observe applies the vendor transitions for one line: a payee prefix or a
// direct-expense keyword moves the state to VendorPending.
func (e *Extractor) observe(s upiState, line string) upiState {
	if m := upiVendorPattern.FindStringSubmatch(line); m != nil {
		return upiState{vendor: strings.TrimSpace(line[len(m[0]):])}
	}
	if e.isDirectExpense(line) {
		return upiState{vendor: line}
	}
	return s
}

func (e *Extractor) isDirectExpense(line string) bool {
	lower := strings.ToLower(line)
	for _, p := range e.directExpense {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

// UPI recognizes UPI-style entries: a payee line followed, on the same or a
// later line, by a signed amount. Only debits are emitted; a credit amount
// consumes the pending payee without producing a transaction.
func (e *Extractor) UPI(lines []string) []Transaction {
	txs := make([]Transaction, 0)
	years := e.years(lines)
	var state upiState

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		state = e.observe(state, line)

		m := upiAmountPattern.FindStringSubmatch(line)
		if m == nil || !state.pending() {
			continue
		}

		vendor := state.vendor
		state = upiState{}

		if m[1] != "-" {
			continue
		}
		amount, ok := parseAmount(m[2])
		if !ok {
			continue
		}

		category := e.classifier.Classify(vendor)
		if i+1 < len(lines) {
			if tagged, ok := e.tags.Match(lines[i+1]); ok {
				category = tagged
			}
		}

		txs = append(txs, Transaction{
			Vendor:    vendor,
			Amount:    amount,
			Category:  category,
			Direction: Debit,
			Date:      nearestDate(lines, i),
			year:      years[i],
		})
	}
	return txs
}
