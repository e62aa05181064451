package events

import (
	"encoding/json"
	"time"
)

// StatementParsed announces a completed parse. It carries the run summary
// only; transactions never leave the request that produced them.
type StatementParsed struct {
	RunID            string    `json:"run_id"`
	DocumentSHA256   string    `json:"document_sha256"`
	TransactionCount int       `json:"transaction_count"`
	GrandTotal       string    `json:"grand_total"`
	Granularity      string    `json:"granularity,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}

// ToJSON converts the message to JSON bytes
func (m *StatementParsed) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}
