package events

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestStatementParsedJSON(t *testing.T) {
	msg := &StatementParsed{
		RunID:            "0b9c4d1e-0000-4000-8000-000000000001",
		DocumentSHA256:   "abc123",
		TransactionCount: 4,
		GrandTotal:       "445.5",
		Granularity:      "day",
		Timestamp:        time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC),
	}

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	for _, field := range []string{`"run_id":"0b9c4d1e-`, `"transaction_count":4`, `"grand_total":"445.5"`} {
		if !strings.Contains(string(body), field) {
			t.Errorf("body missing %s: %s", field, body)
		}
	}

	var decoded StatementParsed
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.RunID != msg.RunID || decoded.TransactionCount != msg.TransactionCount ||
		decoded.GrandTotal != msg.GrandTotal || !decoded.Timestamp.Equal(msg.Timestamp) {
		t.Errorf("decoded = %+v, want %+v", decoded, msg)
	}
}

func TestNilPublisherIsNotHealthy(t *testing.T) {
	var p *Publisher
	if p.Healthy() {
		t.Error("nil publisher reported healthy")
	}
}
