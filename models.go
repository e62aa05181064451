package main

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are rendered as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// ParseRun is the stored summary of one parsed statement
type ParseRun struct {
	ID               uuid.UUID       `json:"id"`
	FileName         string          `json:"file_name"`
	DocumentSHA256   string          `json:"document_sha256"`
	TransactionCount int             `json:"transaction_count"`
	GrandTotal       decimal.Decimal `json:"grand_total"`
	Granularity      string          `json:"granularity"`
	CreatedAt        time.Time       `json:"created_at"`
}

// UploadResult is returned after a statement is stored
type UploadResult struct {
	Message string `json:"message"`
	File    string `json:"file"`
}

// HealthStatus reports the service and its optional backends
type HealthStatus struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
	Events   string `json:"events"`
}
