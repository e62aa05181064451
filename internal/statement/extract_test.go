package statement

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"statement-insights-backend/internal/categorize"
)

func TestExtractWalletDebit(t *testing.T) {
	e := NewExtractor(DefaultConfig())

	got := e.Extract([]string{"10 Jan", "- Rs. 250.00", "Paid to Swiggy Bangalore"})

	want := Transaction{
		Vendor:    "Swiggy Bangalore",
		Amount:    decimal.RequireFromString("250.00"),
		Category:  "Food",
		Direction: Debit,
		Date:      "10 Jan",
	}
	if len(got) != 1 {
		t.Fatalf("Extract() returned %d transactions, want 1: %+v", len(got), got)
	}
	assertTransaction(t, got[0], want)
}

func TestExtractWalletCredit(t *testing.T) {
	e := NewExtractor(DefaultConfig())

	got := e.Extract([]string{"+ Rs. 500.00", "Added to wallet from HDFC Bank"})

	want := Transaction{
		Vendor:    "HDFC Bank",
		Amount:    decimal.RequireFromString("500"),
		Category:  categorize.WalletTopUp,
		Direction: Credit,
		Date:      "",
	}
	if len(got) != 1 {
		t.Fatalf("Extract() returned %d transactions, want 1: %+v", len(got), got)
	}
	assertTransaction(t, got[0], want)
}

func TestWallet(t *testing.T) {
	e := NewExtractor(DefaultConfig())

	tests := []struct {
		name      string
		lines     []string
		wantCount int
		wantDir   Direction
		vendor    string
	}{
		{"unsigned paid is debit", []string{"Rs. 75.00", "Paid to Chai Point"}, 1, Debit, "Chai Point"},
		{"unsigned added is credit", []string{"INR 100.00", "Added to wallet from SBI"}, 1, Credit, "SBI"},
		{"empty vendor skipped", []string{"INR 100.00", "Added to wallet"}, 0, "", ""},
		{"no vendor line", []string{"- Rs. 250.00", "Refund processed"}, 0, "", ""},
		{"amount on last line", []string{"Paid to Uber", "- Rs. 250.00"}, 0, "", ""},
		{"needs two decimals", []string{"- Rs. 250", "Paid to Uber"}, 0, "", ""},
		{"thousands separator", []string{"- INR 1,250.50", "paid to Uber India"}, 1, Debit, "Uber India"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Wallet(tt.lines)
			if len(got) != tt.wantCount {
				t.Fatalf("Wallet() returned %d transactions, want %d: %+v", len(got), tt.wantCount, got)
			}
			if tt.wantCount == 0 {
				return
			}
			if got[0].Direction != tt.wantDir || got[0].Vendor != tt.vendor {
				t.Errorf("Wallet()[0] = %+v, want direction %s vendor %q", got[0], tt.wantDir, tt.vendor)
			}
		})
	}
}

func TestUPI(t *testing.T) {
	e := NewExtractor(DefaultConfig())

	tests := []struct {
		name  string
		lines []string
		want  []Transaction
	}{
		{
			name:  "tag overrides classifier",
			lines: []string{"Paid to Ramesh Kirana", "- Rs.120", "#Groceries"},
			want: []Transaction{
				{Vendor: "Ramesh Kirana", Amount: decimal.RequireFromString("120"), Category: "Groceries", Direction: Debit},
			},
		},
		{
			name:  "credit consumes vendor without emitting",
			lines: []string{"Received from Alice", "+ Rs.500", "- Rs.40", "Paid to Carol", "- Rs.50"},
			want: []Transaction{
				{Vendor: "Carol", Amount: decimal.RequireFromString("50"), Category: categorize.Fallback, Direction: Debit},
			},
		},
		{
			name:  "amount without vendor",
			lines: []string{"- Rs.99"},
			want:  nil,
		},
		{
			name:  "direct expense keyword",
			lines: []string{"Recharge of Jio Mobile 9876543210", "- Rs. 299"},
			want: []Transaction{
				{Vendor: "Recharge of Jio Mobile 9876543210", Amount: decimal.RequireFromString("299"), Category: "Bill Payments", Direction: Debit},
			},
		},
		{
			name:  "vendor reset after amount",
			lines: []string{"Paid to Zomato", "- Rs.200", "- Rs.300"},
			want: []Transaction{
				{Vendor: "Zomato", Amount: decimal.RequireFromString("200"), Category: "Food", Direction: Debit},
			},
		},
		{
			name:  "date from preceding marker",
			lines: []string{"05 Feb 2024", "Money sent to Zomato", "- Rs. 1,250.5"},
			want: []Transaction{
				{Vendor: "Zomato", Amount: decimal.RequireFromString("1250.5"), Category: "Food", Direction: Debit, Date: "05 Feb 2024"},
			},
		},
		{
			name:  "empty payee is no vendor",
			lines: []string{"Paid to", "- Rs.10"},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.UPI(tt.lines)
			if len(got) != len(tt.want) {
				t.Fatalf("UPI() returned %d transactions, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range tt.want {
				assertTransaction(t, got[i], tt.want[i])
			}
		})
	}
}

func TestExtractOrdersWalletBeforeUPI(t *testing.T) {
	e := NewExtractor(DefaultConfig())
	lines := []string{
		"Paid to Zomato",
		"- Rs.200",
		"12 Mar",
		"- Rs. 80.00",
		"Paid to Blinkit",
	}

	got := e.Extract(lines)
	if len(got) != 2 {
		t.Fatalf("Extract() returned %d transactions, want 2: %+v", len(got), got)
	}
	if got[0].Vendor != "Blinkit" || got[1].Vendor != "Zomato" {
		t.Errorf("Extract() order = [%s %s], want [Blinkit Zomato]", got[0].Vendor, got[1].Vendor)
	}
	if got[0].Date != "12 Mar" {
		t.Errorf("Extract()[0].Date = %q, want 12 Mar", got[0].Date)
	}
}

func TestNewExtractorFillsDefaults(t *testing.T) {
	e := NewExtractor(Config{})

	got := e.UPI([]string{"Paid to Ramesh Kirana", "- Rs.120", "#Groceries"})

	if len(got) != 1 || got[0].Category != "Groceries" {
		t.Errorf("UPI() = %+v, want one Groceries debit", got)
	}
}

func TestYearlessDatesTakeStatementYear(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		lines []string
		want  time.Time
	}{
		{
			name:  "configured year",
			year:  2024,
			lines: []string{"10 Jan", "- Rs. 250.00", "Paid to Swiggy Bangalore"},
			want:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "heading above the entry",
			year:  2024,
			lines: []string{"Wallet statement for December 2023", "31 Dec", "- Rs. 80.00", "Paid to Uber"},
			want:  time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "year named later in the statement",
			year:  2024,
			lines: []string{"10 Jan", "- Rs. 80.00", "Paid to Uber", "Generated on 15 Feb 2022"},
			want:  time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewExtractor(Config{Year: tt.year}).Wallet(tt.lines)
			if len(got) != 1 {
				t.Fatalf("Wallet() returned %d transactions, want 1", len(got))
			}
			date, ok := got[0].ParsedDate()
			if !ok || !date.Equal(tt.want) {
				t.Errorf("ParsedDate() = %v, %v, want %v", date, ok, tt.want)
			}
		})
	}
}

func TestExtractEmpty(t *testing.T) {
	e := NewExtractor(Config{})
	got := e.Extract(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("Extract(nil) = %#v, want empty non-nil slice", got)
	}
}

func assertTransaction(t *testing.T, got, want Transaction) {
	t.Helper()
	if got.Vendor != want.Vendor || !got.Amount.Equal(want.Amount) || got.Category != want.Category ||
		got.Direction != want.Direction || got.Date != want.Date {
		t.Errorf("transaction = %+v, want %+v", got, want)
	}
}
