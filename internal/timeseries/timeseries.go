// Package timeseries groups dated transactions into contiguous day, week or
// month buckets for charting.
package timeseries

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"statement-insights-backend/internal/dates"
	"statement-insights-backend/internal/statement"
)

// Granularity is the size of one bucket.
type Granularity string

const (
	Day   Granularity = "day"
	Week  Granularity = "week"
	Month Granularity = "month"
)

// Bucket is one period of debit spend. Key is the ISO day, the ISO date of
// the period's Monday, or YYYY-MM depending on the granularity.
type Bucket struct {
	Key    string          `json:"key"`
	Label  string          `json:"label"`
	Start  time.Time       `json:"-"`
	Amount decimal.Decimal `json:"amount"`
}

// Series is a gap-free bucket sequence covering Start..End.
type Series struct {
	Granularity Granularity
	Start       time.Time
	End         time.Time
	Buckets     []Bucket
}

// Empty reports whether the series has no dated data.
func (s Series) Empty() bool {
	return len(s.Buckets) == 0
}

// Days is the inclusive number of calendar days between Start and End.
func (s Series) Days() int {
	if s.Empty() {
		return 0
	}
	return int(s.End.Sub(s.Start).Hours()/24) + 1
}

// MonthSpan is the whole-month difference between the calendar months of
// from and to.
func MonthSpan(from, to time.Time) int {
	return (to.Year()*12 + int(to.Month())) - (from.Year()*12 + int(from.Month()))
}

// ChooseGranularity picks month buckets for spans of four months or more,
// week buckets for one to three months and day buckets otherwise.
func ChooseGranularity(from, to time.Time) Granularity {
	switch span := MonthSpan(from, to); {
	case span >= 4:
		return Month
	case span >= 1:
		return Week
	default:
		return Day
	}
}

// Range returns the earliest and latest parseable transaction dates.
func Range(txs []statement.Transaction) (first, last time.Time, ok bool) {
	for _, tx := range txs {
		d, valid := tx.ParsedDate()
		if !valid {
			continue
		}
		if !ok || d.Before(first) {
			first = d
		}
		if !ok || d.After(last) {
			last = d
		}
		ok = true
	}
	return first, last, ok
}

// Build chooses the granularity from the data and buckets txs. The result
// is empty, with no granularity, when no transaction has a valid date.
func Build(txs []statement.Transaction) Series {
	first, last, ok := Range(txs)
	if !ok {
		return Series{Buckets: make([]Bucket, 0)}
	}
	g := ChooseGranularity(first, last)
	return Series{
		Granularity: g,
		Start:       first,
		End:         last,
		Buckets:     Buckets(txs, g),
	}
}

// Buckets enumerates every period of granularity g from the earliest to the
// latest valid date and sums debit amounts into them. Transactions with
// unparseable dates are skipped.
func Buckets(txs []statement.Transaction, g Granularity) []Bucket {
	buckets := make([]Bucket, 0)
	first, last, ok := Range(txs)
	if !ok {
		return buckets
	}

	index := make(map[string]int)
	end := PeriodStart(last, g)
	for p := PeriodStart(first, g); !p.After(end); p = next(p, g) {
		key := Key(p, g)
		index[key] = len(buckets)
		buckets = append(buckets, Bucket{Key: key, Label: Label(p, g), Start: p})
	}

	for _, tx := range txs {
		if !tx.IsDebit() {
			continue
		}
		d, valid := tx.ParsedDate()
		if !valid {
			continue
		}
		i := index[Key(PeriodStart(d, g), g)]
		buckets[i].Amount = buckets[i].Amount.Add(tx.Amount)
	}
	return buckets
}

// PeriodStart returns the first day of the period containing t: the day
// itself, the Monday on or before it, or the first of its month.
func PeriodStart(t time.Time, g Granularity) time.Time {
	t = dates.Day(t)
	switch g {
	case Week:
		offset := (int(t.Weekday()) + 6) % 7
		return t.AddDate(0, 0, -offset)
	case Month:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return t
	}
}

// Key is the canonical bucket key for a period start.
func Key(p time.Time, g Granularity) string {
	if g == Month {
		return p.Format("2006-01")
	}
	return p.Format("2006-01-02")
}

// Label is the short chart label for a period start.
func Label(p time.Time, g Granularity) string {
	switch g {
	case Week:
		return fmt.Sprintf("W%d %s", weekOfYear(p), p.Format("Jan"))
	case Month:
		return p.Format("Jan")
	default:
		return p.Format("02 Jan")
	}
}

func next(p time.Time, g Granularity) time.Time {
	switch g {
	case Week:
		return p.AddDate(0, 0, 7)
	case Month:
		return p.AddDate(0, 1, 0)
	default:
		return p.AddDate(0, 0, 1)
	}
}

// weekOfYear counts weeks from January 1st, with the first partial week as
// week one.
func weekOfYear(t time.Time) int {
	first := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	past := int(t.Sub(first).Hours() / 24)
	return (past + int(first.Weekday()) + 1 + 6) / 7
}
