// Package insights derives narrative spending statistics from transactions,
// their category totals and the bucketed time series.
package insights

import (
	"fmt"
	"math"
	"sort"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"statement-insights-backend/internal/statement"
	"statement-insights-backend/internal/timeseries"
)

const notAvailable = "N/A"

// Config holds the display constants used by the share insights.
type Config struct {
	// MinVisualShare is the smallest proportion a category is drawn with.
	MinVisualShare float64
	// PeerAverageShare is the benchmark share of the top category.
	PeerAverageShare float64
}

// DefaultConfig returns a 10% visual floor and an 18% peer average.
func DefaultConfig() Config {
	return Config{MinVisualShare: 0.10, PeerAverageShare: 0.18}
}

// Input is everything Derive reads.
type Input struct {
	Transactions []statement.Transaction
	Totals       statement.Totals
	Series       timeseries.Series
}

type datedDebit struct {
	tx   statement.Transaction
	date time.Time
}

type deriver struct {
	cfg    Config
	p      *message.Printer
	in     Input
	slices []Slice
	debits []statement.Transaction
	dated  []datedDebit
	values []float64
}

// Derive returns the fixed battery of twenty insights, in order. Date-free
// figures use every debit; per-day and weekday figures use only debits with
// a valid date. Degenerate input yields N/A placeholders, never an error.
func Derive(in Input, cfg Config) []string {
	d := &deriver{
		cfg:    cfg,
		p:      message.NewPrinter(language.English),
		in:     in,
		slices: Slices(in.Totals.ByCategory, cfg.MinVisualShare),
	}
	for _, tx := range in.Transactions {
		if !tx.IsDebit() {
			continue
		}
		d.debits = append(d.debits, tx)
		d.values = append(d.values, tx.Amount.InexactFloat64())
		if date, ok := tx.ParsedDate(); ok {
			d.dated = append(d.dated, datedDebit{tx: tx, date: date})
		}
	}

	return []string{
		d.topShare(),
		d.highestPeriod(),
		d.meanPerTransaction(),
		d.lowestPeriod(),
		d.topShares(2),
		d.p.Sprintf("You made %d transactions in total.", len(d.debits)),
		d.topAmount(),
		d.meanPerDay(),
		d.lastChange(),
		d.meanPerCategory(),
		d.p.Sprintf("Your median transaction amount is %s.", d.money(Median(d.values))),
		d.extreme("largest", func(a, b float64) bool { return a > b }),
		d.extreme("smallest", func(a, b float64) bool { return a < b }),
		d.weekendSplit(),
		d.meanPerWeek(),
		d.busiestWeekday(),
		d.p.Sprintf("You spent across %d different categories.", len(in.Totals.ByCategory)),
		d.transactionsPerDay(),
		d.p.Sprintf("The standard deviation of your transaction amounts is %s.", d.money(StdDev(d.values))),
		d.topShares(3),
	}
}

func (d *deriver) topShare() string {
	if len(d.slices) == 0 {
		return "Top category share: " + notAvailable
	}
	top := d.slices[0]
	return d.p.Sprintf("You spend %d%% of your spending on %s, compared to the average %d%% in your peer group.",
		percent(top.DisplayShare), top.Name, percent(d.cfg.PeerAverageShare))
}

func (d *deriver) topShares(n int) string {
	if len(d.slices) == 0 {
		return d.p.Sprintf("Share of your top %d categories: %s", n, notAvailable)
	}
	var share float64
	for i := 0; i < n && i < len(d.slices); i++ {
		share += d.slices[i].DisplayShare
	}
	return d.p.Sprintf("Your top %d categories account for %d%% of your spending.", n, percent(share))
}

func (d *deriver) topAmount() string {
	if len(d.slices) == 0 {
		return "Top category amount: " + notAvailable
	}
	top := d.slices[0]
	return d.p.Sprintf("You spent %s on %s, your top category.", d.money(top.Value.InexactFloat64()), top.Name)
}

func (d *deriver) highestPeriod() string {
	var best *timeseries.Bucket
	high := 0.0
	for i, b := range d.in.Series.Buckets {
		if v := b.Amount.InexactFloat64(); v > high {
			high, best = v, &d.in.Series.Buckets[i]
		}
	}
	if best == nil {
		return "Highest spending period: " + notAvailable
	}
	return d.p.Sprintf("Your highest spending was in %s, totalling %s.", d.periodName(*best), d.money(high))
}

func (d *deriver) lowestPeriod() string {
	buckets := d.in.Series.Buckets
	if len(buckets) == 0 {
		return "Lowest spending period: " + notAvailable
	}
	low := 0
	for i := range buckets {
		if buckets[i].Amount.LessThan(buckets[low].Amount) {
			low = i
		}
	}
	return d.p.Sprintf("Your lowest spending was in %s, totalling %s.",
		d.periodName(buckets[low]), d.money(buckets[low].Amount.InexactFloat64()))
}

func (d *deriver) lastChange() string {
	buckets := d.in.Series.Buckets
	if len(buckets) < 2 {
		return "Change from the previous period: " + notAvailable
	}
	prev := buckets[len(buckets)-2].Amount.InexactFloat64()
	last := buckets[len(buckets)-1].Amount.InexactFloat64()
	if prev <= 0 {
		return "Change from the previous period: " + notAvailable
	}
	change := fmt.Sprintf("%+.1f%%", (last-prev)/prev*100)
	return d.p.Sprintf("Your spending changed by %s compared to the previous %s.",
		change, string(d.in.Series.Granularity))
}

func (d *deriver) meanPerTransaction() string {
	if len(d.debits) == 0 {
		return "Average per transaction: " + notAvailable
	}
	return d.p.Sprintf("On average, you spend %s per transaction.", d.money(Mean(d.values)))
}

func (d *deriver) meanPerCategory() string {
	n := len(d.in.Totals.ByCategory)
	if n == 0 {
		return "Average per category: " + notAvailable
	}
	return d.p.Sprintf("You spend an average of %s per category.",
		d.money(d.in.Totals.Grand.InexactFloat64()/float64(n)))
}

func (d *deriver) meanPerDay() string {
	days := d.in.Series.Days()
	if days == 0 {
		return "Average per day: " + notAvailable
	}
	return d.p.Sprintf("You spend an average of %s per day.", d.money(d.datedTotal()/float64(days)))
}

func (d *deriver) meanPerWeek() string {
	days := d.in.Series.Days()
	if days == 0 {
		return "Average per week: " + notAvailable
	}
	return d.p.Sprintf("Your average weekly spending is %s.", d.money(d.datedTotal()/(float64(days)/7)))
}

func (d *deriver) transactionsPerDay() string {
	days := d.in.Series.Days()
	if days == 0 {
		return "Transactions per day: " + notAvailable
	}
	return d.p.Sprintf("You make an average of %.2f transactions per day.", float64(len(d.dated))/float64(days))
}

// extreme reports the first debit that wins better against every other one.
func (d *deriver) extreme(word string, better func(a, b float64) bool) string {
	if len(d.debits) == 0 {
		return "Your " + word + " transaction: " + notAvailable
	}
	pick := 0
	for i := range d.values {
		if better(d.values[i], d.values[pick]) {
			pick = i
		}
	}
	tx := d.debits[pick]
	if date, ok := tx.ParsedDate(); ok {
		return d.p.Sprintf("Your %s transaction was %s at %s on %s.",
			word, d.money(d.values[pick]), tx.Vendor, date.Format("2 Jan"))
	}
	return d.p.Sprintf("Your %s transaction was %s at %s.", word, d.money(d.values[pick]), tx.Vendor)
}

func (d *deriver) weekendSplit() string {
	var weekend, weekday float64
	for _, dd := range d.dated {
		v := dd.tx.Amount.InexactFloat64()
		if wd := dd.date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			weekend += v
		} else {
			weekday += v
		}
	}
	return d.p.Sprintf("You spent %s on weekends and %s on weekdays.", d.money(weekend), d.money(weekday))
}

func (d *deriver) busiestWeekday() string {
	type dayCount struct {
		day   time.Weekday
		count int
	}
	var counts []dayCount
	seen := make(map[time.Weekday]int)
	for _, dd := range d.dated {
		wd := dd.date.Weekday()
		i, ok := seen[wd]
		if !ok {
			i = len(counts)
			seen[wd] = i
			counts = append(counts, dayCount{day: wd})
		}
		counts[i].count++
	}
	if len(counts) == 0 {
		return "Busiest day of the week: " + notAvailable
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].count > counts[j].count })
	return d.p.Sprintf("You make the most transactions on %ss (%d transactions).", counts[0].day.String(), counts[0].count)
}

// periodName labels a bucket for prose; months use their full name.
func (d *deriver) periodName(b timeseries.Bucket) string {
	if d.in.Series.Granularity == timeseries.Month {
		return b.Start.Format("January 2006")
	}
	return b.Label
}

func (d *deriver) datedTotal() float64 {
	var sum float64
	for _, dd := range d.dated {
		sum += dd.tx.Amount.InexactFloat64()
	}
	return sum
}

// money renders v in rupees with English digit grouping, dropping a zero
// fractional part.
func (d *deriver) money(v float64) string {
	v = math.Round(v*100) / 100
	if v == math.Trunc(v) {
		return d.p.Sprintf("₹%.0f", v)
	}
	return d.p.Sprintf("₹%.2f", v)
}

func percent(share float64) int {
	return int(math.Round(share * 100))
}
