// Package pipeline runs statement lines through extraction, aggregation,
// bucketing and insight derivation and assembles the response bundle.
package pipeline

import (
	"github.com/shopspring/decimal"

	"statement-insights-backend/internal/insights"
	"statement-insights-backend/internal/statement"
	"statement-insights-backend/internal/timeseries"
)

const (
	MessageNoData  = "No data to display"
	MessageNoDates = "No valid transaction dates found"
)

// Options configures an Engine. Zero values fall back to the defaults.
type Options struct {
	Statement statement.Config
	Insights  insights.Config
}

// Engine is built once at startup and reused for every document.
type Engine struct {
	steps []Step
}

// New builds an Engine from opts.
func New(opts Options) *Engine {
	if opts.Insights == (insights.Config{}) {
		opts.Insights = insights.DefaultConfig()
	}
	return &Engine{
		steps: []Step{
			&ExtractStep{Extractor: statement.NewExtractor(opts.Statement)},
			&AggregateStep{},
			&BucketStep{},
			&InsightStep{Config: opts.Insights},
		},
	}
}

// Result is the output bundle for one document.
type Result struct {
	Transactions   []statement.Transaction    `json:"transactions"`
	CategoryTotals map[string]decimal.Decimal `json:"categoryTotals"`
	GrandTotal     decimal.Decimal            `json:"grandTotal"`
	Report         Report                     `json:"report"`
}

// Report is the temporal and narrative half of the bundle. When Available
// is false, Message says why and Series and Insights are empty.
type Report struct {
	Available   bool                   `json:"available"`
	Message     string                 `json:"message,omitempty"`
	Granularity timeseries.Granularity `json:"granularity,omitempty"`
	Series      []timeseries.Bucket    `json:"series"`
	Categories  []insights.Slice       `json:"categories"`
	Insights    []string               `json:"insights"`
}

// Run processes the text lines of one statement. It never fails and is
// deterministic for a given input.
func (e *Engine) Run(lines []string) Result {
	state := &State{Lines: lines}
	for _, step := range e.steps {
		step.Execute(state)
	}
	return assemble(state)
}

func assemble(state *State) Result {
	report := Report{
		Available:   !state.Series.Empty(),
		Granularity: state.Series.Granularity,
		Series:      state.Series.Buckets,
		Categories:  state.Slices,
		Insights:    state.Insights,
	}
	switch {
	case len(state.Transactions) == 0:
		report.Message = MessageNoData
	case state.Series.Empty():
		report.Message = MessageNoDates
	}

	return Result{
		Transactions:   state.Transactions,
		CategoryTotals: state.Totals.ByCategory,
		GrandTotal:     state.Totals.Grand,
		Report:         report,
	}
}
