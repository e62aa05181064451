package pipeline

import (
	"statement-insights-backend/internal/insights"
	"statement-insights-backend/internal/statement"
	"statement-insights-backend/internal/timeseries"
)

// Step is one stage of a pipeline run. Steps read what earlier steps left
// in the state and add their own output.
type Step interface {
	Execute(state *State)
}

// State is shared by the steps of a single run.
type State struct {
	Lines        []string
	Transactions []statement.Transaction
	Totals       statement.Totals
	Series       timeseries.Series
	Slices       []insights.Slice
	Insights     []string
}

// ExtractStep recognizes transactions in the input lines.
type ExtractStep struct {
	Extractor *statement.Extractor
}

func (s *ExtractStep) Execute(state *State) {
	state.Transactions = s.Extractor.Extract(state.Lines)
}

// AggregateStep sums debits per category.
type AggregateStep struct{}

func (s *AggregateStep) Execute(state *State) {
	state.Totals = statement.Aggregate(state.Transactions)
}

// BucketStep builds the time series.
type BucketStep struct{}

func (s *BucketStep) Execute(state *State) {
	state.Series = timeseries.Build(state.Transactions)
}

// InsightStep computes the category breakdown and, when the series has
// dated data, the narrative insights.
type InsightStep struct {
	Config insights.Config
}

func (s *InsightStep) Execute(state *State) {
	state.Slices = insights.Slices(state.Totals.ByCategory, s.Config.MinVisualShare)
	if state.Series.Empty() {
		state.Insights = make([]string, 0)
		return
	}
	state.Insights = insights.Derive(insights.Input{
		Transactions: state.Transactions,
		Totals:       state.Totals,
		Series:       state.Series,
	}, s.Config)
}
