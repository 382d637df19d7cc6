// Package models defines the data consumed by the presentation layer: the
// agent pipeline's decision/signal output and the backtest engine's rows.
package models

import "sort"

// Decision is the portfolio manager's final call for one ticker.
// Reasoning may be a plain string, a structured map, or anything else the
// pipeline emits; it is coerced to text at render time.
type Decision struct {
	Action     string  `json:"action"`
	Quantity   int64   `json:"quantity"`
	Confidence float64 `json:"confidence"`
	Reasoning  any     `json:"reasoning,omitempty"`
}

// AnalystSignal is one agent's view of one ticker.
type AnalystSignal struct {
	Signal     string  `json:"signal"`
	Confidence float64 `json:"confidence"`
	Reasoning  any     `json:"reasoning,omitempty"`
}

// TradingResult is the agent pipeline's output document. Both maps may be
// empty or absent; that is a valid "nothing to show" state.
type TradingResult struct {
	Decisions      map[string]Decision                 `json:"decisions"`
	AnalystSignals map[string]map[string]AnalystSignal `json:"analyst_signals"`
}

// Tickers returns the decision tickers in sorted order. Go map iteration is
// unordered, so rendering fixes a deterministic order here.
func (r *TradingResult) Tickers() []string {
	if r == nil {
		return nil
	}
	tickers := make([]string, 0, len(r.Decisions))
	for t := range r.Decisions {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)
	return tickers
}

// Agents returns the signal-producing agent identifiers in sorted order.
func (r *TradingResult) Agents() []string {
	if r == nil {
		return nil
	}
	agents := make([]string, 0, len(r.AnalystSignals))
	for a := range r.AnalystSignals {
		agents = append(agents, a)
	}
	sort.Strings(agents)
	return agents
}

// BacktestRow is a pre-formatted, pre-colorized results row: 11 fields for a
// per-trade row, 14 for a portfolio-summary row. Summary rows are recognized
// by the localized summary heading appearing in the second field.
type BacktestRow []string

// Date returns the row's sort field. ISO dates compare lexicographically in
// chronological order.
func (r BacktestRow) Date() string {
	if len(r) == 0 {
		return ""
	}
	return r[0]
}

// BacktestEntry is one backtest engine record before row formatting.
// Pointer fields distinguish "absent" from "numerically zero".
type BacktestEntry struct {
	Date          string  `json:"date"`
	Ticker        string  `json:"ticker,omitempty"`
	Action        string  `json:"action,omitempty"`
	Quantity      float64 `json:"quantity,omitempty"`
	Price         float64 `json:"price,omitempty"`
	LongShares    float64 `json:"long_shares,omitempty"`
	ShortShares   float64 `json:"short_shares,omitempty"`
	PositionValue float64 `json:"position_value,omitempty"`
	BullishCount  int     `json:"bullish_count,omitempty"`
	BearishCount  int     `json:"bearish_count,omitempty"`
	NeutralCount  int     `json:"neutral_count,omitempty"`

	IsSummary          bool     `json:"is_summary,omitempty"`
	TotalValue         *float64 `json:"total_value,omitempty"`
	ReturnPct          *float64 `json:"return_pct,omitempty"`
	CashBalance        *float64 `json:"cash_balance,omitempty"`
	TotalPositionValue *float64 `json:"total_position_value,omitempty"`
	SharpeRatio        *float64 `json:"sharpe_ratio,omitempty"`
	SortinoRatio       *float64 `json:"sortino_ratio,omitempty"`
	MaxDrawdown        *float64 `json:"max_drawdown,omitempty"`
}
