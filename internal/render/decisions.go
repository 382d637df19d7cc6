package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"fundview/internal/i18n"
	"fundview/internal/models"
)

// unrankedAgent sorts agents missing from the ordering map after every
// ranked analyst.
const unrankedAgent = 999

// riskManagementAgent is excluded from the per-ticker signal tables; its
// output is risk plumbing, not an analyst opinion.
const riskManagementAgent = "risk_management_agent"

// Renderer writes localized decision and backtest tables to a single output
// stream. It holds no mutable state across calls.
type Renderer struct {
	w     io.Writer
	tr    *i18n.Translator
	lang  i18n.Language
	order map[string]int
}

// New creates a Renderer. order maps analyst keys to display ranks; the
// risk-management slot is appended as the last rank at render time.
func New(w io.Writer, tr *i18n.Translator, lang i18n.Language, order map[string]int) *Renderer {
	return &Renderer{w: w, tr: tr, lang: lang, order: order}
}

// Language returns the renderer's language mode.
func (r *Renderer) Language() i18n.Language {
	return r.lang
}

// orderWithRiskManagement copies the analyst ordering and appends the
// risk-management slot after all regular analysts.
func (r *Renderer) orderWithRiskManagement() map[string]int {
	order := make(map[string]int, len(r.order)+1)
	for k, v := range r.order {
		order[k] = v
	}
	order["risk_management"] = len(order)
	return order
}

// PrintTradingOutput renders the full decision report: per-ticker agent
// signal tables, per-ticker decision tables, the portfolio summary, and the
// portfolio strategy block.
func (r *Renderer) PrintTradingOutput(result *models.TradingResult) error {
	if result == nil || len(result.Decisions) == 0 {
		msg := r.tr.Label("display.no_decisions", r.lang, "No trading decisions available")
		fmt.Fprintln(r.w, colorize(colorRed, msg))
		return nil
	}

	order := r.orderWithRiskManagement()

	for _, ticker := range result.Tickers() {
		decision := result.Decisions[ticker]

		heading, err := r.tr.Resolve("display.analysis_heading", r.lang, "", i18n.Vars{"ticker": ticker})
		if err != nil {
			return err
		}
		fmt.Fprintf(r.w, "\n%s\n", colorize(colorWhite+colorBold, heading))
		fmt.Fprintln(r.w, colorize(colorWhite+colorBold, strings.Repeat("=", 50)))

		if err := r.printAgentSignals(result, ticker, order); err != nil {
			return err
		}
		if err := r.printDecision(ticker, decision); err != nil {
			return err
		}
	}

	if err := r.printPortfolioSummary(result); err != nil {
		return err
	}
	return r.printPortfolioStrategy(result)
}

type signalRow struct {
	rank  int
	cells []string
}

func (r *Renderer) printAgentSignals(result *models.TradingResult, ticker string, order map[string]int) error {
	rows := make([]signalRow, 0, len(result.AnalystSignals))
	for _, agent := range result.Agents() {
		signal, ok := result.AnalystSignals[agent][ticker]
		if !ok || agent == riskManagementAgent {
			continue
		}

		agentKey := strings.TrimSuffix(agent, "_agent")
		rank, ok := order[agentKey]
		if !ok {
			rank = unrankedAgent
		}

		signalType := strings.ToUpper(signal.Signal)
		reasoning := ""
		if signal.Reasoning != nil {
			reasoning = WrapReasoning(signal.Reasoning)
		}

		rows = append(rows, signalRow{
			rank: rank,
			cells: []string{
				colorize(colorCyan, r.tr.AgentName(agentKey, r.lang)),
				colorize(signalColor(signalType), r.tr.Signal(signalType, r.lang)),
				colorize(colorWhite, FormatConfidenceInt(signal.Confidence)),
				colorize(colorWhite, reasoning),
			},
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].rank < rows[j].rank })
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = row.cells
	}

	header, err := r.tr.Resolve("display.agent_analysis_header", r.lang, "", i18n.Vars{"ticker": ticker})
	if err != nil {
		return err
	}
	fmt.Fprintf(r.w, "\n%s\n", colorize(colorWhite+colorBold, header))

	Grid(r.w,
		[]string{
			colorWhite + r.tr.Label("display.table.agent", r.lang, "Agent"),
			r.tr.Label("display.table.signal", r.lang, "Signal"),
			r.tr.Label("display.table.confidence", r.lang, "Confidence"),
			r.tr.Label("display.table.reasoning", r.lang, "Reasoning"),
		},
		cells,
		[]Align{AlignLeft, AlignCenter, AlignRight, AlignLeft},
	)
	return nil
}

func (r *Renderer) printDecision(ticker string, decision models.Decision) error {
	action := strings.ToUpper(decision.Action)
	ac := actionColor(action)

	wrapped := ""
	if decision.Reasoning != nil {
		wrapped = WrapReasoning(decision.Reasoning)
	}

	rows := [][]string{
		{r.tr.Label("display.table.action", r.lang, "Action"), colorize(ac, r.tr.Action(action, r.lang))},
		{r.tr.Label("display.table.quantity", r.lang, "Quantity"), colorize(ac, strconv.FormatInt(decision.Quantity, 10))},
		{r.tr.Label("display.table.confidence", r.lang, "Confidence"), colorize(colorWhite, FormatConfidence(decision.Confidence))},
		{r.tr.Label("display.table.reasoning", r.lang, "Reasoning"), colorize(colorWhite, wrapped)},
	}

	header, err := r.tr.Resolve("display.trading_decision_header", r.lang, "", i18n.Vars{"ticker": ticker})
	if err != nil {
		return err
	}
	fmt.Fprintf(r.w, "\n%s\n", colorize(colorWhite+colorBold, header))

	Grid(r.w, nil, rows, []Align{AlignLeft, AlignLeft})
	return nil
}

func (r *Renderer) printPortfolioSummary(result *models.TradingResult) error {
	header := r.tr.Label("display.portfolio_summary_header", r.lang, "Portfolio Summary")
	fmt.Fprintf(r.w, "\n%s\n", colorize(colorWhite+colorBold, header))

	rows := make([][]string, 0, len(result.Decisions))
	for _, ticker := range result.Tickers() {
		decision := result.Decisions[ticker]
		action := strings.ToUpper(decision.Action)
		ac := actionColor(action)
		rows = append(rows, []string{
			colorize(colorCyan, ticker),
			colorize(ac, r.tr.Action(action, r.lang)),
			colorize(ac, strconv.FormatInt(decision.Quantity, 10)),
			colorize(colorWhite, FormatConfidence(decision.Confidence)),
		})
	}

	Grid(r.w,
		[]string{
			colorWhite + r.tr.Label("display.table.ticker", r.lang, "Ticker"),
			r.tr.Label("display.table.action", r.lang, "Action"),
			r.tr.Label("display.table.quantity", r.lang, "Quantity"),
			r.tr.Label("display.table.portfolio_confidence", r.lang, "Confidence"),
		},
		rows,
		[]Align{AlignLeft, AlignCenter, AlignRight, AlignRight},
	)
	return nil
}

// printPortfolioStrategy prints the first non-empty decision reasoning as
// the portfolio manager's strategy note. The reasoning is shared across
// tickers by the pipeline, so the first hit is representative.
func (r *Renderer) printPortfolioStrategy(result *models.TradingResult) error {
	var reasoning any
	for _, ticker := range result.Tickers() {
		if rs := result.Decisions[ticker].Reasoning; rs != nil && ReasoningText(rs) != "" {
			reasoning = rs
			break
		}
	}
	if reasoning == nil {
		return nil
	}

	header := r.tr.Label("display.portfolio_strategy_header", r.lang, "Portfolio Strategy")
	fmt.Fprintf(r.w, "\n%s\n", colorize(colorWhite+colorBold, header))

	text, err := r.tr.Resolve("display.portfolio_strategy_text", r.lang, "",
		i18n.Vars{"text": WrapReasoning(reasoning)})
	if err != nil {
		return err
	}
	fmt.Fprintln(r.w, colorize(colorCyan, text))
	return nil
}
