package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"fundview/internal/models"
)

// Summary-row field positions. The results printer reads these back out of
// rendered rows, so builders and the printer must agree on them.
const (
	btDate          = 0
	btTicker        = 1
	btPositionValue = 7
	btCashBalance   = 8
	btTotalValue    = 9
	btReturnPct     = 10
	btSharpe        = 11
	btSortino       = 12
	btMaxDrawdown   = 13

	btSummaryFields = 14
	btTradeFields   = 11
)

// BuildBacktestRow converts a backtest entry into a rendered table row.
// Summary entries become 14-field portfolio rows; trade entries become
// 11-field per-ticker rows.
func (r *Renderer) BuildBacktestRow(e models.BacktestEntry) (models.BacktestRow, error) {
	if e.IsSummary {
		return r.buildSummaryRow(e)
	}
	return r.buildTradeRow(e)
}

func (r *Renderer) buildSummaryRow(e models.BacktestEntry) (models.BacktestRow, error) {
	if e.TotalValue == nil || e.CashBalance == nil || e.TotalPositionValue == nil || e.ReturnPct == nil {
		return nil, fmt.Errorf("summary entry for %s is missing portfolio totals", e.Date)
	}

	heading := r.tr.Label("backtest.table.summary_heading", r.lang, "PORTFOLIO SUMMARY")

	returnColor := colorGreen
	if *e.ReturnPct < 0 {
		returnColor = colorRed
	}

	row := make(models.BacktestRow, btSummaryFields)
	row[btDate] = e.Date
	row[btTicker] = colorWhite + colorBold + heading + colorReset
	row[btPositionValue] = colorize(colorYellow, FormatCurrency(*e.TotalPositionValue))
	row[btCashBalance] = colorize(colorCyan, FormatCurrency(*e.CashBalance))
	row[btTotalValue] = colorize(colorWhite, FormatCurrency(*e.TotalValue))
	row[btReturnPct] = colorize(returnColor, FormatSignedPercent(*e.ReturnPct))
	if e.SharpeRatio != nil {
		row[btSharpe] = colorize(colorYellow, FormatRatio(*e.SharpeRatio))
	}
	if e.SortinoRatio != nil {
		row[btSortino] = colorize(colorYellow, FormatRatio(*e.SortinoRatio))
	}
	if e.MaxDrawdown != nil {
		row[btMaxDrawdown] = colorize(colorRed, fmt.Sprintf("%.2f%%", math.Abs(*e.MaxDrawdown)))
	}
	return row, nil
}

func (r *Renderer) buildTradeRow(e models.BacktestEntry) (models.BacktestRow, error) {
	if e.Ticker == "" {
		return nil, fmt.Errorf("trade entry for %s has no ticker", e.Date)
	}

	action := strings.ToUpper(e.Action)
	ac := backtestActionColor(action)

	row := make(models.BacktestRow, 0, btTradeFields)
	row = append(row,
		e.Date,
		colorize(colorCyan, e.Ticker),
		colorize(ac, r.tr.Action(action, r.lang)),
		colorize(ac, FormatShares(e.Quantity)),
		colorize(colorWhite, FormatCurrency(e.Price)),
		colorize(colorGreen, FormatShares(e.LongShares)),
		colorize(colorRed, FormatShares(e.ShortShares)),
		colorize(colorYellow, FormatCurrency(e.PositionValue)),
		colorize(colorGreen, strconv.Itoa(e.BullishCount)),
		colorize(colorRed, strconv.Itoa(e.BearishCount)),
		colorize(colorBlue, strconv.Itoa(e.NeutralCount)),
	)
	return row, nil
}

// PrintBacktestResults clears the screen, prints the latest portfolio
// summary block, then the full trade table. Rows must have been produced by
// BuildBacktestRow; summary rows are recognized by their heading cell and
// their currency cells are parsed back out for the summary block.
func (r *Renderer) PrintBacktestResults(rows []models.BacktestRow) error {
	fmt.Fprint(r.w, "\033[2J\033[H")

	heading := r.tr.Label("backtest.table.summary_heading", r.lang, "PORTFOLIO SUMMARY")

	var latest models.BacktestRow
	trades := make([][]string, 0, len(rows))
	for _, row := range rows {
		if len(row) > btTicker && strings.Contains(row[btTicker], heading) {
			if latest == nil || row.Date() > latest.Date() {
				latest = row
			}
			continue
		}
		trades = append(trades, row)
	}

	if latest != nil {
		if err := r.printSummaryBlock(latest); err != nil {
			return err
		}
	}

	headers := []string{
		r.tr.Label("backtest.table.date", r.lang, "Date"),
		r.tr.Label("backtest.table.ticker", r.lang, "Ticker"),
		r.tr.Label("backtest.table.action", r.lang, "Action"),
		r.tr.Label("backtest.table.quantity", r.lang, "Quantity"),
		r.tr.Label("backtest.table.price", r.lang, "Price"),
		r.tr.Label("backtest.table.long_shares", r.lang, "Long"),
		r.tr.Label("backtest.table.short_shares", r.lang, "Short"),
		r.tr.Label("backtest.table.position_value_column", r.lang, "Position Value"),
		r.tr.Label("backtest.table.bullish", r.lang, "Bullish"),
		r.tr.Label("backtest.table.bearish", r.lang, "Bearish"),
		r.tr.Label("backtest.table.neutral", r.lang, "Neutral"),
	}
	aligns := []Align{
		AlignLeft, AlignLeft, AlignCenter,
		AlignRight, AlignRight, AlignRight, AlignRight,
		AlignRight, AlignRight, AlignRight, AlignRight,
	}

	Grid(r.w, headers, trades, aligns)
	fmt.Fprint(r.w, "\n\n\n\n\n")
	return nil
}

func (r *Renderer) printSummaryBlock(row models.BacktestRow) error {
	if len(row) != btSummaryFields {
		return fmt.Errorf("summary row for %s has %d fields, want %d", row.Date(), len(row), btSummaryFields)
	}

	cash, err := parseSummaryCurrency(row[btCashBalance])
	if err != nil {
		return fmt.Errorf("summary row %s cash balance: %w", row.Date(), err)
	}
	position, err := parseSummaryCurrency(row[btPositionValue])
	if err != nil {
		return fmt.Errorf("summary row %s position value: %w", row.Date(), err)
	}
	total, err := parseSummaryCurrency(row[btTotalValue])
	if err != nil {
		return fmt.Errorf("summary row %s total value: %w", row.Date(), err)
	}

	header := r.tr.Label("backtest.table.summary_heading", r.lang, "PORTFOLIO SUMMARY")
	fmt.Fprintf(r.w, "\n%s\n", colorize(colorWhite+colorBold, header+":"))

	fmt.Fprintf(r.w, "%s: %s\n",
		r.tr.Label("backtest.table.cash_balance", r.lang, "Cash Balance"),
		colorize(colorCyan, FormatCurrency(cash)))
	fmt.Fprintf(r.w, "%s: %s\n",
		r.tr.Label("backtest.table.position_value", r.lang, "Total Position Value"),
		colorize(colorYellow, FormatCurrency(position)))
	fmt.Fprintf(r.w, "%s: %s\n",
		r.tr.Label("backtest.table.total_value", r.lang, "Total Value"),
		colorize(colorWhite, FormatCurrency(total)))
	fmt.Fprintf(r.w, "%s: %s\n",
		r.tr.Label("backtest.table.return", r.lang, "Return"),
		row[btReturnPct])

	if row[btSharpe] != "" {
		fmt.Fprintf(r.w, "%s: %s\n",
			r.tr.Label("backtest.table.sharpe_ratio", r.lang, "Sharpe Ratio"),
			row[btSharpe])
	}
	if row[btSortino] != "" {
		fmt.Fprintf(r.w, "%s: %s\n",
			r.tr.Label("backtest.table.sortino_ratio", r.lang, "Sortino Ratio"),
			row[btSortino])
	}
	if row[btMaxDrawdown] != "" {
		fmt.Fprintf(r.w, "%s: %s\n",
			r.tr.Label("backtest.table.max_drawdown", r.lang, "Max Drawdown"),
			row[btMaxDrawdown])
	}

	fmt.Fprint(r.w, "\n\n\n")
	return nil
}

// parseSummaryCurrency recovers the numeric amount from a colorized currency
// cell: the text between the "$" marker and the ANSI reset, commas stripped.
func parseSummaryCurrency(cell string) (float64, error) {
	_, after, found := strings.Cut(cell, "$")
	if !found {
		return 0, fmt.Errorf("no currency marker in %q", cell)
	}
	amount, _, found := strings.Cut(after, colorReset)
	if !found {
		return 0, fmt.Errorf("no reset marker in %q", cell)
	}
	amount = strings.ReplaceAll(amount, ",", "")
	if amount == "" {
		return 0, fmt.Errorf("empty amount in %q", cell)
	}
	v, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return 0, fmt.Errorf("amount %q: %w", amount, err)
	}
	return v, nil
}
