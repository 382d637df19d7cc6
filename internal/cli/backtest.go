package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fundview/internal/analysts"
	"fundview/internal/models"
	"fundview/internal/render"
)

func newBacktestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "backtest <entries.json>",
		Short: "Render backtest results",
		Long: `Render a backtest run as a console view: the latest portfolio summary
followed by the per-day trade table. The file holds a JSON array of
entries; entries with "is_summary" true carry the portfolio totals.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			lang := app.language(cmd)

			entries, err := loadBacktestEntries(args[0])
			if err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(entries)
			}

			r := render.New(output.Writer(), app.Translator, lang, analysts.OrderMap())

			rows := make([]models.BacktestRow, 0, len(entries))
			for _, e := range entries {
				row, err := r.BuildBacktestRow(e)
				if err != nil {
					app.Logger.Warn().Err(err).Str("date", e.Date).Msg("Skipping backtest entry")
					continue
				}
				rows = append(rows, row)
			}

			return r.PrintBacktestResults(rows)
		},
	}
}

func loadBacktestEntries(path string) ([]models.BacktestEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading backtest file: %w", err)
	}

	var entries []models.BacktestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing backtest file %s: %w", path, err)
	}
	return entries, nil
}
