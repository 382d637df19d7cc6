package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"fundview/internal/analysts"
	"fundview/internal/i18n"
	"fundview/internal/logging"
	"fundview/internal/models"
	"fundview/internal/render"
	"fundview/internal/store"
)

func newReportCmd(app *App) *cobra.Command {
	var journalFlag bool

	cmd := &cobra.Command{
		Use:   "report <result.json>",
		Short: "Render a trading decision report",
		Long: `Render the decisions and analyst signals from a pipeline result file
as colored console tables. The file holds a JSON object with "decisions"
keyed by ticker and "analyst_signals" keyed by agent then ticker.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			lang := app.language(cmd)

			result, err := loadTradingResult(args[0])
			if err != nil {
				return err
			}

			for _, ticker := range result.Tickers() {
				d := result.Decisions[ticker]
				logging.LogDecision(app.Logger, ticker, d.Action, d.Quantity, d.Confidence)
			}

			if output.IsJSON() {
				return output.JSON(result)
			}

			r := render.New(output.Writer(), app.Translator, lang, analysts.OrderMap())
			if err := r.PrintTradingOutput(result); err != nil {
				return err
			}

			if journalFlag {
				if err := recordDecisions(cmd, app, result, lang); err != nil {
					return err
				}
				output.Info("Decisions recorded to journal")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&journalFlag, "journal", false, "record decisions to the journal")
	return cmd
}

func loadTradingResult(path string) (*models.TradingResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}

	var result models.TradingResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parsing result file %s: %w", path, err)
	}
	return &result, nil
}

func recordDecisions(cmd *cobra.Command, app *App, result *models.TradingResult, lang i18n.Language) error {
	journal, err := store.OpenJournal(app.Config.Journal.Path)
	if err != nil {
		return err
	}
	defer journal.Close()

	return journal.SaveDecisions(cmd.Context(), result, string(lang), time.Now())
}
