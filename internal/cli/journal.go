package cli

import (
	"time"

	"github.com/spf13/cobra"

	"fundview/internal/render"
	"fundview/internal/store"
)

func newJournalCmd(app *App) *cobra.Command {
	var (
		tickerFlag string
		limitFlag  int
	)

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "List recorded trading decisions",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			lang := app.language(cmd)
			tr := app.Translator

			journal, err := store.OpenJournal(app.Config.Journal.Path)
			if err != nil {
				return err
			}
			defer journal.Close()

			entries, err := journal.ListDecisions(cmd.Context(), store.JournalFilter{
				Ticker: tickerFlag,
				Limit:  limitFlag,
			})
			if err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(entries)
			}

			if len(entries) == 0 {
				output.Warning("%s", tr.Label("journal.empty", lang, "No decisions recorded yet."))
				return nil
			}

			output.Info("%s", tr.Label("journal.header", lang, "Decision Journal"))

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					e.RecordedAt.Format(time.DateTime),
					e.Ticker,
					tr.Action(e.Action, lang),
					render.FormatShares(float64(e.Quantity)),
					render.FormatConfidence(e.Confidence),
					e.Language,
				})
			}

			render.Grid(output.Writer(),
				[]string{
					tr.Label("journal.table.recorded_at", lang, "Recorded At"),
					tr.Label("display.table.ticker", lang, "Ticker"),
					tr.Label("display.table.action", lang, "Action"),
					tr.Label("display.table.quantity", lang, "Quantity"),
					tr.Label("display.table.confidence", lang, "Confidence"),
					tr.Label("journal.table.language", lang, "Language"),
				},
				rows,
				[]render.Align{
					render.AlignLeft, render.AlignLeft, render.AlignCenter,
					render.AlignRight, render.AlignRight, render.AlignLeft,
				},
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&tickerFlag, "ticker", "", "filter by ticker")
	cmd.Flags().IntVar(&limitFlag, "limit", 50, "maximum entries to show")
	return cmd
}
