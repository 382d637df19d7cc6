package render

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Align is a per-column alignment token for Grid.
type Align = tw.Align

const (
	AlignLeft   = tw.AlignLeft
	AlignCenter = tw.AlignCenter
	AlignRight  = tw.AlignRight
)

// Grid renders rows as a bordered grid with optional headers and per-column
// alignment. Cells keep their ANSI colors and embedded line breaks; headers
// are emitted verbatim (no auto-formatting), since several are localized and
// one carries a color prefix.
func Grid(w io.Writer, headers []string, rows [][]string, aligns []Align) {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Formatting: tw.CellFormatting{AutoFormat: tw.Off, AutoWrap: tw.WrapNone},
			Alignment:  tw.CellAlignment{PerColumn: aligns},
		},
		Row: tw.CellConfig{
			Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
			Alignment:  tw.CellAlignment{PerColumn: aligns},
		},
	}

	opts := []tablewriter.Option{tablewriter.WithConfig(cfg)}
	if len(headers) > 0 {
		opts = append(opts, tablewriter.WithHeader(headers))
	}

	table := tablewriter.NewTable(w, opts...)
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
}
