// Package cli provides the command-line interface for the report viewer.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Output handles informational CLI output around the rendered tables.
type Output struct {
	writer   io.Writer
	jsonMode bool
}

// NewOutput creates a new Output instance bound to the command's stdout.
func NewOutput(cmd *cobra.Command) *Output {
	jsonMode, _ := cmd.Flags().GetBool("json")
	if jsonMode {
		color.NoColor = true
	}
	return &Output{
		writer:   cmd.OutOrStdout(),
		jsonMode: jsonMode,
	}
}

// IsJSON returns true if JSON output mode is enabled.
func (o *Output) IsJSON() bool {
	return o.jsonMode
}

// JSON outputs data as indented JSON.
func (o *Output) JSON(data any) error {
	encoder := json.NewEncoder(o.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Writer returns the underlying writer for table rendering.
func (o *Output) Writer() io.Writer {
	return o.writer
}

// Printf prints a formatted message.
func (o *Output) Printf(format string, args ...any) {
	fmt.Fprintf(o.writer, format, args...)
}

// Println prints a message with newline.
func (o *Output) Println(args ...any) {
	fmt.Fprintln(o.writer, args...)
}

// Success prints a success message in green.
func (o *Output) Success(format string, args ...any) {
	fmt.Fprintln(o.writer, color.GreenString(format, args...))
}

// Error prints an error message in red.
func (o *Output) Error(format string, args ...any) {
	fmt.Fprintln(o.writer, color.RedString(format, args...))
}

// Warning prints a warning message in yellow.
func (o *Output) Warning(format string, args ...any) {
	fmt.Fprintln(o.writer, color.YellowString(format, args...))
}

// Info prints an info message in cyan.
func (o *Output) Info(format string, args ...any) {
	fmt.Fprintln(o.writer, color.CyanString(format, args...))
}
