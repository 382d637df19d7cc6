package render

import "strings"

// ANSI SGR codes. The backtest summary reverse-parse is coupled to the
// literal reset marker, so cells are colorized with raw codes rather than a
// library that may strip them based on terminal detection.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
	colorBold   = "\033[1m"
)

func colorize(color, s string) string {
	return color + s + colorReset
}

// actionColor maps a trading action to its intent color for decision tables.
func actionColor(action string) string {
	switch strings.ToUpper(action) {
	case "BUY", "COVER":
		return colorGreen
	case "SELL", "SHORT":
		return colorRed
	case "HOLD":
		return colorYellow
	default:
		return colorWhite
	}
}

// backtestActionColor is the per-trade row variant: HOLD renders white.
func backtestActionColor(action string) string {
	switch strings.ToUpper(action) {
	case "BUY", "COVER":
		return colorGreen
	case "SELL", "SHORT":
		return colorRed
	default:
		return colorWhite
	}
}

// signalColor maps an analyst signal to its intent color.
func signalColor(signal string) string {
	switch strings.ToUpper(signal) {
	case "BULLISH":
		return colorGreen
	case "BEARISH":
		return colorRed
	case "NEUTRAL":
		return colorYellow
	default:
		return colorWhite
	}
}
