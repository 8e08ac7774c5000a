package output

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/railwatch/railwatch-cli/internal/models"
)

// ColorMode represents the color output mode
type ColorMode int

const (
	// ColorAuto enables colors if output is a TTY
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on
	ColorAlways
	// ColorNever disables colors
	ColorNever
)

// Colors holds the color functions for the status card
type Colors struct {
	Title   func(format string, a ...interface{}) string
	Label   func(format string, a ...interface{}) string
	Value   func(format string, a ...interface{}) string
	Delayed func(format string, a ...interface{}) string
	OnTime  func(format string, a ...interface{}) string
	Station func(format string, a ...interface{}) string
	Error   func(format string, a ...interface{}) string
	Summary func(format string, a ...interface{}) string
	Muted   func(format string, a ...interface{}) string
}

// NewColors creates a new Colors instance based on the color mode
func NewColors(mode ColorMode) *Colors {
	useColors := false
	switch mode {
	case ColorAlways:
		useColors = true
		color.NoColor = false // Force colors on
	case ColorNever:
		useColors = false
	case ColorAuto:
		useColors = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	if !useColors {
		noColor := func(format string, a ...interface{}) string {
			if len(a) == 0 {
				return format
			}
			return fmt.Sprintf(format, a...)
		}
		return &Colors{
			Title:   noColor,
			Label:   noColor,
			Value:   noColor,
			Delayed: noColor,
			OnTime:  noColor,
			Station: noColor,
			Error:   noColor,
			Summary: noColor,
			Muted:   noColor,
		}
	}

	return &Colors{
		Title:   color.New(color.FgWhite, color.Bold).SprintfFunc(),
		Label:   color.New(color.FgHiBlack).SprintfFunc(),
		Value:   color.New(color.FgWhite).SprintfFunc(),
		Delayed: color.New(color.FgRed, color.Bold).SprintfFunc(),
		OnTime:  color.New(color.FgGreen).SprintfFunc(),
		Station: color.New(color.FgCyan, color.Bold).SprintfFunc(),
		Error:   color.New(color.FgRed).SprintfFunc(),
		Summary: color.New(color.FgMagenta, color.Italic).SprintfFunc(),
		Muted:   color.New(color.FgHiBlack).SprintfFunc(),
	}
}

// FormatDelay colors the delay text by its classification
func (c *Colors) FormatDelay(s models.TrainStatus) string {
	if s.IsDelayed() {
		return c.Delayed("%s", s.Delay)
	}
	return c.OnTime("%s", s.Delay)
}

// ParseColorMode parses a color mode string
func ParseColorMode(s string) ColorMode {
	switch s {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}
