package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/railwatch/railwatch-cli/internal/models"
)

// ClockLayout renders "Last Updated" stamps the way the en-IN locale does (2:35:10 pm).
const ClockLayout = "3:04:05 pm"

// CardOptions configures the status card output
type CardOptions struct {
	Colors    *Colors
	UpdatedAt time.Time
}

// FormatClock formats t for the "Last Updated" line
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// RenderStatus renders a train status card
func RenderStatus(w io.Writer, s models.TrainStatus, opts CardOptions) {
	c := opts.Colors
	if c == nil {
		c = NewColors(ColorNever)
	}

	_, _ = fmt.Fprintln(w, c.Title("%s", s.TrainName))
	if !opts.UpdatedAt.IsZero() {
		_, _ = fmt.Fprintf(w, "%s\n", c.Muted("Last Updated: %s", FormatClock(opts.UpdatedAt)))
	}
	_, _ = fmt.Fprintln(w)

	rows := []struct {
		label string
		value string
	}{
		{"Current Status", c.Value("%s", s.Status)},
		{"Delay", c.FormatDelay(s)},
		{"Next Station", c.Station("%s", s.NextStation)},
		{"Expected Arrival", c.Value("%s", s.ExpectedArrival)},
	}
	for _, r := range rows {
		// Pad before coloring so alignment ignores ANSI codes
		label := fmt.Sprintf("%-17s", r.label)
		_, _ = fmt.Fprintf(w, "  %s %s\n", c.Label("%s", label), r.value)
	}
}

// RenderSummary renders the travel summary wrapped to width columns
func RenderSummary(w io.Writer, summary string, width int, c *Colors) {
	if c == nil {
		c = NewColors(ColorNever)
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, c.Title("Travel Summary"))
	for _, line := range Wrap(summary, width) {
		_, _ = fmt.Fprintf(w, "  %s\n", c.Summary("%s", line))
	}
}

// RenderError renders a user-facing error message
func RenderError(w io.Writer, msg string, c *Colors) {
	if c == nil {
		c = NewColors(ColorNever)
	}
	_, _ = fmt.Fprintln(w, c.Error("%s", msg))
}

// Wrap splits text into lines of at most width runes, breaking on spaces.
// Words longer than width are kept whole.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	var cur strings.Builder
	curLen := 0
	for _, word := range words {
		wl := len([]rune(word))
		if curLen > 0 && curLen+1+wl > width {
			lines = append(lines, cur.String())
			cur.Reset()
			curLen = 0
		}
		if curLen > 0 {
			cur.WriteByte(' ')
			curLen++
		}
		cur.WriteString(word)
		curLen += wl
	}
	lines = append(lines, cur.String())
	return lines
}
