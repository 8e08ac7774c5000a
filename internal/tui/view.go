package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/railwatch/railwatch-cli/internal/models"
	"github.com/railwatch/railwatch-cli/internal/output"
)

const summaryPrompt = "Press s to generate a travel summary."

// View renders the entire TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := renderHeader()
	inputBar := m.renderInputBar()
	statusBar := m.renderStatusBar()

	panelWidth := m.width - 2
	if panelWidth < 20 {
		panelWidth = 20
	}

	border := stylePanelNormal
	if m.focus == focusCard {
		border = stylePanelFocused
	}
	card := border.Width(panelWidth).Render(m.renderCard(panelWidth - 2))

	parts := []string{header, inputBar, card}
	if _, ok := m.session.Record(); ok {
		summary := stylePanelNormal.Width(panelWidth).Render(m.renderSummary(panelWidth - 2))
		parts = append(parts, summary)
	}
	parts = append(parts, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderHeader renders the logo and brand name.
func renderHeader() string {
	logo := "" +
		" ___________ \n" +
		"|[] [] [] []|\n" +
		"|___________|\n" +
		"  O  O  O  O "

	title := "" +
		"         _ _            _      _    \n" +
		" _ _ __ _(_) |_ __ ____ _| |_ __| |_  \n" +
		"| '_/ _` | | \\ V  V / _` |  _/ _| ' \\ \n" +
		"|_| \\__,_|_|_|\\_/\\_/\\__,_|\\__\\__|_||_|"

	return lipgloss.JoinHorizontal(lipgloss.Bottom, styleLogo.Render(logo), "  ", styleLogo.Render(title))
}

// renderInputBar renders the train number input.
func (m Model) renderInputBar() string {
	border := stylePanelNormal
	if m.focus == focusInput {
		border = stylePanelFocused
	}

	label := styleHeader.Render("Train number: ")
	return border.Width(m.width - 2).Render(label + m.input.View())
}

// renderCard renders the status card, or the loading/error/idle text in its place.
func (m Model) renderCard(width int) string {
	if m.session.Loading() {
		return m.spinner.View() + styleLoading.Render(" Fetching train status...")
	}
	if msg := m.session.Err(); msg != "" {
		return styleError.Render(" " + msg)
	}

	status, ok := m.session.Record()
	if !ok {
		return styleMuted.Render(" Enter a 5-digit train number and press Enter")
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(truncate(status.TrainName, width)))
	b.WriteString("\n")
	if at := m.session.UpdatedAt(); !at.IsZero() {
		b.WriteString(styleMuted.Render("Last Updated: " + output.FormatClock(at)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(cardRow("Current Status", styleValue.Render(status.Status)))
	b.WriteString("\n")
	b.WriteString(cardRow("Delay", renderDelay(status)))
	b.WriteString("\n")
	b.WriteString(cardRow("Next Station", styleStation.Render(status.NextStation)))
	b.WriteString("\n")
	b.WriteString(cardRow("Expected Arrival", styleValue.Render(status.ExpectedArrival)))

	return b.String()
}

func cardRow(label, value string) string {
	return styleLabel.Render(fmt.Sprintf(" %-17s", label)) + value
}

// renderDelay styles the delay text by its classification
func renderDelay(s models.TrainStatus) string {
	return delayStyle(s).Render(s.Delay)
}

// renderSummary renders the travel summary panel below the card.
func (m Model) renderSummary(width int) string {
	title := styleHeader.Render("Travel Summary")

	if m.session.SummaryLoading() {
		return title + "\n" + m.spinner.View() + styleLoading.Render(" Generating summary...")
	}

	if text := m.session.Summary(); text != "" {
		lines := output.Wrap(text, width-1)
		for i, line := range lines {
			lines[i] = " " + styleSummary.Render(line)
		}
		return title + "\n" + strings.Join(lines, "\n")
	}

	body := styleMuted.Render(" " + summaryPrompt)
	if msg := m.session.SummaryErr(); msg != "" {
		body = styleError.Render(" "+msg) + "\n" + body
	}
	return title + "\n" + body
}

// renderStatusBar renders context-aware keyboard hints at the bottom.
func (m Model) renderStatusBar() string {
	var hints string
	switch m.focus {
	case focusInput:
		hints = "Enter:search  Tab:card  Esc:clear  Ctrl+C:quit"
	case focusCard:
		if m.session.CanSummarize() {
			hints = "s:summary  Tab:input  /:search  q:quit"
		} else {
			hints = "Tab:input  /:search  q:quit"
		}
	}

	return styleStatusBar.Width(m.width).Render(" " + hints)
}

// truncate truncates a string to the given width.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-1] + "~"
}
