package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and key events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case lookupResultMsg:
		return m.handleLookupResult(msg)

	case summaryResultMsg:
		return m.handleSummaryResult(msg)

	case spinner.TickMsg:
		// Stop ticking once nothing is in flight
		if !m.session.Loading() && !m.session.SummaryLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Pass remaining messages to textinput when focused
	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleLookupResult(msg lookupResultMsg) (tea.Model, tea.Cmd) {
	// Ignore stale results
	if !m.session.CompleteLookup(msg.token, msg.status, msg.err, m.now()) {
		return m, nil
	}

	if m.session.CanSummarize() {
		m.focus = focusCard
		m.input.Blur()
	}
	return m, nil
}

func (m Model) handleSummaryResult(msg summaryResultMsg) (tea.Model, tea.Cmd) {
	m.session.CompleteSummary(msg.token, msg.text, msg.err)
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	switch m.focus {
	case focusInput:
		return m.handleInputKeys(msg)
	case focusCard:
		return m.handleCardKeys(msg)
	}

	return m, nil
}

func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.search()

	case "esc":
		m.input.SetValue("")
		return m, nil

	case "tab":
		if _, ok := m.session.Record(); !ok {
			return m, nil
		}
		m.focus = focusCard
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleCardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "s", "enter":
		return m.summarize()

	case "tab", "esc", "/":
		m.focus = focusInput
		m.input.Focus()
		return m, nil
	}

	return m, nil
}

// search validates the input and starts a lookup. Invalid input is
// reported without calling the resolver.
func (m Model) search() (tea.Model, tea.Cmd) {
	token, number, ok := m.session.BeginSearch(m.input.Value())
	if !ok {
		return m, nil
	}
	return m, tea.Batch(lookupTrain(m.resolver, number, token), m.spinner.Tick)
}

func (m Model) summarize() (tea.Model, tea.Cmd) {
	token, status, ok := m.session.BeginSummary()
	if !ok {
		return m, nil
	}
	return m, tea.Batch(generateSummary(m.summarizer, status, token), m.spinner.Tick)
}
