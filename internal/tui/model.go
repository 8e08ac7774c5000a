package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/railwatch/railwatch-cli/internal/api"
	"github.com/railwatch/railwatch-cli/internal/session"
)

type focusPanel int

const (
	focusInput focusPanel = iota
	focusCard
)

// Model is the root Bubble Tea model for the TUI.
type Model struct {
	resolver   api.StatusResolver
	summarizer api.Summarizer
	width      int
	height     int

	input textinput.Model
	focus focusPanel

	spinner spinner.Model

	// Presentation state: current record, error, summary and request tokens
	session session.Session

	now func() time.Time
}

// New creates a new TUI model. opts configure the underlying session.
func New(resolver api.StatusResolver, summarizer api.Summarizer, opts ...session.Option) Model {
	ti := textinput.New()
	ti.Placeholder = "e.g. 12345"
	ti.Focus()
	ti.CharLimit = 16
	ti.Width = 20

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleLoading

	return Model{
		resolver:   resolver,
		summarizer: summarizer,
		input:      ti,
		focus:      focusInput,
		spinner:    sp,
		session:    session.New(opts...),
		now:        time.Now,
	}
}

// State returns the current presentation state.
func (m Model) State() session.State {
	return m.session.State()
}

// Init returns the initial command (textinput blink).
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
