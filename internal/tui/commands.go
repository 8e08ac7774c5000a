package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/railwatch/railwatch-cli/internal/api"
	"github.com/railwatch/railwatch-cli/internal/models"
	"github.com/railwatch/railwatch-cli/internal/session"
)

const (
	lookupTimeout  = 5 * time.Second
	summaryTimeout = 10 * time.Second
)

// lookupTrain returns a tea.Cmd that resolves a train's status.
// A panicking resolver is reported as an error.
func lookupTrain(resolver api.StatusResolver, number string, token session.Token) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if p := recover(); p != nil {
				msg = lookupResultMsg{token: token, err: fmt.Errorf("status lookup panicked: %v", p)}
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
		defer cancel()

		status, err := resolver.Lookup(ctx, number)
		return lookupResultMsg{
			token:  token,
			status: status,
			err:    err,
		}
	}
}

// generateSummary returns a tea.Cmd that summarizes a status record.
func generateSummary(summarizer api.Summarizer, status models.TrainStatus, token session.Token) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if p := recover(); p != nil {
				msg = summaryResultMsg{token: token, err: fmt.Errorf("summary panicked: %v", p)}
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), summaryTimeout)
		defer cancel()

		text, err := summarizer.Summarize(ctx, status)
		return summaryResultMsg{
			token: token,
			text:  text,
			err:   err,
		}
	}
}
