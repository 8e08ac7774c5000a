package tui

import (
	"github.com/railwatch/railwatch-cli/internal/models"
	"github.com/railwatch/railwatch-cli/internal/session"
)

// lookupResultMsg carries a status lookup result back to the model.
// token is used for stale-result detection.
type lookupResultMsg struct {
	token  session.Token
	status *models.TrainStatus
	err    error
}

// summaryResultMsg carries a generated summary back to the model.
type summaryResultMsg struct {
	token session.Token
	text  string
	err   error
}
