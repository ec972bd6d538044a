// Package tui renders launcher output in the terminal: modal notices shown
// during bootstrap and the city list.
package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/dollhouse-client/internal/logger"
	"github.com/MKhiriev/dollhouse-client/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// DialogReporter shows each notice as a blocking terminal dialog. When no
// terminal is available the notice is only logged.
type DialogReporter struct {
	logger *logger.Logger
	copy   func(string) error
	run    func(ctx context.Context, m tea.Model) (tea.Model, error)
}

func NewDialogReporter(log *logger.Logger) *DialogReporter {
	return &DialogReporter{
		logger: log,
		copy:   clipboard.WriteAll,
		run:    runProgram,
	}
}

func runProgram(ctx context.Context, m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithContext(ctx)).Run()
}

// Report blocks until the user closes the dialog.
func (r *DialogReporter) Report(ctx context.Context, notice models.Notice) {
	event := r.logger.Warn()
	if notice.Severity == models.SeverityFatal {
		event = r.logger.Error()
	}
	event.Str("code", notice.Code).Str("severity", notice.Severity.String()).Msg(notice.Message)

	if _, err := r.run(ctx, newNoticeModel(notice, r.copy)); err != nil {
		r.logger.Debug().Err(fmt.Errorf("dialog unavailable: %w", err)).Msg("notice was logged only")
	}
}
