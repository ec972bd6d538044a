package tui

import (
	"fmt"

	"github.com/MKhiriev/dollhouse-client/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// noticeModel is a single modal message box. It closes on enter, esc or q.
type noticeModel struct {
	notice models.Notice
	copy   func(string) error
	status string
	closed bool
}

func newNoticeModel(notice models.Notice, copyFn func(string) error) noticeModel {
	return noticeModel{notice: notice, copy: copyFn}
}

func (m noticeModel) Init() tea.Cmd {
	return nil
}

func (m noticeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.enter), key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
			m.closed = true
			return m, tea.Quit
		case key.Matches(msg, keys.copy):
			text := m.notice.Message
			copyFn := m.copy
			return m, func() tea.Msg {
				if err := copyFn(text); err != nil {
					return copyFailedMsg{err: err}
				}
				return copiedMsg{}
			}
		}
	case copiedMsg:
		m.status = "Copied to clipboard"
	case copyFailedMsg:
		m.status = fmt.Sprintf("Copy failed: %v", msg.err)
	}

	return m, nil
}

func (m noticeModel) View() string {
	title := "Notice"
	box := overlayBoxStyle
	if m.notice.Severity == models.SeverityFatal {
		title = "Error"
		box = fatalBoxStyle
	}

	body := m.notice.Message
	if m.status != "" {
		body += "\n\n" + statusStyle.Render(m.status)
	}

	return appStyle.Render(box.Render(renderPage(title, body, "enter / esc: close    c: copy")))
}
