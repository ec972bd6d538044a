package tui

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}
