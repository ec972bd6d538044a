package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter key.Binding
	esc   key.Binding
	quit  key.Binding
	copy  key.Binding
}

var keys = keyMap{
	enter: key.NewBinding(key.WithKeys("enter", " ")),
	esc:   key.NewBinding(key.WithKeys("esc")),
	quit:  key.NewBinding(key.WithKeys("q", "ctrl+c")),
	copy:  key.NewBinding(key.WithKeys("c")),
}
