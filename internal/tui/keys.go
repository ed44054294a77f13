package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	enter       key.Binding
	esc         key.Binding
	tab         key.Binding
	backtab     key.Binding
	quit        key.Binding
	forceQuit   key.Binding
	refresh     key.Binding
	autoRefresh key.Binding
	toggle      key.Binding
	newNote     key.Binding
	copy        key.Binding
	info        key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	tab:         key.NewBinding(key.WithKeys("tab")),
	backtab:     key.NewBinding(key.WithKeys("shift+tab")),
	quit:        key.NewBinding(key.WithKeys("q")),
	forceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
	refresh:     key.NewBinding(key.WithKeys("r")),
	autoRefresh: key.NewBinding(key.WithKeys("a")),
	toggle:      key.NewBinding(key.WithKeys(" ")),
	newNote:     key.NewBinding(key.WithKeys("n")),
	copy:        key.NewBinding(key.WithKeys("c")),
	info:        key.NewBinding(key.WithKeys("v")),
}
