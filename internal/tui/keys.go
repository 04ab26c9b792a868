package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	lock      key.Binding
	newItem   key.Binding
	edit      key.Binding
	delete    key.Binding
	copy      key.Binding
	copyUser  key.Binding
	reveal    key.Binding
	search    key.Binding
	generator key.Binding
	generate  key.Binding
	save      key.Binding
	yes       key.Binding
	no        key.Binding
	info      key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	lock:      key.NewBinding(key.WithKeys("L")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	copyUser:  key.NewBinding(key.WithKeys("u")),
	reveal:    key.NewBinding(key.WithKeys(" ")),
	search:    key.NewBinding(key.WithKeys("/")),
	generator: key.NewBinding(key.WithKeys("g")),
	generate:  key.NewBinding(key.WithKeys("ctrl+g")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
	info:      key.NewBinding(key.WithKeys("ctrl+v")),
}
