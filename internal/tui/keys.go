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
	forceQuit key.Binding
	newUser   key.Binding
	edit      key.Binding
	delete    key.Binding
	favorite  key.Binding
	filter    key.Binding
	reload    key.Binding
	copyEmail key.Binding
	buildInfo key.Binding
	autoFill  key.Binding
	clearForm key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	newUser:   key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	favorite:  key.NewBinding(key.WithKeys("f")),
	filter:    key.NewBinding(key.WithKeys("*")),
	reload:    key.NewBinding(key.WithKeys("r")),
	copyEmail: key.NewBinding(key.WithKeys("y")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	autoFill:  key.NewBinding(key.WithKeys("ctrl+a")),
	clearForm: key.NewBinding(key.WithKeys("ctrl+r")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
