package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	space     key.Binding
	quit      key.Binding
	forceQuit key.Binding
	logout    key.Binding
	reload    key.Binding
	refresh   key.Binding
	profile   key.Binding
	edit      key.Binding
	copy      key.Binding
	retry     key.Binding
	info      key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	space:     key.NewBinding(key.WithKeys(" ", "space")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("x")),
	reload:    key.NewBinding(key.WithKeys("r")),
	refresh:   key.NewBinding(key.WithKeys("n")),
	profile:   key.NewBinding(key.WithKeys("p")),
	edit:      key.NewBinding(key.WithKeys("e")),
	copy:      key.NewBinding(key.WithKeys("c")),
	retry:     key.NewBinding(key.WithKeys("r")),
	info:      key.NewBinding(key.WithKeys("v")),
}
