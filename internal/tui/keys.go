package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	quit      key.Binding
	logout    key.Binding
	newForm   key.Binding
	save      key.Binding
	edit      key.Binding
	remove    key.Binding
	copyLink  key.Binding
	preview   key.Binding
	prospects key.Binding
	reload    key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter", " ")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("l")),
	newForm:   key.NewBinding(key.WithKeys("n")),
	save:      key.NewBinding(key.WithKeys("s")),
	edit:      key.NewBinding(key.WithKeys("e")),
	remove:    key.NewBinding(key.WithKeys("d", "x")),
	copyLink:  key.NewBinding(key.WithKeys("c")),
	preview:   key.NewBinding(key.WithKeys("v")),
	prospects: key.NewBinding(key.WithKeys("p")),
	reload:    key.NewBinding(key.WithKeys("r")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
