package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	moveUp    key.Binding
	moveDown  key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	space     key.Binding
	quit      key.Binding
	forceQuit key.Binding
	logout    key.Binding
	newAlbum  key.Binding
	defAlbum  key.Binding
	reload    key.Binding
	usage     key.Binding
	upload    key.Binding
	slideshow key.Binding
	play      key.Binding
	delete    key.Binding
	copy      key.Binding
	clearData key.Binding
	version   key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	moveUp:    key.NewBinding(key.WithKeys("K", "shift+up")),
	moveDown:  key.NewBinding(key.WithKeys("J", "shift+down")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	space:     key.NewBinding(key.WithKeys(" ")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("L")),
	newAlbum:  key.NewBinding(key.WithKeys("n")),
	defAlbum:  key.NewBinding(key.WithKeys("D")),
	reload:    key.NewBinding(key.WithKeys("r")),
	usage:     key.NewBinding(key.WithKeys("u")),
	upload:    key.NewBinding(key.WithKeys("a")),
	slideshow: key.NewBinding(key.WithKeys("s")),
	play:      key.NewBinding(key.WithKeys("p")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	clearData: key.NewBinding(key.WithKeys("x")),
	version:   key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
