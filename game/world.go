// Package game implements the deterministic text-adventure environments that
// agents are evaluated against. A World is a declarative game definition; an
// Environment is one playthrough of a World with a Reset/Step interface.
package game

import (
	"fmt"
	"sort"
)

// Item is an object that can appear in a room or in the player's inventory.
type Item struct {
	// Name is the canonical noun used in commands ("lantern").
	Name string
	// Aliases are alternative nouns accepted by the parser.
	Aliases []string
	// Desc is shown by "examine".
	Desc string
	// Text is shown by "read". Empty means the item is not readable.
	Text string
	// Takeable marks items that can be picked up.
	Takeable bool
	// TakeScore is awarded the first time the item is taken.
	TakeScore int
	// Contains names an item revealed the first time this one is opened.
	Contains string
}

// Room is a single location in a World.
type Room struct {
	ID   string
	Name string
	Desc string
	// Exits maps a canonical direction ("north") to a destination room ID.
	Exits map[string]string
	// Items are the item names initially present in the room.
	Items []string
	// VisitScore is awarded the first time the room is entered.
	VisitScore int
}

// World is a complete game definition. Worlds are immutable; Environment
// copies the mutable parts (item placement) on Reset.
type World struct {
	Name  string
	Intro string
	Start string
	Rooms map[string]*Room
	Items map[string]*Item
	// WinRoom is the room the player must reach to win. If WinItem is set,
	// the player must also be carrying it.
	WinRoom  string
	WinItem  string
	WinScore int
	MaxScore int
	// Walkthrough is a reference action sequence that wins the game.
	Walkthrough []string
}

var registry = map[string]func() *World{}

func register(name string, build func() *World) {
	registry[name] = build
}

// List returns the names of all built-in games, sorted.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load returns a fresh copy of the named world.
func Load(name string) (*World, error) {
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown game %q (available: %v)", name, List())
	}
	return build(), nil
}

// Walkthrough returns the reference action sequence for the named game.
func Walkthrough(name string) ([]string, error) {
	w, err := Load(name)
	if err != nil {
		return nil, err
	}
	return w.Walkthrough, nil
}
