package game

import (
	"fmt"
	"sort"
	"strings"
)

// State is what an agent observes after each step.
type State struct {
	Observation string
	Score       int
	Moves       int
	Done        bool
	Victory     bool
}

// Environment is a single playthrough of a World. It is not safe for
// concurrent use.
type Environment struct {
	world   *World
	here    string
	itemsAt map[string][]string
	carried []string
	opened  map[string]bool
	scored  map[string]bool
	visited map[string]bool
	score   int
	moves   int
	done    bool
	victory bool
}

// NewEnvironment loads the named built-in game.
func NewEnvironment(name string) (*Environment, error) {
	w, err := Load(name)
	if err != nil {
		return nil, err
	}
	e := &Environment{world: w}
	e.Reset()
	return e, nil
}

// GameName returns the name of the loaded game.
func (e *Environment) GameName() string {
	return e.world.Name
}

// MaxScore returns the maximum attainable score.
func (e *Environment) MaxScore() int {
	return e.world.MaxScore
}

// Reset restores the environment to its initial state and returns the
// opening observation.
func (e *Environment) Reset() State {
	e.here = e.world.Start
	e.itemsAt = make(map[string][]string, len(e.world.Rooms))
	for id, room := range e.world.Rooms {
		e.itemsAt[id] = append([]string(nil), room.Items...)
	}
	e.carried = nil
	e.opened = make(map[string]bool)
	e.scored = make(map[string]bool)
	e.visited = map[string]bool{e.here: true}
	e.score = 0
	e.moves = 0
	e.done = false
	e.victory = false

	obs := e.world.Intro + "\n\n" + e.describeRoom()
	return e.state(obs)
}

// Step executes one action and returns the resulting state. Stepping a
// finished environment returns the final state unchanged.
func (e *Environment) Step(action string) State {
	if e.done {
		return e.state("The game is over.")
	}
	e.moves++
	obs := e.apply(action)
	e.checkVictory()
	if e.victory {
		obs += fmt.Sprintf("\n\n*** You have won ***\nYour score is %d (out of %d), in %d moves.", e.score, e.world.MaxScore, e.moves)
	}
	return e.state(obs)
}

func (e *Environment) state(obs string) State {
	return State{
		Observation: obs,
		Score:       e.score,
		Moves:       e.moves,
		Done:        e.done,
		Victory:     e.victory,
	}
}

func (e *Environment) checkVictory() {
	if e.here != e.world.WinRoom {
		return
	}
	if e.world.WinItem != "" && !e.carrying(e.world.WinItem) {
		return
	}
	if !e.victory {
		e.victory = true
		e.done = true
		e.score += e.world.WinScore
	}
}

var directions = map[string]string{
	"north": "north", "n": "north",
	"south": "south", "s": "south",
	"east": "east", "e": "east",
	"west": "west", "w": "west",
	"up": "up", "u": "up",
	"down": "down", "d": "down",
	"enter": "enter",
	"out":   "exit", "exit": "exit", "leave": "exit",
}

// Directions lists the canonical movement commands, sorted. Used by agents
// that sample actions.
func Directions() []string {
	seen := map[string]bool{}
	var out []string
	for _, canon := range directions {
		if !seen[canon] {
			seen[canon] = true
			out = append(out, canon)
		}
	}
	sort.Strings(out)
	return out
}

// verbWords is every non-movement word the parser accepts in verb position.
var verbWords = []string{
	"go", "walk", "look", "l", "examine", "x", "inspect",
	"take", "get", "grab", "pick", "drop", "put",
	"inventory", "i", "inv", "read", "open", "score",
	"quit", "q", "wait", "z",
}

// ValidActions lists the commands applicable right now: available exits
// first, then item interactions, then the always-valid verbs. Stable across
// calls in the same state.
func (e *Environment) ValidActions() []string {
	room := e.room()
	exits := make([]string, 0, len(room.Exits))
	for dir := range room.Exits {
		exits = append(exits, dir)
	}
	sort.Strings(exits)

	var itemActions []string
	addItem := func(name string, inRoom bool) {
		item := e.world.Items[name]
		itemActions = append(itemActions, "examine "+item.Name)
		if inRoom && item.Takeable {
			itemActions = append(itemActions, "take "+item.Name)
		}
		if !inRoom {
			itemActions = append(itemActions, "drop "+item.Name)
		}
		if item.Contains != "" && !e.opened[item.Name] {
			itemActions = append(itemActions, "open "+item.Name)
		}
		if item.Text != "" {
			itemActions = append(itemActions, "read "+item.Name)
		}
	}
	for _, name := range e.itemsAt[e.here] {
		addItem(name, true)
	}
	for _, name := range e.carried {
		addItem(name, false)
	}
	sort.Strings(itemActions)

	out := append(exits, itemActions...)
	return append(out, "look", "inventory", "score", "wait", "quit")
}

// Vocabulary returns every word this game understands, sorted: movement
// words, verbs, and the item names and aliases of the loaded world.
func (e *Environment) Vocabulary() []string {
	seen := map[string]bool{}
	add := func(w string) {
		if !seen[w] {
			seen[w] = true
		}
	}
	for w := range directions {
		add(w)
	}
	for _, w := range verbWords {
		add(w)
	}
	for _, item := range e.world.Items {
		add(item.Name)
		for _, a := range item.Aliases {
			add(a)
		}
	}
	out := make([]string, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Knows reports whether the parser understands the word in this world.
func (e *Environment) Knows(word string) bool {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return false
	}
	if _, ok := directions[word]; ok {
		return true
	}
	for _, w := range verbWords {
		if w == word {
			return true
		}
	}
	for _, item := range e.world.Items {
		if item.Name == word {
			return true
		}
		for _, a := range item.Aliases {
			if a == word {
				return true
			}
		}
	}
	return false
}

func (e *Environment) apply(action string) string {
	verb, noun := parse(action)

	if dir, ok := directions[verb]; ok && noun == "" {
		return e.move(dir)
	}

	switch verb {
	case "go", "walk":
		if dir, ok := directions[noun]; ok {
			return e.move(dir)
		}
		return "You can't go that way."
	case "look", "l":
		return e.describeRoom()
	case "examine", "x", "inspect":
		return e.examine(noun)
	case "take", "get", "grab", "pick":
		return e.take(noun)
	case "drop", "put":
		return e.drop(noun)
	case "inventory", "i", "inv":
		return e.Inventory()
	case "read":
		return e.read(noun)
	case "open":
		return e.open(noun)
	case "score":
		return fmt.Sprintf("Your score is %d (out of %d), in %d moves.", e.score, e.world.MaxScore, e.moves)
	case "quit", "q":
		e.done = true
		return "Thanks for playing."
	case "wait", "z":
		return "Time passes."
	case "":
		return "I beg your pardon?"
	default:
		return fmt.Sprintf("I don't know the word \"%s\".", verb)
	}
}

// parse splits an action into verb and noun, lowercasing and stripping
// articles ("take the lamp" -> "take", "lamp").
func parse(action string) (verb, noun string) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(action)))
	var kept []string
	for _, f := range fields {
		switch f {
		case "the", "a", "an", "at", "to":
			continue
		}
		kept = append(kept, f)
	}
	if len(kept) == 0 {
		return "", ""
	}
	// "pick up lamp" reads better than "pick lamp" but means the same thing.
	if kept[0] == "pick" && len(kept) > 1 && kept[1] == "up" {
		kept = append(kept[:1], kept[2:]...)
	}
	if len(kept) == 1 {
		return kept[0], ""
	}
	return kept[0], strings.Join(kept[1:], " ")
}

func (e *Environment) room() *Room {
	return e.world.Rooms[e.here]
}

func (e *Environment) describeRoom() string {
	room := e.room()
	var b strings.Builder
	b.WriteString(room.Name)
	b.WriteString("\n")
	b.WriteString(room.Desc)
	for _, name := range e.itemsAt[e.here] {
		item := e.world.Items[name]
		b.WriteString(fmt.Sprintf("\nThere is a %s here.", item.Name))
	}
	return b.String()
}

func (e *Environment) move(dir string) string {
	room := e.room()
	dest, ok := room.Exits[dir]
	if !ok {
		return "You can't go that way."
	}
	e.here = dest
	if !e.visited[dest] {
		e.visited[dest] = true
		if vs := e.world.Rooms[dest].VisitScore; vs > 0 {
			e.score += vs
		}
	}
	return e.describeRoom()
}

func (e *Environment) findItem(noun string) (*Item, bool) {
	for _, item := range e.world.Items {
		if item.Name == noun {
			return item, true
		}
		for _, a := range item.Aliases {
			if a == noun {
				return item, true
			}
		}
	}
	return nil, false
}

func (e *Environment) carrying(name string) bool {
	for _, c := range e.carried {
		if c == name {
			return true
		}
	}
	return false
}

func (e *Environment) inRoom(name string) bool {
	for _, n := range e.itemsAt[e.here] {
		if n == name {
			return true
		}
	}
	return false
}

// visible reports whether the named item is in reach (held or in the room).
func (e *Environment) visible(name string) bool {
	return e.carrying(name) || e.inRoom(name)
}

func (e *Environment) examine(noun string) string {
	if noun == "" {
		return "Examine what?"
	}
	item, ok := e.findItem(noun)
	if !ok || !e.visible(item.Name) {
		return fmt.Sprintf("You see no %s here.", noun)
	}
	if item.Desc == "" {
		return fmt.Sprintf("There is nothing special about the %s.", item.Name)
	}
	return item.Desc
}

func (e *Environment) take(noun string) string {
	if noun == "" {
		return "Take what?"
	}
	item, ok := e.findItem(noun)
	if !ok || !e.inRoom(item.Name) {
		if ok && e.carrying(item.Name) {
			return "You're already carrying that."
		}
		return fmt.Sprintf("You see no %s here.", noun)
	}
	if !item.Takeable {
		return fmt.Sprintf("The %s is fixed in place.", item.Name)
	}
	e.removeFromRoom(item.Name)
	e.carried = append(e.carried, item.Name)
	if item.TakeScore > 0 && !e.scored[item.Name] {
		e.scored[item.Name] = true
		e.score += item.TakeScore
	}
	return "Taken."
}

func (e *Environment) drop(noun string) string {
	if noun == "" {
		return "Drop what?"
	}
	item, ok := e.findItem(noun)
	if !ok || !e.carrying(item.Name) {
		return "You're not carrying that."
	}
	for i, c := range e.carried {
		if c == item.Name {
			e.carried = append(e.carried[:i], e.carried[i+1:]...)
			break
		}
	}
	e.itemsAt[e.here] = append(e.itemsAt[e.here], item.Name)
	return "Dropped."
}

func (e *Environment) removeFromRoom(name string) {
	items := e.itemsAt[e.here]
	for i, n := range items {
		if n == name {
			e.itemsAt[e.here] = append(items[:i], items[i+1:]...)
			return
		}
	}
}

func (e *Environment) read(noun string) string {
	if noun == "" {
		return "Read what?"
	}
	item, ok := e.findItem(noun)
	if !ok || !e.visible(item.Name) {
		return fmt.Sprintf("You see no %s here.", noun)
	}
	if item.Text == "" {
		return fmt.Sprintf("There is nothing written on the %s.", item.Name)
	}
	return item.Text
}

func (e *Environment) open(noun string) string {
	if noun == "" {
		return "Open what?"
	}
	item, ok := e.findItem(noun)
	if !ok || !e.visible(item.Name) {
		return fmt.Sprintf("You see no %s here.", noun)
	}
	if item.Contains == "" {
		return fmt.Sprintf("You can't open the %s.", item.Name)
	}
	if e.opened[item.Name] {
		return "It's already open."
	}
	e.opened[item.Name] = true
	inner := e.world.Items[item.Contains]
	e.itemsAt[e.here] = append(e.itemsAt[e.here], inner.Name)
	return fmt.Sprintf("Opening the %s reveals a %s.", item.Name, inner.Name)
}

// Inventory returns the "i" listing.
func (e *Environment) Inventory() string {
	if len(e.carried) == 0 {
		return "You are empty-handed."
	}
	var b strings.Builder
	b.WriteString("You are carrying:")
	for _, name := range e.carried {
		b.WriteString("\n  a " + name)
	}
	return b.String()
}

// Snapshot captures the full mutable state of an environment.
type Snapshot struct {
	Here    string              `json:"here"`
	ItemsAt map[string][]string `json:"items_at"`
	Carried []string            `json:"carried"`
	Opened  map[string]bool     `json:"opened"`
	Scored  map[string]bool     `json:"scored"`
	Visited map[string]bool     `json:"visited"`
	Score   int                 `json:"score"`
	Moves   int                 `json:"moves"`
	Done    bool                `json:"done"`
	Victory bool                `json:"victory"`
}

// Snapshot returns a deep copy of the current state.
func (e *Environment) Snapshot() Snapshot {
	itemsAt := make(map[string][]string, len(e.itemsAt))
	for k, v := range e.itemsAt {
		itemsAt[k] = append([]string(nil), v...)
	}
	return Snapshot{
		Here:    e.here,
		ItemsAt: itemsAt,
		Carried: append([]string(nil), e.carried...),
		Opened:  copyBoolMap(e.opened),
		Scored:  copyBoolMap(e.scored),
		Visited: copyBoolMap(e.visited),
		Score:   e.score,
		Moves:   e.moves,
		Done:    e.done,
		Victory: e.victory,
	}
}

// Restore replaces the current state with a snapshot.
func (e *Environment) Restore(s Snapshot) {
	itemsAt := make(map[string][]string, len(s.ItemsAt))
	for k, v := range s.ItemsAt {
		itemsAt[k] = append([]string(nil), v...)
	}
	e.here = s.Here
	e.itemsAt = itemsAt
	e.carried = append([]string(nil), s.Carried...)
	e.opened = copyBoolMap(s.Opened)
	e.scored = copyBoolMap(s.Scored)
	e.visited = copyBoolMap(s.Visited)
	e.score = s.Score
	e.moves = s.Moves
	e.done = s.Done
	e.victory = s.Victory
}

func copyBoolMap(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Look returns the current room description without consuming a move.
func (e *Environment) Look() string {
	return e.describeRoom()
}
