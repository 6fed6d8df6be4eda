package mcp

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/grue-labs/lantern/game"
)

// DefaultHistoryLimit caps how many action/result pairs are remembered for
// the memory tool.
const DefaultHistoryLimit = 50

type exchange struct {
	action string
	result string
}

// GameState wraps an environment with the exploration data the tools expose:
// recent history, a map of explored locations, and named save slots.
// Safe for concurrent tool calls.
type GameState struct {
	mu sync.Mutex

	env          *game.Environment
	last         game.State
	history      []exchange
	historyLimit int
	// explored maps a location name to its known exits ("east -> Kitchen").
	explored map[string]map[string]bool
	current  string
	saves    map[string]game.Snapshot
}

// NewGameState loads the named game and starts tracking it.
func NewGameState(gameName string, historyLimit int) (*GameState, error) {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	s := &GameState{historyLimit: historyLimit}
	if err := s.load(gameName); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *GameState) load(gameName string) error {
	env, err := game.NewEnvironment(gameName)
	if err != nil {
		return err
	}
	s.env = env
	s.last = env.Reset()
	s.history = nil
	s.explored = make(map[string]map[string]bool)
	s.current = s.location()
	s.saves = make(map[string]game.Snapshot)
	return nil
}

// location is the first line of the current room description.
func (s *GameState) location() string {
	lines := strings.SplitN(strings.TrimSpace(s.env.Look()), "\n", 2)
	if len(lines) == 0 || lines[0] == "" {
		return "Unknown"
	}
	return lines[0]
}

// TakeAction executes one game action and returns the observation.
func (s *GameState) TakeAction(action string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = s.env.Step(action)
	result := s.last.Observation

	s.history = append(s.history, exchange{action: action, result: result})
	if len(s.history) > s.historyLimit {
		s.history = s.history[len(s.history)-s.historyLimit:]
	}

	// Record map edges on movement actions.
	newLoc := s.location()
	if dir, ok := canonicalDirection(action); ok && newLoc != s.current {
		if s.explored[s.current] == nil {
			s.explored[s.current] = make(map[string]bool)
		}
		s.explored[s.current][fmt.Sprintf("%s -> %s", dir, newLoc)] = true
	}
	s.current = newLoc

	return result
}

func canonicalDirection(action string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(action)) {
	case "north", "n":
		return "north", true
	case "south", "s":
		return "south", true
	case "east", "e":
		return "east", true
	case "west", "w":
		return "west", true
	case "up", "u":
		return "up", true
	case "down", "d":
		return "down", true
	case "enter":
		return "enter", true
	case "exit", "out", "leave":
		return "exit", true
	}
	return "", false
}

// Memory returns a summary of the current game state for the agent.
func (s *GameState) Memory() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	recent := s.history
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	recentStr := "  (none yet)"
	if len(recent) > 0 {
		var lines []string
		for _, ex := range recent {
			r := strings.ReplaceAll(ex.result, "\n", " ")
			if len(r) > 60 {
				r = r[:60] + "..."
			}
			lines = append(lines, fmt.Sprintf("  > %s -> %s", ex.action, r))
		}
		recentStr = strings.Join(lines, "\n")
	}

	return fmt.Sprintf(`Current State:
- Location: %s
- Score: %d points
- Moves: %d
- Game: %s

Recent Actions:
%s

Current Observation:
%s`, s.current, s.last.Score, s.last.Moves, s.env.GameName(), recentStr, s.last.Observation)
}

// Map returns the explored locations and their known exits.
func (s *GameState) Map() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.explored) == 0 {
		return "Map: No locations explored yet. Try moving around!"
	}

	locs := make([]string, 0, len(s.explored))
	for loc := range s.explored {
		locs = append(locs, loc)
	}
	sort.Strings(locs)

	lines := []string{"Explored Locations and Exits:"}
	for _, loc := range locs {
		lines = append(lines, "", "* "+loc)
		exits := make([]string, 0, len(s.explored[loc]))
		for e := range s.explored[loc] {
			exits = append(exits, e)
		}
		sort.Strings(exits)
		for _, e := range exits {
			lines = append(lines, "    -> "+e)
		}
	}
	lines = append(lines, "", "[Current] "+s.current)
	return strings.Join(lines, "\n")
}

// Inventory returns the player's inventory listing.
func (s *GameState) Inventory() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.env.Inventory()
}

// ValidActions lists the commands available in the current state.
func (s *GameState) ValidActions() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	actions := s.env.ValidActions()
	if len(actions) == 0 {
		return "No valid actions available."
	}
	lines := []string{"Valid Actions:"}
	for _, a := range actions {
		lines = append(lines, "  - "+a)
	}
	return strings.Join(lines, "\n")
}

// CheckVocabulary reports whether the game understands a word.
func (s *GameState) CheckVocabulary(word string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	word = strings.ToLower(strings.TrimSpace(word))
	if s.env.Knows(word) {
		return fmt.Sprintf("Yes, the game understands %q.", word)
	}
	return fmt.Sprintf("No, the game does NOT understand the word %q. Try a different synonym.", word)
}

// Save stores the current environment state under a label.
func (s *GameState) Save(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves[label] = s.env.Snapshot()
}

// RestoreSave restores a previously saved state.
func (s *GameState) RestoreSave(label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.saves[label]
	if !ok {
		return fmt.Errorf("no saved state named %q", label)
	}
	s.env.Restore(snap)
	s.current = s.location()
	return nil
}

// SaveLabels lists the named save slots, sorted.
func (s *GameState) SaveLabels() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	labels := make([]string, 0, len(s.saves))
	for l := range s.saves {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// Reset restarts the current game and clears exploration data. Save slots
// survive a reset.
func (s *GameState) Reset() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = s.env.Reset()
	s.history = nil
	s.explored = make(map[string]map[string]bool)
	s.current = s.location()
	return s.last.Observation
}

// SwitchGame loads a different game, discarding all state.
func (s *GameState) SwitchGame(gameName string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(gameName); err != nil {
		return "", err
	}
	return s.last.Observation, nil
}

// GameName returns the name of the loaded game.
func (s *GameState) GameName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.env.GameName()
}

// MaxScore returns the maximum attainable score for the loaded game.
func (s *GameState) MaxScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.env.MaxScore()
}

// Last returns the most recent game state.
func (s *GameState) Last() game.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
