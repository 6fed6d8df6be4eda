package agent

import (
	"context"

	"github.com/grue-labs/lantern/game"
)

// WalkthroughAgent replays a scripted action sequence. It is the reference
// solution for the built-in games.
type WalkthroughAgent struct {
	steps []string
	next  int
}

// NewWalkthroughAgent returns an agent that replays the named game's
// walkthrough.
func NewWalkthroughAgent(gameName string) (*WalkthroughAgent, error) {
	steps, err := game.Walkthrough(gameName)
	if err != nil {
		return nil, err
	}
	return &WalkthroughAgent{steps: steps}, nil
}

// NewScriptedAgent returns an agent that replays an arbitrary action list.
func NewScriptedAgent(steps []string) *WalkthroughAgent {
	return &WalkthroughAgent{steps: steps}
}

func (a *WalkthroughAgent) Name() string { return "walkthrough" }

// NextAction returns the next scripted step, or "quit" once the script is
// exhausted.
func (a *WalkthroughAgent) NextAction(_ context.Context, _ game.State) (string, error) {
	if a.next >= len(a.steps) {
		return "quit", nil
	}
	action := a.steps[a.next]
	a.next++
	return action, nil
}
