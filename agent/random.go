package agent

import (
	"context"
	"math/rand"

	"github.com/grue-labs/lantern/game"
)

// RandomAgent picks uniformly from a fixed action set. With the same seed it
// replays the same action sequence, which keeps evaluation runs reproducible.
type RandomAgent struct {
	rng     *rand.Rand
	actions []string
}

// NewRandomAgent returns a seeded random agent.
func NewRandomAgent(seed int64) *RandomAgent {
	actions := append(game.Directions(), "look", "inventory", "take torch", "take lamp", "take lantern")
	return &RandomAgent{
		rng:     rand.New(rand.NewSource(seed)),
		actions: actions,
	}
}

func (a *RandomAgent) Name() string { return "random" }

func (a *RandomAgent) NextAction(_ context.Context, _ game.State) (string, error) {
	return a.actions[a.rng.Intn(len(a.actions))], nil
}
