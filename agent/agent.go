// Package agent defines the agents that play text adventures and the loop
// that drives them.
package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/grue-labs/lantern/game"
	"github.com/grue-labs/lantern/log"
)

// Agent decides the next action given the current game state.
type Agent interface {
	Name() string
	NextAction(ctx context.Context, state game.State) (string, error)
}

// Exchange is one action/observation pair in a transcript.
type Exchange struct {
	Action      string `json:"action"`
	Observation string `json:"observation"`
}

// Result is the outcome of one complete run.
type Result struct {
	Game       string        `json:"game"`
	Agent      string        `json:"agent"`
	Seed       int64         `json:"seed"`
	Score      int           `json:"score"`
	MaxScore   int           `json:"max_score"`
	Moves      int           `json:"moves"`
	Victory    bool          `json:"victory"`
	Duration   time.Duration `json:"duration_ns"`
	Opening    string        `json:"opening,omitempty"`
	Transcript []Exchange    `json:"transcript,omitempty"`
}

// Summary renders the one-line result footer appended to run output.
func (r Result) Summary() string {
	status := "lost"
	if r.Victory {
		status = "won"
	}
	return fmt.Sprintf("RESULT game=%s agent=%s score=%d/%d moves=%d status=%s",
		r.Game, r.Agent, r.Score, r.MaxScore, r.Moves, status)
}

// Play resets the environment and drives the agent until the game finishes or
// maxMoves is reached. The move cap is enforced here, not by the environment.
func Play(ctx context.Context, env *game.Environment, ag Agent, maxMoves int) (Result, error) {
	start := time.Now()
	state := env.Reset()

	result := Result{
		Game:     env.GameName(),
		Agent:    ag.Name(),
		MaxScore: env.MaxScore(),
		Opening:  state.Observation,
	}

	for !state.Done && state.Moves < maxMoves {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		action, err := ag.NextAction(ctx, state)
		if err != nil {
			return result, fmt.Errorf("agent %s failed on move %d: %w", ag.Name(), state.Moves+1, err)
		}

		state = env.Step(action)
		result.Transcript = append(result.Transcript, Exchange{Action: action, Observation: state.Observation})
		log.DebugLog.Printf("%s move %d: %q -> score=%d", ag.Name(), state.Moves, action, state.Score)
	}

	result.Score = state.Score
	result.Moves = state.Moves
	result.Victory = state.Victory
	result.Duration = time.Since(start)
	return result, nil
}
