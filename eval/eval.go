// Package eval runs deterministic seeded evaluations of an agent across the
// built-in games and aggregates the results.
package eval

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/grue-labs/lantern/agent"
	"github.com/grue-labs/lantern/game"
	"github.com/grue-labs/lantern/log"
)

// Spec describes one evaluation: which agent plays which games, how many
// episodes each, and under what seed and move cap. The same spec always
// produces the same scores and move counts.
type Spec struct {
	Agent    string   `json:"agent"`
	Games    []string `json:"games"`
	Episodes int      `json:"episodes"`
	Seed     int64    `json:"seed"`
	MaxMoves int      `json:"max_moves"`
}

// EpisodeResult is the outcome of one seeded episode.
type EpisodeResult struct {
	Game     string        `json:"game"`
	Agent    string        `json:"agent"`
	Episode  int           `json:"episode"`
	Seed     int64         `json:"seed"`
	Score    int           `json:"score"`
	MaxScore int           `json:"max_score"`
	Moves    int           `json:"moves"`
	Victory  bool          `json:"victory"`
	Duration time.Duration `json:"duration_ns"`
}

// GameSummary aggregates all episodes of one game.
type GameSummary struct {
	Game      string  `json:"game"`
	Episodes  int     `json:"episodes"`
	MeanScore float64 `json:"mean_score"`
	BestScore int     `json:"best_score"`
	MaxScore  int     `json:"max_score"`
	WinRate   float64 `json:"win_rate"`
	MeanMoves float64 `json:"mean_moves"`
}

// Report is the full outcome of an evaluation.
type Report struct {
	Spec      Spec            `json:"spec"`
	Episodes  []EpisodeResult `json:"episodes"`
	Summaries []GameSummary   `json:"summaries"`
}

// buildAgent constructs a fresh policy for one episode. Fresh construction
// keeps episodes independent: a walkthrough restarts, a random agent reseeds.
func buildAgent(name, gameName string, seed int64) (agent.Agent, error) {
	switch name {
	case "walkthrough", "":
		return agent.NewWalkthroughAgent(gameName)
	case "random":
		return agent.NewRandomAgent(seed), nil
	default:
		return nil, fmt.Errorf("unknown agent %q for evaluation", name)
	}
}

// Run executes the evaluation sequentially. Episode seeds are derived from
// the base seed and episode index, so reruns replay identical episodes.
func Run(ctx context.Context, spec Spec) (*Report, error) {
	if spec.Episodes <= 0 {
		spec.Episodes = 1
	}
	if len(spec.Games) == 0 {
		spec.Games = game.List()
	}
	if spec.MaxMoves <= 0 {
		spec.MaxMoves = 20
	}

	report := &Report{Spec: spec}
	for _, gameName := range spec.Games {
		for ep := 0; ep < spec.Episodes; ep++ {
			select {
			case <-ctx.Done():
				return report, ctx.Err()
			default:
			}

			seed := agent.DeriveSeed(gameName, spec.Seed, ep)
			ag, err := buildAgent(spec.Agent, gameName, seed)
			if err != nil {
				return report, err
			}
			env, err := game.NewEnvironment(gameName)
			if err != nil {
				return report, err
			}

			result, err := agent.Play(ctx, env, ag, spec.MaxMoves)
			if err != nil {
				return report, fmt.Errorf("episode %d of %s failed: %w", ep, gameName, err)
			}

			report.Episodes = append(report.Episodes, EpisodeResult{
				Game:     gameName,
				Agent:    result.Agent,
				Episode:  ep,
				Seed:     seed,
				Score:    result.Score,
				MaxScore: result.MaxScore,
				Moves:    result.Moves,
				Victory:  result.Victory,
				Duration: result.Duration,
			})
			log.DebugLog.Printf("eval %s/%s episode %d: score=%d moves=%d", spec.Agent, gameName, ep, result.Score, result.Moves)
		}
	}

	report.Summaries = summarize(report.Episodes, spec.Games)
	return report, nil
}

func summarize(episodes []EpisodeResult, games []string) []GameSummary {
	var summaries []GameSummary
	for _, gameName := range games {
		var s GameSummary
		s.Game = gameName
		var scoreSum, moveSum, wins int
		for _, ep := range episodes {
			if ep.Game != gameName {
				continue
			}
			s.Episodes++
			scoreSum += ep.Score
			moveSum += ep.Moves
			if ep.Score > s.BestScore {
				s.BestScore = ep.Score
			}
			if ep.Victory {
				wins++
			}
			s.MaxScore = ep.MaxScore
		}
		if s.Episodes > 0 {
			s.MeanScore = float64(scoreSum) / float64(s.Episodes)
			s.MeanMoves = float64(moveSum) / float64(s.Episodes)
			s.WinRate = float64(wins) / float64(s.Episodes)
		}
		summaries = append(summaries, s)
	}
	return summaries
}

// WriteJSON writes the report to <resultsDir>/eval_<agent>.json. Durations
// are included but excluded from any determinism comparison.
func (r *Report) WriteJSON(resultsDir string) (string, error) {
	if err := os.MkdirAll(resultsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create results directory: %w", err)
	}

	name := r.Spec.Agent
	if name == "" {
		name = "walkthrough"
	}
	path := filepath.Join(resultsDir, "eval_"+name+".json")

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}
