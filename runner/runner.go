package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grue-labs/lantern/agent"
	"github.com/grue-labs/lantern/game"
	"github.com/grue-labs/lantern/log"
	lanternmcp "github.com/grue-labs/lantern/mcp"
)

// Mode selects where run output goes.
type Mode int

const (
	// ModeFile redirects output to the derived results file.
	ModeFile Mode = iota
	// ModeHead prints merged output truncated to the first HeadLines lines.
	ModeHead
	// ModeConsole prints everything to the console.
	ModeConsole
)

// Options configures one run.
type Options struct {
	Game       string
	Submission string
	MaxMoves   int
	Seed       int64
	Mode       Mode
	ResultsDir string
	// Local marks a direct in-process agent run; its results file is
	// <game>_local.txt instead of <game>_<submission>.txt.
	Local bool
	// Env is extra environment (KEY=value) for external runs.
	Env []string
	// HistoryLimit caps the MCP server's action history for mcp- agents.
	// Zero means the server default.
	HistoryLimit int
}

// Runner executes agent runs and routes their output.
type Runner struct {
	exec Executor
}

// New returns a Runner using the pty-backed executor.
func New() *Runner {
	return &Runner{exec: NewExecutor()}
}

// NewWithExecutor returns a Runner with a custom executor, for tests.
func NewWithExecutor(exec Executor) *Runner {
	return &Runner{exec: exec}
}

func (r *Runner) openSink(opts Options) (Sink, error) {
	switch opts.Mode {
	case ModeHead:
		return NewHeadSink(os.Stdout, HeadLines), nil
	case ModeConsole:
		return NewConsoleSink(), nil
	default:
		path := ResultPath(opts.ResultsDir, opts.Game, opts.Submission)
		if opts.Local {
			path = LocalResultPath(opts.ResultsDir, opts.Game)
		}
		return NewFileSink(path)
	}
}

// buildAgent maps a submission name to a built-in agent. The "mcp-" prefix
// routes the underlying policy through the MCP tool surface.
func buildAgent(ctx context.Context, opts Options) (ag agent.Agent, toolAg *agent.ToolAgent, err error) {
	name := opts.Submission
	viaMCP := false
	if strings.HasPrefix(name, "mcp-") {
		viaMCP = true
		name = strings.TrimPrefix(name, "mcp-")
	}

	switch name {
	case "walkthrough", "":
		ag, err = agent.NewWalkthroughAgent(opts.Game)
	case "random":
		ag = agent.NewRandomAgent(agent.DeriveSeed(opts.Game, opts.Seed, 0))
	default:
		return nil, nil, fmt.Errorf("unknown built-in agent %q (try walkthrough, random, mcp-walkthrough, mcp-random)", opts.Submission)
	}
	if err != nil {
		return nil, nil, err
	}

	if viaMCP {
		srv, err := lanternmcp.NewGameMCPServer(opts.Game, opts.HistoryLimit)
		if err != nil {
			return nil, nil, err
		}
		toolAg, err = agent.NewToolAgent(ctx, srv, ag)
		if err != nil {
			return nil, nil, err
		}
	}
	return ag, toolAg, nil
}

// RunBuiltin plays a built-in agent and routes the transcript to the mode's
// sink. It returns the run result and the sink destination.
func (r *Runner) RunBuiltin(ctx context.Context, opts Options) (agent.Result, string, error) {
	ag, toolAg, err := buildAgent(ctx, opts)
	if err != nil {
		return agent.Result{}, "", err
	}

	var result agent.Result
	if toolAg != nil {
		defer toolAg.Close()
		result, err = toolAg.Run(ctx, opts.MaxMoves)
	} else {
		var env *game.Environment
		env, err = game.NewEnvironment(opts.Game)
		if err != nil {
			return agent.Result{}, "", err
		}
		result, err = agent.Play(ctx, env, ag, opts.MaxMoves)
	}
	if err != nil {
		return result, "", err
	}
	result.Seed = opts.Seed

	sink, err := r.openSink(opts)
	if err != nil {
		return result, "", err
	}
	if err := WriteTranscript(sink, result); err != nil {
		sink.Close()
		return result, "", fmt.Errorf("failed to write transcript: %w", err)
	}
	if err := sink.Close(); err != nil {
		return result, "", err
	}

	log.InfoLog.Printf("run finished: %s -> %s", result.Summary(), sink.Destination())
	return result, sink.Destination(), nil
}

// RunExternal executes the external runner invocation, capturing combined
// output into the mode's sink. The process exit code is returned unmodified.
// If the output's tail contains a result summary line it is parsed, but a
// missing summary is not an error.
func (r *Runner) RunExternal(ctx context.Context, inv Invocation, opts Options) (agent.Result, int, string, error) {
	sink, err := r.openSink(opts)
	if err != nil {
		return agent.Result{}, -1, "", err
	}

	// Tee output so the summary line can be recovered after the run.
	var tail tailBuffer
	out := io.MultiWriter(sink, &tail)

	name, args := inv.Command()
	log.InfoLog.Printf("external run: %s", inv.CommandLine())

	env := opts.Env
	if len(env) > 0 {
		env = append(os.Environ(), env...)
	}
	code, err := r.exec.Run(ctx, name, args, env, out)
	if cerr := sink.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		return agent.Result{}, code, sink.Destination(), fmt.Errorf("external runner failed: %w", err)
	}

	result, ok := agent.ParseSummary(tail.String())
	if !ok {
		log.DebugLog.Printf("no result summary in external output")
	}
	return result, code, sink.Destination(), nil
}

// WriteTranscript renders a run transcript: the opening observation, each
// action/observation exchange, and the result summary line.
func WriteTranscript(w io.Writer, r agent.Result) error {
	if r.Opening != "" {
		if _, err := fmt.Fprintln(w, r.Opening); err != nil {
			return err
		}
	}
	for _, ex := range r.Transcript {
		if _, err := fmt.Fprintf(w, "\n> %s\n%s\n", ex.Action, ex.Observation); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n%s\n", r.Summary())
	return err
}

// tailBuffer keeps the last few KB of output, enough to find the trailing
// summary line without buffering a whole transcript.
type tailBuffer struct {
	buf bytes.Buffer
}

const tailLimit = 4096

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.buf.Write(p)
	if t.buf.Len() > tailLimit {
		b := t.buf.Bytes()
		t.buf = *bytes.NewBuffer(append([]byte(nil), b[len(b)-tailLimit:]...))
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	return t.buf.String()
}
