// Package runner assembles and executes agent runs: the external runner
// command line, the output sinks for each run mode, and the in-process run
// loop.
package runner

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Invocation describes one external runner invocation. Flag order is fixed
// and values are substituted literally, with no shell escaping.
type Invocation struct {
	// Runner is the external runner command, e.g. "python run_agent.py".
	Runner string
	// MaxMoves is the move cap passed as -n.
	MaxMoves int
	// Submission is the agent identifier passed as --agent.
	Submission string
	// Game is the game identifier passed as -g.
	Game string

	Verbose         bool
	DebugVerbose    bool
	PrintFullOutput bool
}

// Args returns the flag list in canonical order:
// [-v] -n <max> --agent <submission> -g <game> [--debug-verbose] [--print-full-output]
func (inv Invocation) Args() []string {
	var args []string
	if inv.Verbose {
		args = append(args, "-v")
	}
	args = append(args,
		"-n", strconv.Itoa(inv.MaxMoves),
		"--agent", inv.Submission,
		"-g", inv.Game,
	)
	if inv.DebugVerbose {
		args = append(args, "--debug-verbose")
	}
	if inv.PrintFullOutput {
		args = append(args, "--print-full-output")
	}
	return args
}

// CommandLine renders the full command line as a single string.
func (inv Invocation) CommandLine() string {
	return inv.Runner + " " + strings.Join(inv.Args(), " ")
}

// Command splits the invocation into an executable name and its arguments.
func (inv Invocation) Command() (name string, args []string) {
	fields := strings.Fields(inv.Runner)
	if len(fields) == 0 {
		return "", inv.Args()
	}
	return fields[0], append(fields[1:], inv.Args()...)
}

// ResultPath derives the output file for a submission run:
// <resultsDir>/<game>_<submission>.txt
func ResultPath(resultsDir, game, submission string) string {
	return filepath.Join(resultsDir, game+"_"+submission+".txt")
}

// LocalResultPath derives the output file for a local run:
// <resultsDir>/<game>_local.txt
func LocalResultPath(resultsDir, game string) string {
	return filepath.Join(resultsDir, game+"_local.txt")
}
