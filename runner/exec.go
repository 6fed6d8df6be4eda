package runner

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"syscall"
	"time"

	"github.com/creack/pty"

	"github.com/grue-labs/lantern/log"
)

// Executor abstracts external process execution so runs can be tested without
// spawning real submissions.
type Executor interface {
	// Run starts the command, streams its combined output to w, and returns
	// the process exit code. The exit code is passed through unmodified.
	Run(ctx context.Context, name string, args []string, env []string, w io.Writer) (int, error)
}

// ptyExecutor runs the command under a pseudo-terminal. Submissions behave
// like they do in a student's terminal, and stderr arrives interleaved with
// stdout the way run_err expects.
type ptyExecutor struct{}

// copyWarnEvery rate-limits pty copy warnings; a flapping submission can
// otherwise flood the log with one line per retry.
var copyWarnEvery = log.NewEvery(30 * time.Second)

// NewExecutor returns the default pty-backed executor.
func NewExecutor() Executor {
	return ptyExecutor{}
}

func (ptyExecutor) Run(ctx context.Context, name string, args []string, env []string, w io.Writer) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if len(env) > 0 {
		cmd.Env = env
	}

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return -1, err
	}
	defer func() { _ = ptmx.Close() }()

	// Reading the pty after the child exits fails with EIO on Linux; that is
	// the normal end of output.
	if _, err := io.Copy(w, ptmx); err != nil && !isPtyEOF(err) {
		if copyWarnEvery.ShouldLog() {
			log.WarningLog.Printf("pty copy ended: %v", err)
		}
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}

func isPtyEOF(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, syscall.EIO)
}
