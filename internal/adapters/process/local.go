// Package process runs build commands, either for real or as a dry run.
package process

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"

	"go.trai.ch/importa/internal/core/domain"
	"go.trai.ch/importa/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// chunkSize is the read size used when draining a child's output pipes.
const chunkSize = 4096

var _ ports.Executor = (*Local)(nil)

// Local runs commands as child processes of the current process.
type Local struct{}

// NewLocal creates a new Local executor.
func NewLocal() *Local {
	return &Local{}
}

// Execute spawns the command and waits for it to exit.
//
// Stdout and stderr are drained concurrently, so a child filling one pipe never blocks on the other.
// The child is not cancelled when ctx is done; it always runs to its natural exit.
func (e *Local) Execute(_ context.Context, cmd domain.Command) (domain.ExecutionResult, error) {
	c := exec.Command(cmd.Executable, cmd.Arguments...) //nolint:gosec // commands come from the toolchain
	c.Dir = cmd.WorkingDirectory

	stdout, err := c.StdoutPipe()
	if err != nil {
		return domain.ExecutionResult{}, startError(cmd, err)
	}
	stderr, err := c.StderrPipe()
	if err != nil {
		return domain.ExecutionResult{}, startError(cmd, err)
	}

	if err := c.Start(); err != nil {
		return domain.ExecutionResult{}, startError(cmd, err)
	}

	var outBuf, errBuf bytes.Buffer
	var g errgroup.Group
	g.Go(func() error { return drain(&outBuf, stdout) })
	g.Go(func() error { return drain(&errBuf, stderr) })

	// Both readers must reach EOF before Wait closes the pipes.
	readErr := g.Wait()
	waitErr := c.Wait()

	result := domain.ExecutionResult{
		Stdout: outBuf.Bytes(),
		Stderr: errBuf.Bytes(),
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return result, zerr.With(zerr.Wrap(waitErr, "failed to wait for process"), "executable", cmd.Executable)
		}
		// ExitCode reports -1 for a child terminated by a signal.
		result.ExitCode = exitErr.ExitCode()
	}

	if readErr != nil {
		return result, zerr.With(zerr.Wrap(readErr, "failed to read process output"), "executable", cmd.Executable)
	}
	return result, nil
}

func drain(dst *bytes.Buffer, src io.Reader) error {
	buf := make([]byte, chunkSize)
	for {
		n, err := src.Read(buf)
		dst.Write(buf[:n])
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func startError(cmd domain.Command, cause error) error {
	err := zerr.Wrap(domain.ErrProcessStart, "failed to start process")
	err = zerr.With(err, "executable", cmd.Executable)
	return zerr.With(err, "cause", cause.Error())
}
