// Package cmd provides helpers for executing external commands with
// proper error handling.
//
// pb shells out to the git CLI rather than using a Go git library.
// This is simpler, more reliable, and ensures compatibility with user
// configurations (SSH keys, credential helpers, aliases). Failures
// carry the command's stderr in the returned error so users see git's
// own message.
package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/raphi011/pb/internal/log"
)

// RunContext executes a command in dir (or the working directory if
// empty), returning stderr in the error message if it fails. The
// command is echoed through the context logger in verbose mode.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	_, err := run(ctx, dir, name, args, false)
	return err
}

// OutputContext executes a command and returns its stdout, with stderr
// in the error message if it fails.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	return run(ctx, dir, name, args, true)
}

func run(ctx context.Context, dir, name string, args []string, wantOutput bool) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l := log.FromContext(ctx)
	done := l.Command(dir, name, args...)
	start := time.Now()

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir

	var stdout, stderr bytes.Buffer
	if wantOutput {
		c.Stdout = &stdout
	}
	c.Stderr = &stderr

	err := c.Run()
	done(time.Since(start))

	if err != nil {
		// Context cancellation wins over the process error.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s", msg)
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}
