//go:build integration

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/raphi011/pb/internal/log"
	"github.com/raphi011/pb/internal/output"
)

// executeRoot runs the root command with args, capturing status output.
// Not parallel-safe: rootCmd and the flag globals are package state.
func executeRoot(t *testing.T, repo string, args ...string) (*bytes.Buffer, error) {
	t.Helper()

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working dir: %v", err)
	}
	if err := os.Chdir(repo); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	t.Cleanup(func() {
		os.Chdir(oldDir)
		rootCmd.SetArgs(nil)
		verbose = false
		quiet = false
	})

	var buf bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(&buf, false, false))
	ctx = output.WithPrinter(ctx, io.Discard)

	rootCmd.SetArgs(args)
	return &buf, rootCmd.ExecuteContext(ctx)
}

func TestRoot_QuietSuppressesStatus(t *testing.T) {
	repo := setupTestRepo(t)
	plans := setupPlans(t, "58--update-docs")

	out, err := executeRoot(t, repo, "--quiet", "branch", "58", "-d", plans)
	if err != nil {
		t.Fatalf("execute = %v, want nil", err)
	}

	if out.Len() != 0 {
		t.Errorf("status output with -q = %q, want none", out.String())
	}
	if got := currentBranch(t, repo); got != "feature/58--update-docs" {
		t.Errorf("current branch = %q, want feature/58--update-docs", got)
	}
}

func TestRoot_VerboseEchoesCommands(t *testing.T) {
	repo := setupTestRepo(t)
	plans := setupPlans(t, "58--update-docs")

	out, err := executeRoot(t, repo, "-v", "branch", "58", "-d", plans)
	if err != nil {
		t.Fatalf("execute = %v, want nil", err)
	}

	if !strings.Contains(out.String(), "$ git") {
		t.Errorf("status output with -v = %q, want git command echo", out.String())
	}
	if !strings.Contains(out.String(), "Created and switched") {
		t.Errorf("status output = %q, want created message", out.String())
	}
}
