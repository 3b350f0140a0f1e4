//go:build integration

package main

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/raphi011/pb/internal/config"
	"github.com/raphi011/pb/internal/log"
)

func TestMain(m *testing.M) {
	cfg = config.Default()
	os.Exit(m.Run())
}

// testContext returns a context with a logger capturing status output.
func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(&buf, false, false))
	return ctx, &buf
}

func runGitCmd(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

// setupTestRepo creates a git repo on branch main with one commit and
// returns its path with symlinks resolved.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	repoPath := filepath.Join(dir, "repo")
	if err := os.Mkdir(repoPath, 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	runGitCmd(t, repoPath, "init", "-b", "main")
	runGitCmd(t, repoPath, "config", "user.email", "test@test.com")
	runGitCmd(t, repoPath, "config", "user.name", "Test User")
	runGitCmd(t, repoPath, "config", "commit.gpgsign", "false")

	readme := filepath.Join(repoPath, "README.md")
	if err := os.WriteFile(readme, []byte("# test\n"), 0644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}
	runGitCmd(t, repoPath, "add", "README.md")
	runGitCmd(t, repoPath, "commit", "-m", "Initial commit")

	return repoPath
}

// setupPlans creates a plans root with the given plan directories.
func setupPlans(t *testing.T, dirs ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, d := range dirs {
		if err := os.Mkdir(filepath.Join(root, d), 0755); err != nil {
			t.Fatalf("failed to create plan dir %s: %v", d, err)
		}
	}
	return root
}

// currentBranch reads the repo's current branch via the git CLI.
func currentBranch(t *testing.T, repoPath string) string {
	t.Helper()
	cmd := exec.Command("git", "branch", "--show-current")
	cmd.Dir = repoPath
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("failed to read current branch: %v", err)
	}
	return string(bytes.TrimSpace(out))
}
