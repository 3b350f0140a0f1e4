package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// CheckGit verifies that git is available in PATH
func CheckGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return ErrGitNotFound
	}
	return nil
}

// IsInsideRepo returns true if dir (or the working directory if empty)
// is inside a git work tree. The command's printed answer is what
// counts, not its exit status: inside a .git directory rev-parse exits
// 0 but prints false. Any failure, including git missing, counts as
// false.
func IsInsideRepo(ctx context.Context, dir string) bool {
	output, err := outputGit(ctx, dir, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(output)) == "true"
}
