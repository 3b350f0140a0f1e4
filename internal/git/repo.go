package git

import (
	"context"
	"strings"
)

// CurrentBranch returns the symbolic name of HEAD, or the empty string
// when it cannot be determined (detached HEAD, execution error).
func CurrentBranch(ctx context.Context, dir string) string {
	output, err := outputGit(ctx, dir, "branch", "--show-current")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(output))
}

// HasUncommittedChanges returns true if the working tree has staged,
// unstaged, or untracked changes. A failed status query counts as
// clean: the check fails open, the same way a later branch switch
// would surface the real problem.
func HasUncommittedChanges(ctx context.Context, dir string) bool {
	output, err := outputGit(ctx, dir, "status", "--porcelain")
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(output)) != ""
}

// BranchExists returns true if name matches a local branch exactly, or
// appears as a substring of any remote branch listing.
//
// The asymmetry is deliberate: local matching is exact, remote matching
// is permissive so that e.g. "feature/58--docs" is found inside
// "origin/feature/58--docs" regardless of remote name. Failed queries
// count as the branch being absent.
func BranchExists(ctx context.Context, dir, name string) bool {
	output, err := outputGit(ctx, dir, "branch", "--list", "--format=%(refname:short)")
	if err == nil {
		for _, line := range strings.Split(string(output), "\n") {
			if strings.TrimSpace(line) == name {
				return true
			}
		}
	}

	output, err = outputGit(ctx, dir, "branch", "-r")
	if err != nil {
		return false
	}
	return strings.Contains(string(output), name)
}

// CreateAndSwitch creates the branch and switches to it in one step.
// This is the only mutating git operation pb performs; git's own
// locking guards concurrent access to the repository.
func CreateAndSwitch(ctx context.Context, dir, name string) error {
	return runGit(ctx, dir, "switch", "-c", name)
}
