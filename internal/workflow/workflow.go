// Package workflow sequences the feature branch creation process.
//
// The workflow is a fixed chain of checks, each a potential terminal
// exit. The ordering is load-bearing: the trunk check comes before the
// dirty check so off-trunk invocations short-circuit without requiring
// a clean tree, and the dirty check comes before the existence check so
// no branch switch is ever attempted on a dirty tree.
package workflow

import (
	"context"
	"slices"

	"github.com/raphi011/pb/internal/branch"
	"github.com/raphi011/pb/internal/git"
	"github.com/raphi011/pb/internal/log"
	"github.com/raphi011/pb/internal/plan"
)

// Outcome classifies a successful workflow run.
type Outcome int

const (
	// Created means the branch was newly created and checked out.
	Created Outcome = iota
	// Reused means the branch already existed; repeated invocations
	// are idempotent, not an error.
	Reused
	// SkippedNotTrunk means no branch was cut because the repository
	// was not on a trunk branch.
	SkippedNotTrunk
)

// String returns a short human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case Reused:
		return "reused"
	case SkippedNotTrunk:
		return "skipped"
	default:
		return "unknown"
	}
}

// Result describes a successful run.
type Result struct {
	Outcome       Outcome
	Branch        string // derived branch name; empty for SkippedNotTrunk
	CurrentBranch string // branch the repository was on when the run started
	Plan          *plan.Plan
}

// Repo is the repository surface the workflow consumes. All methods
// are read-only queries except CreateAndSwitch.
type Repo interface {
	IsInsideRepo(ctx context.Context) bool
	CurrentBranch(ctx context.Context) string
	HasUncommittedChanges(ctx context.Context) bool
	BranchExists(ctx context.Context, name string) bool
	CreateAndSwitch(ctx context.Context, name string) error
}

// Resolver maps a plan identifier to a plan, or reports that no plan
// matches. Resolution failure is terminal; the workflow never retries.
type Resolver func(identifier, root string) (*plan.Plan, error)

// Options configures a single workflow run.
type Options struct {
	Identifier    string
	PlansDir      string
	BranchPrefix  string
	TrunkBranches []string

	Repo    Repo
	Resolve Resolver
}

// defaultTrunks are the conventional primary branch names feature
// branches are cut from.
var defaultTrunks = []string{"main", "master"}

// Run executes the workflow checks in order and performs the branch
// transition. It returns a Result for the three success outcomes and a
// typed error (UsageError, EnvironmentError, ResolutionError,
// PreconditionError, OperationError) for every fatal one.
func Run(ctx context.Context, opts Options) (*Result, error) {
	l := log.FromContext(ctx)

	if opts.Identifier == "" {
		return nil, &UsageError{Msg: "missing plan identifier: pass a plan id or path"}
	}

	if !opts.Repo.IsInsideRepo(ctx) {
		return nil, &EnvironmentError{Msg: "not inside a git repository"}
	}

	p, err := opts.Resolve(opts.Identifier, opts.PlansDir)
	if err != nil {
		return nil, &ResolutionError{Identifier: opts.Identifier, Err: err}
	}
	l.Debug("plan resolved", "id", p.ID, "dir", p.Dir)

	current := opts.Repo.CurrentBranch(ctx)
	if current == "" {
		return nil, &EnvironmentError{Msg: "cannot determine current branch (detached HEAD?)"}
	}

	trunks := opts.TrunkBranches
	if len(trunks) == 0 {
		trunks = defaultTrunks
	}
	if !slices.Contains(trunks, current) {
		// Feature branches are only cut from a trunk branch. Being
		// elsewhere is a legitimate repeated-use situation, not a
		// failure.
		return &Result{Outcome: SkippedNotTrunk, CurrentBranch: current, Plan: p}, nil
	}

	if opts.Repo.HasUncommittedChanges(ctx) {
		return nil, &PreconditionError{Msg: "uncommitted changes present: commit or stash them before branching"}
	}

	name := branch.Name(opts.BranchPrefix, p.ID, p.Dir)
	l.Debug("derived branch name", "branch", name)

	if opts.Repo.BranchExists(ctx, name) {
		return &Result{Outcome: Reused, Branch: name, CurrentBranch: current, Plan: p}, nil
	}

	if err := opts.Repo.CreateAndSwitch(ctx, name); err != nil {
		return nil, &OperationError{Branch: name, Err: err}
	}

	return &Result{Outcome: Created, Branch: name, CurrentBranch: current, Plan: p}, nil
}

// GitRepo adapts the git package to the Repo interface for a fixed
// repository directory (empty means the working directory).
type GitRepo struct {
	Dir string
}

func (r GitRepo) IsInsideRepo(ctx context.Context) bool {
	return git.IsInsideRepo(ctx, r.Dir)
}

func (r GitRepo) CurrentBranch(ctx context.Context) string {
	return git.CurrentBranch(ctx, r.Dir)
}

func (r GitRepo) HasUncommittedChanges(ctx context.Context) bool {
	return git.HasUncommittedChanges(ctx, r.Dir)
}

func (r GitRepo) BranchExists(ctx context.Context, name string) bool {
	return git.BranchExists(ctx, r.Dir, name)
}

func (r GitRepo) CreateAndSwitch(ctx context.Context, name string) error {
	return git.CreateAndSwitch(ctx, r.Dir, name)
}
