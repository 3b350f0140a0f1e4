package workflow

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/raphi011/pb/internal/plan"
)

// fakeRepo records which queries ran, so tests can pin the check
// ordering, not just the outcome.
type fakeRepo struct {
	inside    bool
	current   string
	dirty     bool
	branches  map[string]bool
	createErr error

	calls []string
}

func (r *fakeRepo) IsInsideRepo(context.Context) bool {
	r.calls = append(r.calls, "inside")
	return r.inside
}

func (r *fakeRepo) CurrentBranch(context.Context) string {
	r.calls = append(r.calls, "current")
	return r.current
}

func (r *fakeRepo) HasUncommittedChanges(context.Context) bool {
	r.calls = append(r.calls, "dirty")
	return r.dirty
}

func (r *fakeRepo) BranchExists(_ context.Context, name string) bool {
	r.calls = append(r.calls, "exists")
	return r.branches[name]
}

func (r *fakeRepo) CreateAndSwitch(_ context.Context, name string) error {
	r.calls = append(r.calls, "create")
	if r.createErr != nil {
		return r.createErr
	}
	if r.branches == nil {
		r.branches = map[string]bool{}
	}
	r.branches[name] = true
	r.current = name
	return nil
}

func cleanMainRepo() *fakeRepo {
	return &fakeRepo{inside: true, current: "main", branches: map[string]bool{}}
}

func resolveFixed(p *plan.Plan) Resolver {
	return func(identifier, root string) (*plan.Plan, error) {
		return p, nil
	}
}

var docsPlan = &plan.Plan{ID: "58", Name: "update-docs", Dir: "/plans/58--update-docs"}

func TestRun_CreatesBranch(t *testing.T) {
	t.Parallel()

	repo := cleanMainRepo()
	res, err := Run(context.Background(), Options{
		Identifier: "58",
		Repo:       repo,
		Resolve:    resolveFixed(docsPlan),
	})
	if err != nil {
		t.Fatalf("Run = %v, want nil", err)
	}
	if res.Outcome != Created {
		t.Errorf("outcome = %v, want Created", res.Outcome)
	}
	if res.Branch != "feature/58--update-docs" {
		t.Errorf("branch = %q, want feature/58--update-docs", res.Branch)
	}
	if !repo.branches["feature/58--update-docs"] {
		t.Error("branch was not created in repo")
	}
	want := []string{"inside", "current", "dirty", "exists", "create"}
	if !slices.Equal(repo.calls, want) {
		t.Errorf("call order = %v, want %v", repo.calls, want)
	}
}

func TestRun_SkipsOffTrunk(t *testing.T) {
	t.Parallel()

	repo := cleanMainRepo()
	repo.current = "develop"
	// Dirty tree must not matter off trunk: the check is short-circuited.
	repo.dirty = true

	res, err := Run(context.Background(), Options{
		Identifier: "58",
		Repo:       repo,
		Resolve:    resolveFixed(docsPlan),
	})
	if err != nil {
		t.Fatalf("Run = %v, want nil", err)
	}
	if res.Outcome != SkippedNotTrunk {
		t.Errorf("outcome = %v, want SkippedNotTrunk", res.Outcome)
	}
	if res.CurrentBranch != "develop" {
		t.Errorf("current branch = %q, want develop", res.CurrentBranch)
	}
	if slices.Contains(repo.calls, "dirty") || slices.Contains(repo.calls, "create") {
		t.Errorf("off-trunk run queried %v, want short-circuit before dirty/create", repo.calls)
	}
}

func TestRun_MasterIsTrunk(t *testing.T) {
	t.Parallel()

	repo := cleanMainRepo()
	repo.current = "master"

	res, err := Run(context.Background(), Options{
		Identifier: "58",
		Repo:       repo,
		Resolve:    resolveFixed(docsPlan),
	})
	if err != nil {
		t.Fatalf("Run = %v, want nil", err)
	}
	if res.Outcome != Created {
		t.Errorf("outcome = %v, want Created", res.Outcome)
	}
}

func TestRun_CustomTrunks(t *testing.T) {
	t.Parallel()

	repo := cleanMainRepo()
	repo.current = "trunk"

	res, err := Run(context.Background(), Options{
		Identifier:    "58",
		TrunkBranches: []string{"trunk"},
		Repo:          repo,
		Resolve:       resolveFixed(docsPlan),
	})
	if err != nil {
		t.Fatalf("Run = %v, want nil", err)
	}
	if res.Outcome != Created {
		t.Errorf("outcome = %v, want Created", res.Outcome)
	}
}

func TestRun_DirtyTreeIsFatal(t *testing.T) {
	t.Parallel()

	repo := cleanMainRepo()
	repo.dirty = true

	_, err := Run(context.Background(), Options{
		Identifier: "58",
		Repo:       repo,
		Resolve:    resolveFixed(docsPlan),
	})
	var perr *PreconditionError
	if !errors.As(err, &perr) {
		t.Fatalf("Run = %v, want PreconditionError", err)
	}
	if slices.Contains(repo.calls, "exists") || slices.Contains(repo.calls, "create") {
		t.Errorf("dirty run queried %v, want stop before existence check", repo.calls)
	}
}

func TestRun_ReusesExistingBranch(t *testing.T) {
	t.Parallel()

	repo := cleanMainRepo()
	repo.branches["feature/58--update-docs"] = true

	res, err := Run(context.Background(), Options{
		Identifier: "58",
		Repo:       repo,
		Resolve:    resolveFixed(docsPlan),
	})
	if err != nil {
		t.Fatalf("Run = %v, want nil", err)
	}
	if res.Outcome != Reused {
		t.Errorf("outcome = %v, want Reused", res.Outcome)
	}
	if slices.Contains(repo.calls, "create") {
		t.Error("create was invoked for an existing branch")
	}
}

func TestRun_MissingIdentifier(t *testing.T) {
	t.Parallel()

	repo := cleanMainRepo()
	_, err := Run(context.Background(), Options{
		Identifier: "",
		Repo:       repo,
		Resolve:    resolveFixed(docsPlan),
	})
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("Run = %v, want UsageError", err)
	}
	if len(repo.calls) != 0 {
		t.Errorf("repo queried %v before argument validation", repo.calls)
	}
}

func TestRun_NotARepository(t *testing.T) {
	t.Parallel()

	repo := cleanMainRepo()
	repo.inside = false

	_, err := Run(context.Background(), Options{
		Identifier: "58",
		Repo:       repo,
		Resolve:    resolveFixed(docsPlan),
	})
	var eerr *EnvironmentError
	if !errors.As(err, &eerr) {
		t.Fatalf("Run = %v, want EnvironmentError", err)
	}
}

func TestRun_PlanNotFound(t *testing.T) {
	t.Parallel()

	repo := cleanMainRepo()
	_, err := Run(context.Background(), Options{
		Identifier: "99",
		Repo:       repo,
		Resolve: func(identifier, root string) (*plan.Plan, error) {
			return nil, fmt.Errorf("%w: no plan with id 99", plan.ErrNotFound)
		},
	})
	var rerr *ResolutionError
	if !errors.As(err, &rerr) {
		t.Fatalf("Run = %v, want ResolutionError", err)
	}
	if !errors.Is(err, plan.ErrNotFound) {
		t.Errorf("Run = %v, want to wrap plan.ErrNotFound", err)
	}
	// Resolution failure halts before any branch work.
	want := []string{"inside"}
	if !slices.Equal(repo.calls, want) {
		t.Errorf("call order = %v, want %v", repo.calls, want)
	}
}

func TestRun_DetachedHead(t *testing.T) {
	t.Parallel()

	repo := cleanMainRepo()
	repo.current = ""

	_, err := Run(context.Background(), Options{
		Identifier: "58",
		Repo:       repo,
		Resolve:    resolveFixed(docsPlan),
	})
	var eerr *EnvironmentError
	if !errors.As(err, &eerr) {
		t.Fatalf("Run = %v, want EnvironmentError", err)
	}
}

func TestRun_CreateFailure(t *testing.T) {
	t.Parallel()

	repo := cleanMainRepo()
	repo.createErr = errors.New("ref lock held")

	_, err := Run(context.Background(), Options{
		Identifier: "58",
		Repo:       repo,
		Resolve:    resolveFixed(docsPlan),
	})
	var oerr *OperationError
	if !errors.As(err, &oerr) {
		t.Fatalf("Run = %v, want OperationError", err)
	}
	if oerr.Branch != "feature/58--update-docs" {
		t.Errorf("failed branch = %q, want feature/58--update-docs", oerr.Branch)
	}
}

func TestRun_RepeatedInvocationIsIdempotent(t *testing.T) {
	t.Parallel()

	repo := cleanMainRepo()
	opts := Options{
		Identifier: "58",
		Repo:       repo,
		Resolve:    resolveFixed(docsPlan),
	}

	first, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Run = %v, want nil", err)
	}
	if first.Outcome != Created {
		t.Fatalf("first outcome = %v, want Created", first.Outcome)
	}

	// Back on trunk, unchanged repo state otherwise.
	repo.current = "main"
	second, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Run = %v, want nil", err)
	}
	if second.Outcome != Reused {
		t.Errorf("second outcome = %v, want Reused", second.Outcome)
	}
	if second.Branch != first.Branch {
		t.Errorf("branch changed between runs: %q then %q", first.Branch, second.Branch)
	}
}

func TestRun_CustomPrefix(t *testing.T) {
	t.Parallel()

	repo := cleanMainRepo()
	res, err := Run(context.Background(), Options{
		Identifier:   "58",
		BranchPrefix: "task/",
		Repo:         repo,
		Resolve:      resolveFixed(docsPlan),
	})
	if err != nil {
		t.Fatalf("Run = %v, want nil", err)
	}
	if res.Branch != "task/58--update-docs" {
		t.Errorf("branch = %q, want task/58--update-docs", res.Branch)
	}
}
