package workflow

// Every workflow failure is terminal: nothing is retried or recovered
// locally. The distinct types exist so callers and tests can tell the
// failure classes apart with errors.As.

// UsageError indicates the invocation itself was wrong (no plan
// identifier given).
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// EnvironmentError indicates the repository is not in a usable state
// for the workflow (not a repository, current branch undeterminable).
type EnvironmentError struct {
	Msg string
}

func (e *EnvironmentError) Error() string { return e.Msg }

// ResolutionError indicates the plan identifier did not resolve.
type ResolutionError struct {
	Identifier string
	Err        error
}

func (e *ResolutionError) Error() string {
	return "resolve plan " + e.Identifier + ": " + e.Err.Error()
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// PreconditionError indicates the working tree must be stabilized
// before branching (uncommitted changes present).
type PreconditionError struct {
	Msg string
}

func (e *PreconditionError) Error() string { return e.Msg }

// OperationError indicates the branch creation itself failed.
type OperationError struct {
	Branch string
	Err    error
}

func (e *OperationError) Error() string {
	return "create branch " + e.Branch + ": " + e.Err.Error()
}

func (e *OperationError) Unwrap() error { return e.Err }
