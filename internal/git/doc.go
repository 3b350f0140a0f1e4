// Package git provides the repository queries pb needs, via shell
// commands.
//
// All operations use [os/exec] to call the git CLI directly rather than
// a Go git library. This approach is simpler, more reliable, and
// ensures compatibility with user configurations (SSH keys, credential
// helpers, aliases).
//
// Everything here is a read-only query except [CreateAndSwitch], the
// single mutating operation pb performs. Queries tolerate failure:
// a failed query reports the neutral answer (not a repo, no branch,
// clean tree, branch absent) rather than an error.
package git
