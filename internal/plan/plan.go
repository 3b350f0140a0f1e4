// Package plan locates and resolves plans.
//
// A plan is a unit of work stored as a directory named
// <numeric-id>--<descriptive-name> under a common search root. The
// package knows nothing about a plan's contents; it only maps user
// input to plan directories.
package plan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

// ErrNotFound indicates the identifier did not resolve to a plan.
// Resolution failure is not transient; callers should not retry.
var ErrNotFound = errors.New("plan not found")

var dirPattern = regexp.MustCompile(`^(\d+)--(.+)$`)

// Plan is a resolved plan record. Immutable once returned.
type Plan struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Dir  string `json:"dir"`
}

// FromDir builds a Plan from a plan directory path. Returns ErrNotFound
// if the directory does not exist or its base name is not a valid plan
// name.
func FromDir(dir string) (*Plan, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrNotFound, dir)
	}
	m := dirPattern.FindStringSubmatch(filepath.Base(dir))
	if m == nil {
		return nil, fmt.Errorf("%w: %s is not named <id>--<name>", ErrNotFound, dir)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	return &Plan{ID: m[1], Name: m[2], Dir: abs}, nil
}

// List returns all plans under root, sorted by numeric id. A missing
// root yields an empty list, not an error.
func List(root string) ([]Plan, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read plans dir: %w", err)
	}

	var plans []Plan
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		m := dirPattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		plans = append(plans, Plan{
			ID:   m[1],
			Name: m[2],
			Dir:  filepath.Join(root, e.Name()),
		})
	}

	sort.Slice(plans, func(i, j int) bool {
		a, _ := strconv.Atoi(plans[i].ID)
		b, _ := strconv.Atoi(plans[j].ID)
		if a != b {
			return a < b
		}
		return plans[i].Name < plans[j].Name
	})
	return plans, nil
}
