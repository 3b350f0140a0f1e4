package plan

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Resolve maps a user-supplied identifier to a plan under root.
//
// Three forms are accepted, tried in order:
//
//   - a path to an existing plan directory
//   - a numeric plan id ("58", also "058")
//   - a free-text name, fuzzy-matched against plan names; the match
//     must be unambiguous
//
// Unresolvable identifiers return an error wrapping [ErrNotFound].
func Resolve(identifier, root string) (*Plan, error) {
	if info, err := os.Stat(identifier); err == nil && info.IsDir() {
		return FromDir(identifier)
	}

	plans, err := List(root)
	if err != nil {
		return nil, err
	}

	if id, err := strconv.Atoi(identifier); err == nil {
		for i := range plans {
			if n, _ := strconv.Atoi(plans[i].ID); n == id {
				return &plans[i], nil
			}
		}
		return nil, fmt.Errorf("%w: no plan with id %d in %s", ErrNotFound, id, root)
	}

	return resolveByName(identifier, root, plans)
}

// resolveByName fuzzy-matches identifier against plan names. Exactly
// one match is required; anything else is an error naming the
// candidates so the user can disambiguate.
func resolveByName(identifier, root string, plans []Plan) (*Plan, error) {
	names := make([]string, len(plans))
	for i, p := range plans {
		names[i] = p.Name
	}

	matches := fuzzy.Find(identifier, names)
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: nothing matches %q in %s", ErrNotFound, identifier, root)
	case 1:
		return &plans[matches[0].Index], nil
	default:
		candidates := make([]string, len(matches))
		for i, m := range matches {
			p := plans[m.Index]
			candidates[i] = p.ID + "--" + p.Name
		}
		return nil, fmt.Errorf("%w: %q is ambiguous, matches: %s",
			ErrNotFound, identifier, strings.Join(candidates, ", "))
	}
}
