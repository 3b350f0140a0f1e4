// Package branch derives deterministic feature branch names from plans.
package branch

import (
	"path/filepath"
	"regexp"
	"strings"
)

// maxNameLen caps the sanitized name segment, before the id prefix is
// added.
const maxNameLen = 60

var (
	planDirPattern = regexp.MustCompile(`^\d+--(.+)$`)
	unsafeChars    = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRuns     = regexp.MustCompile(`-+`)
)

// ExtractPlanName returns the descriptive part of a plan directory's
// base name. Directory names follow <digits>--<name>; if the base name
// does not match, it is returned unchanged.
func ExtractPlanName(planDir string) string {
	base := filepath.Base(planDir)
	if m := planDirPattern.FindStringSubmatch(base); m != nil {
		return m[1]
	}
	return base
}

// Sanitize normalizes raw text into a branch-name-safe token:
// lowercase, only [a-z0-9-], no leading/trailing hyphen, no hyphen
// runs, at most 60 characters. Total and idempotent; the worst case is
// an empty string, which is a valid (if unhelpful) name segment.
func Sanitize(raw string) string {
	s := strings.ToLower(raw)
	s = unsafeChars.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxNameLen {
		s = s[:maxNameLen]
		// Truncation can expose a trailing hyphen.
		s = strings.TrimRight(s, "-")
	}
	return s
}

// Name composes the full branch name for a plan:
// feature/<id>--<sanitized name>. prefix defaults to "feature/" when
// empty.
func Name(prefix, planID, planDir string) string {
	if prefix == "" {
		prefix = "feature/"
	}
	return prefix + planID + "--" + Sanitize(ExtractPlanName(planDir))
}
