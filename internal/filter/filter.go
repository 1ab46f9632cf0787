package filter

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"rasty/internal/domain"
)

// Filter prunes a test tree down to the tests matching a name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// Apply returns a copy of suite that keeps only the tests matching pattern.
// A test matches when its slash-joined path ("Calculator/Add/Can add 2 and 1")
// matches pattern as a glob (** allowed), or when its own name matches the
// name rules of MatchName. Groups left without tests are dropped, except the
// root group which is kept empty. ok is false when nothing matched.
// The input tree is never modified.
func (f *Filter) Apply(suite domain.TestSuite, pattern string) (filtered domain.TestSuite, ok bool) {
	if pattern == "" {
		return suite, suite != nil
	}

	pruned := prune(suite, "", pattern)
	if pruned != nil {
		return pruned, true
	}
	if group, isGroup := suite.(*domain.TestGroup); isGroup {
		return domain.NewTestGroup(group.Name), false
	}
	return nil, false
}

func prune(suite domain.TestSuite, parent, pattern string) domain.TestSuite {
	switch node := suite.(type) {
	case *domain.Test:
		if matches(pattern, join(parent, node.Name), node.Name) {
			return node
		}
	case *domain.TestGroup:
		path := join(parent, node.Name)
		var children []domain.TestSuite
		for _, child := range node.Children {
			if kept := prune(child, path, pattern); kept != nil {
				children = append(children, kept)
			}
		}
		if len(children) > 0 {
			return domain.NewTestGroup(node.Name, children...)
		}
	}
	return nil
}

func matches(pattern, path, name string) bool {
	if matched, err := doublestar.Match(pattern, path); err == nil && matched {
		return true
	}
	return MatchName(pattern, name)
}

// MatchName matches a test name using wildcard matching.
// Supports patterns like "Can add*" or "*divide*"; a pattern without
// wildcards matches any name containing it.
func MatchName(pattern, name string) bool {
	if pattern == "" {
		return true
	}

	// Try to match using filepath.Match (supports * and ? wildcards)
	matched, err := filepath.Match(pattern, name)
	if err == nil && matched {
		return true
	}

	// Flexible substring match for patterns like "*divide*"
	if strings.Contains(pattern, "*") {
		hasNonEmptyPart := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			hasNonEmptyPart = true
			if !strings.Contains(name, part) {
				return false
			}
		}
		return hasNonEmptyPart
	}

	// If no wildcards, do a simple contains check
	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}
	return false
}

func join(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}
