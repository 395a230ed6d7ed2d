package scopes

import (
	"slices"
	"sort"
	"strings"
)

const (
	// ScopeWildcard matches every scope.
	ScopeWildcard = "*"

	// ScopeDelimiter separates scope parts (e.g. "vehicles.read").
	ScopeDelimiter = "."
)

// ScopeMatches checks whether a scope is matched by a pattern.
//
// Rules:
//   - direct match: "vehicles.read" matches "vehicles.read"
//   - global wildcard: "*" matches anything
//   - namespace wildcard: "vehicles.*" matches "vehicles.read"
func ScopeMatches(scope, pattern string) bool {
	if scope == pattern || pattern == ScopeWildcard {
		return true
	}

	if strings.HasSuffix(pattern, ScopeWildcard) {
		prefix := strings.TrimSuffix(pattern, ScopeWildcard)
		prefix = strings.TrimSuffix(prefix, ScopeDelimiter)
		return strings.HasPrefix(scope, prefix+ScopeDelimiter)
	}

	return false
}

// HasScope checks whether the granted scopes cover a single required scope.
func HasScope(granted []string, scope string) bool {
	for _, g := range granted {
		if ScopeMatches(scope, g) {
			return true
		}
	}
	return false
}

// HasAnyScopes checks whether at least one required scope is covered.
// An empty required slice is trivially satisfied.
func HasAnyScopes(granted, required []string) bool {
	if len(required) == 0 {
		return true
	}
	for _, r := range required {
		if HasScope(granted, r) {
			return true
		}
	}
	return false
}

// HasAllScopes checks whether every required scope is covered.
func HasAllScopes(granted, required []string) bool {
	for _, r := range required {
		if !HasScope(granted, r) {
			return false
		}
	}
	return true
}

// Normalize deduplicates and sorts scopes, collapsing everything to the
// global wildcard when one is present.
func Normalize(scopes []string) []string {
	if len(scopes) == 0 {
		return nil
	}

	if slices.Contains(scopes, ScopeWildcard) {
		return []string{ScopeWildcard}
	}

	out := slices.Clone(scopes)
	sort.Strings(out)
	return slices.Compact(out)
}
