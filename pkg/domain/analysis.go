// Package domain defines the core types for test file analysis results.
package domain

// NestedGroup represents a nested test class annotated with a display name.
type NestedGroup struct {
	// DisplayName is the human-readable name from the @DisplayName annotation.
	DisplayName string `json:"displayName"`
	// ClassName is the declared class identifier.
	ClassName string `json:"className"`
}

// Analysis represents the structural facts extracted from a single test
// source file. It is built once per run and never mutated afterwards.
// All slices preserve first-match order in the source text; duplicate
// matches are kept as-is since extraction is purely textual.
type Analysis struct {
	// TestMethods contains the identifiers of recognized test methods.
	TestMethods []string `json:"testMethods,omitempty"`
	// NestedGroups contains the recognized nested test classes.
	NestedGroups []NestedGroup `json:"nestedGroups,omitempty"`
	// HelperMethods contains the identifiers of private helper methods.
	// This list is intentionally broad; callers filter it for display.
	HelperMethods []string `json:"helperMethods,omitempty"`
	// Imports contains one dotted path per recognized import statement.
	Imports []string `json:"imports,omitempty"`
	// AssertionCount is the number of assertion-style call sites.
	AssertionCount int `json:"assertionCount"`
	// TimeoutCount is the number of @Timeout annotations.
	TimeoutCount int `json:"timeoutCount"`
	// ConcurrencyPatternCount is the number of concurrency-related token
	// occurrences (futures, executors, latches, virtual threads).
	ConcurrencyPatternCount int `json:"concurrencyPatternCount"`
	// UsesMockito reports whether the Mockito extension annotation is present.
	UsesMockito bool `json:"usesMockito"`
}

// CountTestMethods returns the number of recognized test methods.
func (a *Analysis) CountTestMethods() int {
	return len(a.TestMethods)
}

// CountNestedGroups returns the number of recognized nested test classes.
func (a *Analysis) CountNestedGroups() int {
	return len(a.NestedGroups)
}
