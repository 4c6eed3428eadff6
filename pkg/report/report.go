// Package report renders an extracted Analysis as a sectioned, fixed-order
// plain-text summary. Formatting is pure: the same Analysis and options
// always produce byte-identical output.
package report

import (
	"fmt"
	"strings"

	"github.com/testlens/testlens/pkg/domain"
)

const bannerWidth = 60

// Static reference content rendered in every report. These lists describe
// the coverage areas the suite is expected to address; they are not derived
// from the analyzed file.
var (
	testCategories = []string{
		"Constructor and Configuration",
		"Empty and Null Input Handling",
		"Exact Duplicate Detection",
		"Metadata Duplicate Detection",
		"Size-based Duplicate Detection",
		"Concurrent Processing",
		"Deduplication and Priority",
		"Statistics Generation",
		"Resource Management",
		"Edge Cases and Error Handling",
		"Performance Testing",
	}

	concurrencyFeatures = []string{
		"Virtual Thread Execution",
		"Async Operation Handling",
		"Multiple Concurrent Finders",
		"Exception Propagation",
		"Resource Cleanup",
		"Thread Safety",
	}
)

// Reporter formats Analysis records according to its options.
type Reporter struct {
	options *Options
}

// New creates a Reporter with the given options.
func New(opts ...Option) *Reporter {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	applyDefaults(options)

	return &Reporter{options: options}
}

// Format renders the full report. An all-zero Analysis is valid and renders
// every section with empty lists and zero counts.
func (r *Reporter) Format(a *domain.Analysis) string {
	var b strings.Builder
	banner := strings.Repeat("=", bannerWidth)

	fmt.Fprintln(&b, banner)
	fmt.Fprintln(&b, r.options.Title)
	fmt.Fprintln(&b, banner)

	fmt.Fprintf(&b, "\n[TEST STRUCTURE]:\n")
	fmt.Fprintf(&b, "   * Total test methods: %d\n", len(a.TestMethods))
	fmt.Fprintf(&b, "   * Nested test classes: %d\n", len(a.NestedGroups))
	fmt.Fprintf(&b, "   * Helper methods: %d\n", len(a.HelperMethods))
	fmt.Fprintf(&b, "   * Test imports: %d\n", len(a.Imports))

	fmt.Fprintf(&b, "\n[TEST COVERAGE]:\n")
	fmt.Fprintf(&b, "   * Assertion statements: %d\n", a.AssertionCount)
	fmt.Fprintf(&b, "   * Timeout constraints: %d\n", a.TimeoutCount)
	fmt.Fprintf(&b, "   * Concurrency patterns: %d\n", a.ConcurrencyPatternCount)
	fmt.Fprintf(&b, "   * Mockito integration: %s\n", yesNo(a.UsesMockito))

	fmt.Fprintf(&b, "\n[NESTED TEST CLASSES]:\n")
	for _, group := range a.NestedGroups {
		fmt.Fprintf(&b, "   * %s: %s\n", group.ClassName, group.DisplayName)
	}

	fmt.Fprintf(&b, "\n[KEY TEST METHODS] (sample):\n")
	shown := a.TestMethods
	if len(shown) > r.options.MethodSampleSize {
		shown = shown[:r.options.MethodSampleSize]
	}
	for _, method := range shown {
		fmt.Fprintf(&b, "   * %s\n", method)
	}
	if remaining := len(a.TestMethods) - r.options.MethodSampleSize; remaining > 0 {
		fmt.Fprintf(&b, "   ... and %d more\n", remaining)
	}

	fmt.Fprintf(&b, "\n[HELPER METHODS]:\n")
	helpers := filterHelpers(a.HelperMethods, r.options.HelperKeywords)
	if len(helpers) > r.options.HelperSampleSize {
		helpers = helpers[:r.options.HelperSampleSize]
	}
	for _, helper := range helpers {
		fmt.Fprintf(&b, "   * %s\n", helper)
	}

	fmt.Fprintf(&b, "\n[TEST CATEGORIES COVERED]:\n")
	for _, category := range testCategories {
		fmt.Fprintf(&b, "   + %s\n", category)
	}

	fmt.Fprintf(&b, "\n[CONCURRENCY FEATURES TESTED]:\n")
	for _, feature := range concurrencyFeatures {
		fmt.Fprintf(&b, "   + %s\n", feature)
	}

	fmt.Fprintf(&b, "\n[PERFORMANCE CHARACTERISTICS]:\n")
	fmt.Fprintf(&b, "   * Timeout-constrained tests: %d\n", a.TimeoutCount)
	fmt.Fprintf(&b, "   * Large dataset testing: YES\n")
	fmt.Fprintf(&b, "   * Memory efficiency testing: YES\n")
	fmt.Fprintf(&b, "   * Concurrent processing validation: YES\n")

	fmt.Fprintf(&b, "\n[SUMMARY]:\n")
	fmt.Fprintf(&b, "   The test suite provides comprehensive coverage of the\n")
	fmt.Fprintf(&b, "   %s class with %d test methods\n", r.options.Subject, len(a.TestMethods))
	fmt.Fprintf(&b, "   organized into %d logical test groupings.\n", len(a.NestedGroups))
	fmt.Fprintf(&b, "   It includes concurrency testing, performance validation,\n")
	fmt.Fprintf(&b, "   error handling, and edge case coverage.\n")

	fmt.Fprintf(&b, "\n%s\n", banner)

	return b.String()
}

// filterHelpers keeps helpers whose identifier contains one of the keywords
// as a case-insensitive substring, preserving the original order.
func filterHelpers(helpers, keywords []string) []string {
	var filtered []string
	for _, helper := range helpers {
		lower := strings.ToLower(helper)
		for _, keyword := range keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				filtered = append(filtered, helper)
				break
			}
		}
	}
	return filtered
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
