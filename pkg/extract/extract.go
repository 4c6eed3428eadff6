// Package extract recognizes coarse structural facts in raw test source
// text. Recognition is pattern-based: the file is treated as text, not
// parsed, so results are approximate and tolerant of any input.
package extract

import (
	"strings"

	"github.com/testlens/testlens/pkg/domain"
)

// Analyze runs every recognizer over content and assembles the result.
// Recognizers are independent; empty or non-matching content yields a
// zero-valued Analysis, never an error.
func Analyze(content []byte) *domain.Analysis {
	return &domain.Analysis{
		TestMethods:             extractTestMethods(content),
		NestedGroups:            extractNestedGroups(content),
		HelperMethods:           extractHelperMethods(content),
		Imports:                 extractImports(content),
		AssertionCount:          len(assertionPattern.FindAll(content, -1)),
		TimeoutCount:            len(timeoutPattern.FindAll(content, -1)),
		ConcurrencyPatternCount: len(concurrencyPattern.FindAll(content, -1)),
		UsesMockito:             mockitoPattern.Match(content),
	}
}

func extractTestMethods(content []byte) []string {
	var methods []string
	for _, m := range testMethodPattern.FindAllSubmatch(content, -1) {
		methods = append(methods, string(m[1]))
	}
	return methods
}

func extractNestedGroups(content []byte) []domain.NestedGroup {
	var groups []domain.NestedGroup
	for _, m := range nestedGroupPattern.FindAllSubmatch(content, -1) {
		groups = append(groups, domain.NestedGroup{
			DisplayName: string(m[1]),
			ClassName:   string(m[2]),
		})
	}
	return groups
}

func extractHelperMethods(content []byte) []string {
	var helpers []string
	for _, m := range helperMethodPattern.FindAllSubmatch(content, -1) {
		helpers = append(helpers, string(m[1]))
	}
	return helpers
}

func extractImports(content []byte) []string {
	var imports []string
	for _, m := range importPattern.FindAllSubmatch(content, -1) {
		imports = append(imports, strings.TrimSpace(string(m[1])))
	}
	return imports
}
