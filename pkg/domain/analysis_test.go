package domain

import "testing"

func TestAnalysisCounts(t *testing.T) {
	a := &Analysis{
		TestMethods: []string{"first", "second"},
		NestedGroups: []NestedGroup{
			{DisplayName: "Group", ClassName: "GroupTests"},
		},
	}

	if got := a.CountTestMethods(); got != 2 {
		t.Errorf("CountTestMethods() = %d, want 2", got)
	}
	if got := a.CountNestedGroups(); got != 1 {
		t.Errorf("CountNestedGroups() = %d, want 1", got)
	}
}

func TestAnalysisZeroValue(t *testing.T) {
	var a Analysis

	if a.CountTestMethods() != 0 || a.CountNestedGroups() != 0 {
		t.Errorf("zero Analysis has non-zero counts: %+v", a)
	}
}
