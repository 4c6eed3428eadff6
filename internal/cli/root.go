// Package cli wires the read-extract-report pipeline behind the root command.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/testlens/testlens/pkg/extract"
	"github.com/testlens/testlens/pkg/report"
)

// DefaultTestFilePath is the test file analyzed when no path is given.
const DefaultTestFilePath = "src/test/java/com/musicorganizer/processor/ConcurrentDuplicateFinderTest.java"

// NewRootCommand creates and returns the root cobra command.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "testlens [path]",
		Short: "Structural analysis of a Java test file",
		Long: `Testlens reads one Java test source file and reports its structure:
test methods, nested test classes, helper methods, imports, assertion and
timeout counts, concurrency-pattern usage, and Mockito integration.
Recognition is pattern-based; the file is never compiled or executed.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runAnalyze,
	}

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := DefaultTestFilePath
	if len(args) > 0 {
		path = args[0]
	}

	content, err := os.ReadFile(path)
	if err != nil {
		// A missing or unreadable input ends the run with a message, not a
		// failure status.
		if os.IsNotExist(err) {
			fmt.Fprintf(cmd.OutOrStdout(), "Test file not found: %s\n", path)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Cannot read test file %s: %v\n", path, err)
		}
		return nil
	}

	analysis := extract.Analyze(content)

	reporter := report.New(
		report.WithTitle(titleFor(path)),
		report.WithSubject(subjectFor(path)),
	)
	fmt.Fprint(cmd.OutOrStdout(), reporter.Format(analysis))

	return nil
}

// subjectFor derives the class-under-test name from the analyzed file name:
// ConcurrentDuplicateFinderTest.java -> ConcurrentDuplicateFinder.
func subjectFor(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name = strings.TrimSuffix(name, "Tests")
	name = strings.TrimSuffix(name, "Test")
	if name == "" {
		return ""
	}
	return name
}

func titleFor(path string) string {
	subject := subjectFor(path)
	if subject == "" {
		return ""
	}
	return strings.ToUpper(subject) + " TEST ANALYSIS"
}
