package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTestFile = `import java.util.List;
import org.junit.jupiter.api.Test;

@ExtendWith(MockitoExtension.class)
class DuplicateFinderTest {

	@Nested
	@DisplayName("Exact Duplicate Detection")
	class ExactDuplicateTests {

		@Test
		public void findsExactDuplicates() {
			assertEquals(2, finder.find(tracks).size());
		}
	}

	@Test
	@Timeout(5)
	public void completesWithinTimeout() {
		CompletableFuture<Void> future = finder.findAsync();
		assertNotNull(future);
	}

	private TrackMetadata createTestTrack(String title) {
		return null;
	}
}`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRun_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "NoSuchTest.java")

	out, err := execute(t, path)

	require.NoError(t, err, "missing input must not fail the command")
	assert.Contains(t, out, "Test file not found: "+path)
	assert.NotContains(t, out, "[TEST STRUCTURE]:")
}

func TestRun_DefaultPathMissing(t *testing.T) {
	// Run from an empty directory so the default relative path resolves to
	// nothing.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	out, err := execute(t)

	require.NoError(t, err)
	assert.Contains(t, out, "Test file not found: "+DefaultTestFilePath)
}

func TestRun_AnalyzesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "DuplicateFinderTest.java")
	require.NoError(t, os.WriteFile(path, []byte(sampleTestFile), 0o644))

	out, err := execute(t, path)

	require.NoError(t, err)
	assert.Contains(t, out, "DUPLICATEFINDER TEST ANALYSIS")
	assert.Contains(t, out, "Total test methods: 2")
	assert.Contains(t, out, "Nested test classes: 1")
	assert.Contains(t, out, "Mockito integration: Yes")
	assert.Contains(t, out, "   * ExactDuplicateTests: Exact Duplicate Detection")
	assert.Contains(t, out, "   * findsExactDuplicates")
	assert.Contains(t, out, "   * createTestTrack")
	assert.Contains(t, out, "DuplicateFinder class with 2 test methods")
}

func TestSubjectFor(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"src/test/java/ConcurrentDuplicateFinderTest.java", "ConcurrentDuplicateFinder"},
		{"ScannerTests.java", "Scanner"},
		{"Helper.java", "Helper"},
		{"Test.java", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, subjectFor(tt.path), "path %s", tt.path)
	}
}

func TestTitleFor(t *testing.T) {
	assert.Equal(t, "DUPLICATEFINDER TEST ANALYSIS", titleFor("a/b/DuplicateFinderTest.java"))
	assert.Equal(t, "", titleFor("Test.java"))
}
