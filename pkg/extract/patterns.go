package extract

import "regexp"

// Recognizer patterns, one per extracted fact. Each pattern is applied to
// the raw file content on its own; no pattern depends on another's result.
var (
	// Matches a method declaration preceded by @Test, tolerating further
	// annotations (with or without parenthesized arguments) between the
	// marker and the declaration. Captures the method identifier.
	testMethodPattern = regexp.MustCompile(`(?s)@Test\s+(?:@\w+\(.*?\)\s+)*(?:@\w+\s+)*\w+\s+void\s+(\w+)`)

	// Matches a class declaration preceded by @Nested and an immediately
	// following @DisplayName with a quoted literal. Captures the display
	// name and the class identifier.
	nestedGroupPattern = regexp.MustCompile(`@Nested\s+@DisplayName\("([^"]+)"\)\s+class\s+(\w+)`)

	// Matches private method declarations of any return type. Broader than
	// the test method pattern; overlap is resolved at reporting time.
	helperMethodPattern = regexp.MustCompile(`private\s+\w+.*?\s+(\w+)\([^)]*\)\s*\{`)

	// Matches import statements, capturing the dotted path.
	importPattern = regexp.MustCompile(`import\s+([^;]+);`)

	// Matches assertion call sites: assertEquals(, assertTrue(, etc.
	assertionPattern = regexp.MustCompile(`assert\w+\(`)

	timeoutPattern = regexp.MustCompile(`@Timeout`)

	// Concurrency vocabulary: futures, executors, latches, virtual threads.
	concurrencyPattern = regexp.MustCompile(`(?i)CompletableFuture|ExecutorService|CountDownLatch|virtual.*thread`)

	// Exact Mockito extension annotation form.
	mockitoPattern = regexp.MustCompile(`@ExtendWith\(MockitoExtension\.class\)`)
)
