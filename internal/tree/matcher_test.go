package tree_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/temirov/lstree/internal/tree"
)

// TestCompilePatternsDropsInvalidWithWarning verifies that a pattern
// failing to compile is discarded with a diagnostic while the remaining
// patterns stay effective.
func TestCompilePatternsDropsInvalidWithWarning(testingHandle *testing.T) {
	var warningBuffer bytes.Buffer
	compiledPatterns := tree.CompilePatterns([]string{"node_modules", "[unclosed", `\.log$`}, &warningBuffer)
	if len(compiledPatterns) != 2 {
		testingHandle.Fatalf("expected 2 compiled patterns, got %d", len(compiledPatterns))
	}
	warningText := warningBuffer.String()
	if !strings.Contains(warningText, "[unclosed") {
		testingHandle.Fatalf("warning does not mention the invalid pattern: %q", warningText)
	}
	if strings.Contains(warningText, "node_modules") {
		testingHandle.Fatalf("warning mentions a valid pattern: %q", warningText)
	}
}

// TestPatternMatcherUnanchoredSearch verifies that matching is an
// unanchored search anywhere in the bare entry name.
func TestPatternMatcherUnanchoredSearch(testingHandle *testing.T) {
	var warningBuffer bytes.Buffer
	patternMatcher := tree.NewPatternMatcher(tree.CompilePatterns([]string{"mod", `^\.git$`}, &warningBuffer))
	if warningBuffer.Len() != 0 {
		testingHandle.Fatalf("unexpected warnings: %q", warningBuffer.String())
	}

	matchCases := []struct {
		entryName string
		expected  bool
	}{
		{"node_modules", true},
		{"go.mod", true},
		{"mod", true},
		{".git", true},
		{".github", false},
		{"MODULE", false},
	}
	for _, matchCase := range matchCases {
		if actual := patternMatcher.Matches(matchCase.entryName); actual != matchCase.expected {
			testingHandle.Errorf("Matches(%q) = %v, expected %v", matchCase.entryName, actual, matchCase.expected)
		}
	}
}

// TestPatternMatcherWithoutPatterns verifies that an empty matcher
// never excludes anything.
func TestPatternMatcherWithoutPatterns(testingHandle *testing.T) {
	patternMatcher := tree.NewPatternMatcher(nil)
	if patternMatcher.Matches("anything") {
		testingHandle.Fatalf("matcher without patterns excluded an entry")
	}
}
