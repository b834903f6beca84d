// Package tree contains the core logic for building and rendering directory trees.
package tree

import (
	"fmt"
	"io"
	"regexp"
)

const (
	// warningInvalidPatternFormat reports an exclude pattern that failed to compile.
	warningInvalidPatternFormat = "Warning: invalid exclude pattern '%s': %v\n"
)

// PatternMatcher answers whether a bare entry name is excluded by any
// configured pattern. Matching is an unanchored regular-expression
// search over the entry name, never over the full path.
type PatternMatcher struct {
	excludePatterns []*regexp.Regexp
}

// NewPatternMatcher constructs a matcher over already compiled patterns.
func NewPatternMatcher(excludePatterns []*regexp.Regexp) *PatternMatcher {
	return &PatternMatcher{excludePatterns: excludePatterns}
}

// Matches reports whether any configured pattern matches anywhere in entryName.
func (patternMatcher *PatternMatcher) Matches(entryName string) bool {
	for _, excludePattern := range patternMatcher.excludePatterns {
		if excludePattern.MatchString(entryName) {
			return true
		}
	}
	return false
}

// CompilePatterns compiles each raw pattern independently. A pattern
// that fails to compile is dropped with a diagnostic on warningWriter;
// the remaining patterns still take effect.
func CompilePatterns(rawPatterns []string, warningWriter io.Writer) []*regexp.Regexp {
	var compiledPatterns []*regexp.Regexp
	for _, rawPattern := range rawPatterns {
		compiledPattern, compileError := regexp.Compile(rawPattern)
		if compileError != nil {
			fmt.Fprintf(warningWriter, warningInvalidPatternFormat, rawPattern, compileError)
			continue
		}
		compiledPatterns = append(compiledPatterns, compiledPattern)
	}
	return compiledPatterns
}
