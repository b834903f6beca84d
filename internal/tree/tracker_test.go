package tree_test

import (
	"path/filepath"
	"testing"

	"github.com/temirov/lstree/internal/tree"
)

// TestExclusionTrackerStrictDescendants verifies that only strict
// descendants of a recorded path count as excluded, with comparisons
// made per path component.
func TestExclusionTrackerStrictDescendants(testingHandle *testing.T) {
	exclusionTracker := tree.NewExclusionTracker()
	recordedPath := filepath.Join("/", "project", "vendor")
	exclusionTracker.Record(recordedPath)

	descendantCases := []struct {
		candidatePath string
		expected      bool
	}{
		{filepath.Join("/", "project", "vendor", "library"), true},
		{filepath.Join("/", "project", "vendor", "library", "deep", "file.go"), true},
		{recordedPath, false},
		{filepath.Join("/", "project", "vendored"), false},
		{filepath.Join("/", "project"), false},
		{filepath.Join("/", "other", "vendor", "library"), false},
	}
	for _, descendantCase := range descendantCases {
		if actual := exclusionTracker.IsUnderExcluded(descendantCase.candidatePath); actual != descendantCase.expected {
			testingHandle.Errorf("IsUnderExcluded(%q) = %v, expected %v", descendantCase.candidatePath, actual, descendantCase.expected)
		}
	}
}

// TestExclusionTrackerEmpty verifies that a fresh tracker excludes nothing.
func TestExclusionTrackerEmpty(testingHandle *testing.T) {
	exclusionTracker := tree.NewExclusionTracker()
	if exclusionTracker.IsUnderExcluded(filepath.Join("/", "any", "path")) {
		testingHandle.Fatalf("fresh tracker reported an excluded descendant")
	}
}
