package tree

import (
	"os"
	"strings"
)

// ExclusionTracker records the full paths of entries that matched an
// exclude pattern at the moment their parent directory was scanned.
// Exclusion is normally applied by never creating a child node for a
// matched entry; the tracker is the safety net against reaching an
// excluded subtree again through a different discovered route.
//
// One tracker is created per run and injected into the builder. The
// set only grows during a single build pass.
type ExclusionTracker struct {
	excludedPaths map[string]struct{}
}

// NewExclusionTracker constructs an empty tracker.
func NewExclusionTracker() *ExclusionTracker {
	return &ExclusionTracker{excludedPaths: make(map[string]struct{})}
}

// Record adds a path to the exclusion set. Called exactly once per
// entry rejected by the pattern matcher, at the depth of discovery.
func (exclusionTracker *ExclusionTracker) Record(excludedPath string) {
	exclusionTracker.excludedPaths[excludedPath] = struct{}{}
}

// IsUnderExcluded reports whether candidatePath is a strict descendant
// of any recorded path. A recorded path is never a descendant of itself,
// and the comparison is path-component-wise: "/a/bc" is not under "/a/b".
func (exclusionTracker *ExclusionTracker) IsUnderExcluded(candidatePath string) bool {
	for excludedPath := range exclusionTracker.excludedPaths {
		if candidatePath == excludedPath {
			continue
		}
		if strings.HasPrefix(candidatePath, excludedPath+string(os.PathSeparator)) {
			return true
		}
	}
	return false
}
