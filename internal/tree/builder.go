package tree

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/temirov/lstree/internal/types"
)

// TreeBuilder walks the filesystem and produces the in-memory tree a
// renderer consumes. The walk is synchronous and depth-first; a failed
// directory read degrades that directory to a childless leaf instead of
// aborting the run.
type TreeBuilder struct {
	configuration    types.WalkConfiguration
	patternMatcher   *PatternMatcher
	exclusionTracker *ExclusionTracker
}

// NewTreeBuilder constructs a builder over one walk configuration. The
// tracker is injected so tests can supply a fresh one per case.
func NewTreeBuilder(configuration types.WalkConfiguration, patternMatcher *PatternMatcher, exclusionTracker *ExclusionTracker) *TreeBuilder {
	return &TreeBuilder{
		configuration:    configuration,
		patternMatcher:   patternMatcher,
		exclusionTracker: exclusionTracker,
	}
}

// Build recursively constructs the node for directoryPath. A nil return
// means no node was produced: the depth bound was exceeded, the path
// lies beneath a previously excluded path, or no bare display name
// could be derived. A nil result is distinct from an empty directory
// node, which is returned with zero children.
//
// The root is at depth zero; a configured maximum depth is inclusive of
// that many levels of children below the root.
func (treeBuilder *TreeBuilder) Build(directoryPath string, currentDepth int) *types.TreeNode {
	if treeBuilder.configuration.DepthLimited() && currentDepth > treeBuilder.configuration.MaximumDepth {
		return nil
	}
	if treeBuilder.exclusionTracker.IsUnderExcluded(directoryPath) {
		return nil
	}

	displayName, nameDerived := treeBuilder.displayNameForPath(directoryPath)
	if !nameDerived {
		return nil
	}
	directoryNode := types.NewTreeNode(displayName, true)

	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		// Unreadable directories degrade to childless leaves.
		return directoryNode
	}
	sortEntriesByRawName(directoryEntries)

	childDepth := currentDepth + 1
	for _, directoryEntry := range directoryEntries {
		entryName := directoryEntry.Name()
		entryPath := filepath.Join(directoryPath, entryName)

		if treeBuilder.patternMatcher.Matches(entryName) {
			treeBuilder.exclusionTracker.Record(entryPath)
			continue
		}
		if treeBuilder.configuration.DirectoriesOnly && !directoryEntry.IsDir() {
			continue
		}
		if directoryEntry.IsDir() {
			if childNode := treeBuilder.Build(entryPath, childDepth); childNode != nil {
				directoryNode.AddChild(childNode)
			}
			continue
		}
		// File leaves obey the same depth bound as directory recursion.
		if treeBuilder.configuration.DepthLimited() && childDepth > treeBuilder.configuration.MaximumDepth {
			continue
		}
		directoryNode.AddChild(types.NewTreeNode(entryName, false))
	}

	return directoryNode
}

// displayNameForPath returns the label a node should carry: the start
// path string verbatim for the root, otherwise the bare entry name.
// The second result is false when no bare name exists for the path.
func (treeBuilder *TreeBuilder) displayNameForPath(directoryPath string) (string, bool) {
	if directoryPath == treeBuilder.configuration.StartPath {
		return directoryPath, true
	}
	bareName := filepath.Base(directoryPath)
	if bareName == "." || bareName == ".." || bareName == string(os.PathSeparator) {
		return "", false
	}
	return bareName, true
}

// sortEntriesByRawName orders entries by byte-wise comparison of their
// file names. os.ReadDir already returns lexical order; sorting here
// pins the guarantee locally so output stays deterministic.
func sortEntriesByRawName(directoryEntries []os.DirEntry) {
	sort.Slice(directoryEntries, func(firstIndex, secondIndex int) bool {
		return directoryEntries[firstIndex].Name() < directoryEntries[secondIndex].Name()
	})
}
