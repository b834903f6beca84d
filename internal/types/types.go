// Package types defines every cross‑package data structure used by the lstree CLI.
package types

import "regexp"

// UnlimitedDepth marks a walk configuration without a depth bound.
const UnlimitedDepth = -1

// TreeNode represents a single entry of a built directory tree.
// The root node carries the start path string as its name; every other
// node carries the bare entry name.
type TreeNode struct {
	Name        string
	IsDirectory bool
	Children    []*TreeNode
}

// NewTreeNode constructs a childless tree node.
func NewTreeNode(displayName string, isDirectory bool) *TreeNode {
	return &TreeNode{
		Name:        displayName,
		IsDirectory: isDirectory,
	}
}

// AddChild appends a child node, preserving insertion order.
func (treeNode *TreeNode) AddChild(childNode *TreeNode) {
	treeNode.Children = append(treeNode.Children, childNode)
}

// WalkConfiguration holds the validated settings for one tree walk.
// It is immutable for the duration of a run.
type WalkConfiguration struct {
	// StartPath is the directory the walk begins at, as given by the user.
	StartPath string
	// MaximumDepth bounds how many directory levels below the root are
	// visited; UnlimitedDepth disables the bound.
	MaximumDepth int
	// DirectoriesOnly omits file entries from the built tree.
	DirectoriesOnly bool
	// ExcludePatterns prune entries whose bare name contains a match.
	ExcludePatterns []*regexp.Regexp
}

// DepthLimited reports whether the configuration carries a depth bound.
func (configuration WalkConfiguration) DepthLimited() bool {
	return configuration.MaximumDepth != UnlimitedDepth
}
