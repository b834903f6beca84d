package tree

import (
	"fmt"
	"io"

	"github.com/temirov/lstree/internal/types"
)

const (
	// lastSiblingConnector precedes the final child of a parent.
	lastSiblingConnector = "└── "
	// middleSiblingConnector precedes every child that still has following siblings.
	middleSiblingConnector = "├── "
	// lastSiblingChildPrefix extends the prefix below a last child.
	lastSiblingChildPrefix = "    "
	// middleSiblingChildPrefix extends the prefix below a child with following siblings.
	middleSiblingChildPrefix = "│   "
)

// TreeRenderer prints a built tree line by line in pre-order,
// reconstructing connector glyphs from tree shape, and accumulates
// directory and file counts as it goes. Nodes are never filtered at
// render time; the builder already applied every rule.
type TreeRenderer struct {
	outputWriter io.Writer
	showFiles    bool
}

// NewTreeRenderer constructs a renderer writing to outputWriter.
// showFiles gates the file count; with directories-only trees no file
// nodes exist, but the renderer does not rely on that.
func NewTreeRenderer(outputWriter io.Writer, showFiles bool) *TreeRenderer {
	return &TreeRenderer{
		outputWriter: outputWriter,
		showFiles:    showFiles,
	}
}

// Render prints the tree rooted at rootNode and returns the directory
// and file counts. The root line carries no connector and no
// indentation and is never counted.
func (treeRenderer *TreeRenderer) Render(rootNode *types.TreeNode) (directoryCount int, fileCount int) {
	fmt.Fprintln(treeRenderer.outputWriter, rootNode.Name)
	treeRenderer.renderChildren(rootNode, "", &directoryCount, &fileCount)
	return directoryCount, fileCount
}

// renderChildren prints every child of parentNode beneath the given
// prefix, threading last-sibling state into the prefix handed to each
// child's own children.
func (treeRenderer *TreeRenderer) renderChildren(parentNode *types.TreeNode, prefix string, directoryCount *int, fileCount *int) {
	lastChildIndex := len(parentNode.Children) - 1
	for childIndex, childNode := range parentNode.Children {
		isLastSibling := childIndex == lastChildIndex

		connector := middleSiblingConnector
		childPrefix := prefix + middleSiblingChildPrefix
		if isLastSibling {
			connector = lastSiblingConnector
			childPrefix = prefix + lastSiblingChildPrefix
		}
		fmt.Fprintf(treeRenderer.outputWriter, "%s%s%s\n", prefix, connector, childNode.Name)

		if childNode.IsDirectory {
			*directoryCount++
		} else if treeRenderer.showFiles {
			*fileCount++
		}

		treeRenderer.renderChildren(childNode, childPrefix, directoryCount, fileCount)
	}
}
