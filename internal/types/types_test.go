package types_test

import (
	"testing"

	"github.com/temirov/lstree/internal/types"
)

// TestTreeNodeChildOrder verifies that children keep insertion order.
func TestTreeNodeChildOrder(testingHandle *testing.T) {
	parentNode := types.NewTreeNode("parent", true)
	parentNode.AddChild(types.NewTreeNode("first", true))
	parentNode.AddChild(types.NewTreeNode("second", false))
	if len(parentNode.Children) != 2 {
		testingHandle.Fatalf("expected 2 children, got %d", len(parentNode.Children))
	}
	if parentNode.Children[0].Name != "first" || parentNode.Children[1].Name != "second" {
		testingHandle.Fatalf("children out of order: %v, %v", parentNode.Children[0].Name, parentNode.Children[1].Name)
	}
}

// TestDepthLimited verifies the unlimited-depth sentinel.
func TestDepthLimited(testingHandle *testing.T) {
	unlimited := types.WalkConfiguration{MaximumDepth: types.UnlimitedDepth}
	if unlimited.DepthLimited() {
		testingHandle.Fatalf("unlimited configuration reported a depth bound")
	}
	bounded := types.WalkConfiguration{MaximumDepth: 0}
	if !bounded.DepthLimited() {
		testingHandle.Fatalf("depth 0 configuration reported no bound")
	}
}
