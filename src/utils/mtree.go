package utils

import (
	"fmt"
	"io"

	"algodemo/src/sort"
)

const (
	pipe    = "│   "
	tee     = "├── "
	lasttee = "└── "
	blank   = "    "
)

// TreeNode is one range of a sort's recursion. Siblings are linked through
// Left and Right in visiting order.
type TreeNode struct {
	Level    int
	Label    string
	Children []*TreeNode
	Parent   *TreeNode
	Left     *TreeNode
	Right    *TreeNode
}

// ShowTree prints out the contents of the tree, using its prefix to determine the proper indentation and the difference
// between the tee and lasttee characters to denote the beginning or end of a tree branch
func (node *TreeNode) ShowTree(w io.Writer, prefix string) {
	if node.Level == 0 {
		fmt.Fprintln(w, node.Label)
	} else {
		subFix := lasttee
		if node.Right != nil {
			subFix = tee
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, subFix, node.Label)

		if node.Right != nil {
			prefix += pipe
		} else {
			prefix += blank
		}
	}

	for _, child := range node.Children {
		child.ShowTree(w, prefix)
	}
}

// AddChild appends a child labeled label and links it after its last sibling.
func (node *TreeNode) AddChild(label string) *TreeNode {
	var pre *TreeNode
	if len(node.Children) > 0 {
		pre = node.Children[len(node.Children)-1]
	}

	child := &TreeNode{
		Level:  node.Level + 1,
		Label:  label,
		Parent: node,
		Left:   pre,
	}
	if pre != nil {
		pre.Right = child
	}

	node.Children = append(node.Children, child)
	return child
}

// BuildTree rebuilds the recursion tree of a traced sort. steps must be in
// visiting order, as returned by sort.Trace.
func BuildTree(steps []sort.Step, label func(sort.Range) string) *TreeNode {
	if len(steps) == 0 {
		return nil
	}
	root := &TreeNode{Label: label(steps[0].Range)}
	path := []*TreeNode{root}
	for _, st := range steps[1:] {
		for len(path) > 1 && len(path) > st.Depth {
			path = path[:len(path)-1]
		}
		child := path[len(path)-1].AddChild(label(st.Range))
		path = append(path, child)
	}
	return root
}
