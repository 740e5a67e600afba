// Package binarytreeinordertraversal solves LeetCode 94, Binary Tree Inorder Traversal.
package binarytreeinordertraversal

import "github.com/brettbar/leetcli/internal/treenode"

// InorderTraversal returns the inorder values of the tree using an explicit stack.
func InorderTraversal(root *treenode.TreeNode) []int {
	result := make([]int, 0)
	stack := make([]*treenode.TreeNode, 0)
	curr := root

	for curr != nil || len(stack) > 0 {
		for curr != nil {
			stack = append(stack, curr)
			curr = curr.Left
		}

		n := len(stack) - 1
		curr = stack[n]
		stack = stack[:n]

		result = append(result, curr.Val)
		curr = curr.Right
	}

	return result
}
