package binarytreeinordertraversal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brettbar/leetcli/internal/treenode"
)

func TestInorderTraversal(t *testing.T) {
	root := &treenode.TreeNode{
		Val: 1,
		Right: &treenode.TreeNode{
			Val:  2,
			Left: &treenode.TreeNode{Val: 3},
		},
	}
	assert.Equal(t, []int{1, 3, 2}, InorderTraversal(root))
	assert.Equal(t, []int{}, InorderTraversal(nil))
}

func TestProblemCases(t *testing.T) {
	var p Problem
	cases, err := p.Cases()
	require.NoError(t, err)

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			got, err := p.Solve(c.Input)
			require.NoError(t, err)
			assert.Equal(t, c.Expected, got)
		})
	}
}
