// Package reversenodesinkgroup solves LeetCode 25, Reverse Nodes in k-Group.
package reversenodesinkgroup

import (
	"errors"
	"fmt"

	"github.com/brettbar/leetcli/internal/listnode"
)

// ErrInvalidGroupSize is returned when the group size is below one.
var ErrInvalidGroupSize = errors.New("group size must be at least 1")

// ReverseKGroup reverses every run of k consecutive nodes of the list in
// place and leaves a trailing run shorter than k in its original order.
//
// The nodes of head are reused and only their Next links are rewritten, so
// the caller must not keep using head after the call. k below one is
// rejected before the list is touched. The list must not contain a cycle.
func ReverseKGroup(head *listnode.ListNode, k int) (*listnode.ListNode, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGroupSize, k)
	}

	var result *listnode.ListNode
	target := &result

	for head != nil {
		// Find the k-th node of the group, or attach the short tail as is.
		last := head
		length := 1
		for length < k && last.Next != nil {
			last = last.Next
			length++
		}
		if length < k {
			*target = head
			break
		}

		first := head
		head = last.Next
		last.Next = nil

		*target = reverse(first)
		target = &first.Next
	}

	return result, nil
}

// reverse reverses a detached, nil-terminated group and returns its new head.
func reverse(group *listnode.ListNode) *listnode.ListNode {
	next := group.Next
	group.Next = nil
	for next != nil {
		node := next
		next = node.Next
		node.Next = group
		group = node
	}
	return group
}
