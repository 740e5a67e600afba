// Package reverselinkedlist solves LeetCode 206, Reverse Linked List.
package reverselinkedlist

import "github.com/brettbar/leetcli/internal/listnode"

// ReverseList reverses a singly linked list iteratively, reusing its nodes.
func ReverseList(head *listnode.ListNode) *listnode.ListNode {
	var prev *listnode.ListNode
	curr := head
	for curr != nil {
		next := curr.Next
		curr.Next = prev
		prev = curr
		curr = next
	}
	return prev
}
