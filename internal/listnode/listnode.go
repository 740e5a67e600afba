// Package listnode holds the singly linked list node shared by the list problems.
package listnode

// ListNode is the standard LeetCode singly-linked list node.
type ListNode struct {
	Val  int
	Next *ListNode
}

// FromSlice builds a list holding vals in order. An empty slice yields nil.
func FromSlice(vals []int) *ListNode {
	var head, tail *ListNode
	for _, v := range vals {
		node := &ListNode{Val: v}
		if head == nil {
			head = node
			tail = node
			continue
		}
		tail.Next = node
		tail = node
	}
	return head
}

// ToSlice flattens the list starting at head. A nil head yields an empty, non-nil slice.
func ToSlice(head *ListNode) []int {
	out := []int{}
	for curr := head; curr != nil; curr = curr.Next {
		out = append(out, curr.Val)
	}
	return out
}

// Nodes returns the node pointers of the list in order.
func Nodes(head *ListNode) []*ListNode {
	var out []*ListNode
	for curr := head; curr != nil; curr = curr.Next {
		out = append(out, curr)
	}
	return out
}

// Len counts the nodes reachable from head.
func Len(head *ListNode) int {
	n := 0
	for curr := head; curr != nil; curr = curr.Next {
		n++
	}
	return n
}
