// Package twosum solves LeetCode 1, Two Sum.
package twosum

// TwoSum returns the indices of the two numbers that add up to target, or
// nil when no pair does. With several answers the one whose second index
// is smallest wins.
func TwoSum(nums []int, target int) []int {
	seen := make(map[int]int, len(nums))
	for i, n := range nums {
		if j, ok := seen[target-n]; ok {
			return []int{j, i}
		}
		seen[n] = i
	}
	return nil
}
