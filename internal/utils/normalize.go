package utils

// CreateRankList returns the ranks 1..count for results that are already
// in display order.
func CreateRankList(count int) []int {
	if count <= 0 {
		return []int{}
	}
	ranks := make([]int, count)
	for i := range ranks {
		ranks[i] = i + 1
	}
	return ranks
}
