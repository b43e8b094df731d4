// Package sequence generates the ordered integer sequences fed into
// pipeline processors.
package sequence

// CollectUntil returns the ascending integers 0, 1, ..., limit-1.
// A limit <= 0 yields an empty slice.
func CollectUntil(limit int) []int64 {
	if limit <= 0 {
		return []int64{}
	}
	values := make([]int64, 0, limit)
	for current := int64(0); current < int64(limit); current++ {
		values = append(values, current)
	}
	return values
}
