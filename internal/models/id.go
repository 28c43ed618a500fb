package models

// NextID returns max(existing ids)+1, or 1 for an empty collection. Ids are
// unique only within one collection.
func NextID(ids []int) int {
	next := 1
	for _, id := range ids {
		if id >= next {
			next = id + 1
		}
	}
	return next
}
