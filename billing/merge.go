package billing

// ReplaceByID merges a single updated record into a list, matching by the
// caller-supplied predicate. The input slice is not modified; records
// that don't match are carried over unchanged, and an updated record with
// no match leaves the list as it was.
func ReplaceByID[T any](list []T, updated T, match func(T) bool) []T {
	merged := make([]T, len(list))
	for i, record := range list {
		if match(record) {
			merged[i] = updated
		} else {
			merged[i] = record
		}
	}
	return merged
}
