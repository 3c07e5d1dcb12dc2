package demo

// SearchRecursive reports whether target occurs in items, testing equality at
// one index per recursive call. Recursion depth equals len(items) in the
// worst case, so this is meant for small demonstration inputs.
func SearchRecursive[T comparable](items []T, target T) bool {
	return searchFrom(items, target, 0)
}

func searchFrom[T comparable](items []T, target T, index int) bool {
	if index >= len(items) {
		return false
	}
	if items[index] == target {
		return true
	}
	return searchFrom(items, target, index+1)
}
