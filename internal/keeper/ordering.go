package keeper

// orderForDisplay projects a collection snapshot into its display order:
// the pinned group first, then the rest, each group keeping relative
// insertion order. The projection is pure and idempotent; it never mutates
// the input and applies no secondary sort.
func orderForDisplay[T any](items []T, pinned func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pinned(item) {
			out = append(out, item)
		}
	}
	for _, item := range items {
		if !pinned(item) {
			out = append(out, item)
		}
	}
	return out
}
