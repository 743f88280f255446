package aggregations

// WalkFn is the callback function that gets called whenever a node of the
// aggregation tree is visited. The return value indicates whether the
// traversal should continue with the node's sub-aggregations.
type WalkFn = func(b Builder) bool

// Walk traverses the aggregation tree rooted at b depth-first, visiting
// sub-aggregations in insertion order. The root itself is visited first.
func Walk(b Builder, fn WalkFn) {
	if !fn(b) {
		return
	}
	for _, sub := range b.SubAggregations() {
		Walk(sub, fn)
	}
}
