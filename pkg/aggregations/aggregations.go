// Package aggregations holds the tree-node contract that aggregation
// builders participate in: naming, sub-aggregation ownership, equality and
// hashing, and the build step that turns a configured tree into executable
// factories.
package aggregations

import "fmt"

// BucketCardinality is the declared upper bound on the number of output
// buckets a node can produce per execution. It is consumed by planning and
// optimization logic upstream of the execution engine.
type BucketCardinality int

const (
	_ BucketCardinality = iota // zero-value is an invalid cardinality

	// CardinalityNone is declared by metric aggregations that produce no buckets.
	CardinalityNone
	// CardinalityOne is declared by single-bucket aggregations.
	CardinalityOne
	// CardinalityMany is declared by multi-bucket aggregations.
	CardinalityMany
)

// String returns the string representation of the [BucketCardinality].
func (c BucketCardinality) String() string {
	switch c {
	case CardinalityNone:
		return "none"
	case CardinalityOne:
		return "one"
	case CardinalityMany:
		return "many"
	default:
		panic(fmt.Sprintf("unknown bucket cardinality %d", c))
	}
}

// Builder is the common interface for all aggregation builders in a tree.
// A builder is mutable during the configuration phase and must only be
// mutated by a single owner; once built into a [Factory] it is no longer
// touched and the factory may be read concurrently.
type Builder interface {
	fmt.Stringer

	// Name returns the aggregation's identifier within its tree.
	Name() string
	// Type returns the aggregation's registered type name.
	Type() string
	// SubAggregations returns the builder's children in insertion order.
	SubAggregations() []Builder
	// Metadata returns the opaque passthrough metadata attached to the node.
	Metadata() map[string]any
	// BucketCardinality declares how many buckets the node emits per execution.
	BucketCardinality() BucketCardinality
	// SupportsSampling reports whether the aggregation's semantics remain
	// valid when its input is a probabilistic sample of the full document
	// set. Cardinality estimators, nested-document pivots, and sampler
	// variants return false.
	SupportsSampling() bool
	// Equal reports whether other is structurally identical to the builder.
	Equal(other Builder) bool
	// Hash returns a hash consistent with Equal.
	Hash() uint64
	// Build finalizes the builder into an executable factory. parent is nil
	// when the builder sits at the root of the tree.
	Build(ctx *BuildContext, parent Factory) (Factory, error)
}

// Factory is the built, execution-ready representation of a configured
// aggregation node. Factories are immutable.
type Factory interface {
	// Name returns the aggregation's identifier within its tree.
	Name() string
	// Type returns the aggregation's registered type name.
	Type() string
}
