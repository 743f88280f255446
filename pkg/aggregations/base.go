package aggregations

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// BaseBuilder holds the state shared by all aggregation builders: the node
// name, the opaque metadata map, and the ordered sub-aggregation tree.
// Concrete builders embed it and layer their own parameters on top.
type BaseBuilder struct {
	name            string
	metadata        map[string]any
	subAggregations []Builder
}

// NewBaseBuilder creates the shared builder state for an aggregation with
// the given name.
func NewBaseBuilder(name string) BaseBuilder {
	return BaseBuilder{name: name}
}

// Name returns the aggregation's identifier within its tree.
func (b *BaseBuilder) Name() string { return b.name }

// Metadata returns the opaque passthrough metadata attached to the node.
func (b *BaseBuilder) Metadata() map[string]any { return b.metadata }

// SetMetadata replaces the node's metadata. The map is referenced, not
// copied.
func (b *BaseBuilder) SetMetadata(metadata map[string]any) { b.metadata = metadata }

// SubAggregations returns the builder's children in insertion order.
func (b *BaseBuilder) SubAggregations() []Builder { return b.subAggregations }

// AddSubAggregation appends a child to the builder's sub-aggregation tree.
func (b *BaseBuilder) AddSubAggregation(sub Builder) { b.subAggregations = append(b.subAggregations, sub) }

// SetSubAggregations replaces the builder's sub-aggregation tree. The slice
// is referenced, not copied.
func (b *BaseBuilder) SetSubAggregations(subs []Builder) { b.subAggregations = subs }

// EqualBase reports whether the shared state of two builders is identical:
// same name, deeply equal metadata (order-irrelevant), and pairwise equal
// sub-aggregations in the same order.
func (b *BaseBuilder) EqualBase(other *BaseBuilder) bool {
	if b.name != other.name {
		return false
	}
	if !reflect.DeepEqual(b.metadata, other.metadata) {
		return false
	}
	if len(b.subAggregations) != len(other.subAggregations) {
		return false
	}
	for i := range b.subAggregations {
		if !b.subAggregations[i].Equal(other.subAggregations[i]) {
			return false
		}
	}
	return true
}

// HashBase writes the shared builder state into d. Metadata keys are hashed
// in sorted order so that maps holding the same entries hash identically
// regardless of insertion order.
func (b *BaseBuilder) HashBase(d *xxhash.Digest) {
	_, _ = d.WriteString(b.name)

	keys := make([]string, 0, len(b.metadata))
	for k := range b.metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, _ = d.WriteString(k)
		// fmt sorts map keys, so deeply equal values format identically.
		_, _ = d.WriteString(fmt.Sprintf("%v", b.metadata[k]))
	}

	var buf [8]byte
	for _, sub := range b.subAggregations {
		binary.BigEndian.PutUint64(buf[:], sub.Hash())
		_, _ = d.Write(buf[:])
	}
}
