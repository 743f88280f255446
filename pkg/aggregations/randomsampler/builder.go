// Package randomsampler implements the configuration and construction-time
// validation of the random sampler aggregation: a single-bucket aggregation
// that probabilistically includes documents before they reach its
// sub-aggregations, trading exactness for speed on large result sets.
package randomsampler

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/DashaKrutsko/elasticsearch/pkg/aggregations"
)

// TypeName is the registered type of the random sampler aggregation.
const TypeName = "random_sampler"

// DefaultProbability is the sampling probability used when the caller does
// not configure one.
const DefaultProbability = 0.1

// Builder configures a random sampler aggregation. It is mutable during the
// configuration phase and must only be mutated by a single owner; calling
// [Builder.Build] produces the immutable [Factory] handed to the execution
// engine.
type Builder struct {
	aggregations.BaseBuilder

	probability float64
	seed        int32
}

var _ aggregations.Builder = (*Builder)(nil)

// New creates a builder with the default probability and a seed drawn from
// the process-wide seed source. Each call draws independently, so builders
// created in bulk still get distinct default seeds.
func New(name string) *Builder {
	return NewWithSource(name, defaultSeedSource)
}

// NewWithSource creates a builder whose default seed is drawn from src.
// Tests inject a deterministic source here.
func NewWithSource(name string, src SeedSource) *Builder {
	return &Builder{
		BaseBuilder: aggregations.NewBaseBuilder(name),
		probability: DefaultProbability,
		seed:        src.Int31(),
	}
}

// SetProbability sets the per-document inclusion probability. The value
// must lie in the open interval (0, 1); anything else, including NaN and
// infinities, is rejected and the stored probability is left untouched.
func (b *Builder) SetProbability(probability float64) error {
	if math.IsNaN(probability) || probability <= 0 || probability >= 1 {
		return aggregations.InvalidArgumentf("[probability] must be between 0 and 1, exclusive, was [%v]", probability)
	}
	b.probability = probability
	return nil
}

// Probability returns the configured inclusion probability.
func (b *Builder) Probability() float64 { return b.probability }

// SetSeed sets the seed of the sampler's pseudo-random document selection.
// Any 32-bit signed value is accepted.
func (b *Builder) SetSeed(seed int32) { b.seed = seed }

// Seed returns the configured seed.
func (b *Builder) Seed() int32 { return b.seed }

// CloneWith creates a builder carrying the same probability and seed but an
// externally supplied sub-aggregation tree and metadata. The surrounding
// framework uses this when it rewrites trees, e.g. for remote execution.
func (b *Builder) CloneWith(subs []aggregations.Builder, metadata map[string]any) *Builder {
	clone := &Builder{
		BaseBuilder: aggregations.NewBaseBuilder(b.Name()),
		probability: b.probability,
		seed:        b.seed,
	}
	clone.SetSubAggregations(subs)
	clone.SetMetadata(metadata)
	return clone
}

// Type implements the [aggregations.Builder] interface.
func (*Builder) Type() string { return TypeName }

// BucketCardinality implements the [aggregations.Builder] interface. The
// sampler always emits exactly one bucket per execution.
func (*Builder) BucketCardinality() aggregations.BucketCardinality {
	return aggregations.CardinalityOne
}

// SupportsSampling implements the [aggregations.Builder] interface.
// Nesting samplers compounds sampling rates, so a sampler does not admit
// another sampler above it.
func (*Builder) SupportsSampling() bool { return false }

// Equal reports whether other is a random sampler with identical name,
// metadata, sub-aggregations, probability, and seed.
func (b *Builder) Equal(other aggregations.Builder) bool {
	o, ok := other.(*Builder)
	if !ok {
		return false
	}
	return b.EqualBase(&o.BaseBuilder) && b.probability == o.probability && b.seed == o.seed
}

// Hash implements the [aggregations.Builder] interface. It is consistent
// with [Builder.Equal].
func (b *Builder) Hash() uint64 {
	d := xxhash.New()
	b.HashBase(d)
	var buf [12]byte
	binary.BigEndian.PutUint64(buf[0:8], math.Float64bits(b.probability))
	binary.BigEndian.PutUint32(buf[8:12], uint32(b.seed))
	_, _ = d.Write(buf[:])
	return d.Sum64()
}

// String returns a single-line representation of the builder used in tree
// rendering and debugging.
func (b *Builder) String() string {
	return fmt.Sprintf("%s [name=%s, probability=%v, seed=%d]", TypeName, b.Name(), b.probability, b.seed)
}
