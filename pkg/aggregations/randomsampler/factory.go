package randomsampler

import (
	"github.com/go-kit/log/level"

	"github.com/DashaKrutsko/elasticsearch/pkg/aggregations"
)

// Factory is the built, immutable form of a random sampler aggregation.
// Once produced it is never mutated again and may be read concurrently by
// per-shard execution contexts.
type Factory struct {
	name        string
	seed        int32
	probability float64
	children    []aggregations.Factory
	metadata    map[string]any
}

var _ aggregations.Factory = (*Factory)(nil)

// Name implements the [aggregations.Factory] interface.
func (f *Factory) Name() string { return f.name }

// Type implements the [aggregations.Factory] interface.
func (*Factory) Type() string { return TypeName }

// Seed returns the seed of the sampler's pseudo-random document selection.
func (f *Factory) Seed() int32 { return f.seed }

// Probability returns the per-document inclusion probability.
func (f *Factory) Probability() float64 { return f.probability }

// SubFactories returns the built sub-aggregations in declaration order.
func (f *Factory) SubFactories() []aggregations.Factory { return f.children }

// Metadata returns the opaque metadata carried over from the builder.
func (f *Factory) Metadata() map[string]any { return f.metadata }

// Build implements the [aggregations.Builder] interface. It validates the
// sampler's placement and its entire subtree, then finalizes the builder
// into a [Factory]:
//
//  1. The sampler must sit at the root of the aggregation tree.
//  2. It must wrap at least one sub-aggregation.
//  3. No descendant, at any depth, may declare that it does not support
//     sampled input.
//
// Validation either fully succeeds or fully fails; no factory is produced
// on error and nothing is corrected silently.
func (b *Builder) Build(ctx *aggregations.BuildContext, parent aggregations.Factory) (aggregations.Factory, error) {
	if parent != nil {
		return nil, aggregations.InvalidArgumentf("[%s] aggregation [%s] cannot have a parent aggregation", TypeName, b.Name())
	}
	subs := b.SubAggregations()
	if len(subs) == 0 {
		return nil, aggregations.InvalidArgumentf("[%s] aggregation [%s] must have sub-aggregations", TypeName, b.Name())
	}
	for _, sub := range subs {
		var violation aggregations.Builder
		aggregations.Walk(sub, func(node aggregations.Builder) bool {
			if violation != nil {
				return false
			}
			if !node.SupportsSampling() {
				violation = node
				return false
			}
			return true
		})
		if violation != nil {
			return nil, aggregations.InvalidArgumentf(
				"[%s] aggregation [%s] does not support sampling [%s] aggregation [%s]",
				TypeName, b.Name(), violation.Type(), violation.Name(),
			)
		}
	}

	f := &Factory{
		name:        b.Name(),
		seed:        b.seed,
		probability: b.probability,
		metadata:    b.Metadata(),
	}
	f.children = make([]aggregations.Factory, 0, len(subs))
	for _, sub := range subs {
		child, err := sub.Build(ctx, f)
		if err != nil {
			return nil, err
		}
		f.children = append(f.children, child)
	}

	level.Debug(ctx.Logger()).Log(
		"msg", "built random sampler aggregation",
		"aggregation", b.Name(),
		"probability", b.probability,
		"seed", b.seed,
		"sub_aggregations", len(f.children),
	)
	return f, nil
}
