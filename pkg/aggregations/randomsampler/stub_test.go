package randomsampler

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/DashaKrutsko/elasticsearch/pkg/aggregations"
)

// stubBuilder is a minimal aggregation builder used to assemble test trees.
// samplable mirrors what concrete aggregations declare: true for ordinary
// bucket/metric aggregations, false for cardinality estimators, nested
// pivots, and sampler variants.
type stubBuilder struct {
	aggregations.BaseBuilder

	typ       string
	samplable bool
}

var _ aggregations.Builder = (*stubBuilder)(nil)

func newStub(typ, name string, samplable bool, subs ...aggregations.Builder) *stubBuilder {
	s := &stubBuilder{
		BaseBuilder: aggregations.NewBaseBuilder(name),
		typ:         typ,
		samplable:   samplable,
	}
	s.SetSubAggregations(subs)
	return s
}

func (s *stubBuilder) Type() string { return s.typ }

func (s *stubBuilder) BucketCardinality() aggregations.BucketCardinality {
	return aggregations.CardinalityMany
}

func (s *stubBuilder) SupportsSampling() bool { return s.samplable }

func (s *stubBuilder) Equal(other aggregations.Builder) bool {
	o, ok := other.(*stubBuilder)
	if !ok {
		return false
	}
	return s.EqualBase(&o.BaseBuilder) && s.typ == o.typ && s.samplable == o.samplable
}

func (s *stubBuilder) Hash() uint64 {
	d := xxhash.New()
	s.HashBase(d)
	_, _ = d.WriteString(s.typ)
	return d.Sum64()
}

func (s *stubBuilder) String() string {
	return fmt.Sprintf("%s [name=%s]", s.typ, s.Name())
}

func (s *stubBuilder) Build(ctx *aggregations.BuildContext, parent aggregations.Factory) (aggregations.Factory, error) {
	f := &stubFactory{name: s.Name(), typ: s.typ}
	for _, sub := range s.SubAggregations() {
		child, err := sub.Build(ctx, f)
		if err != nil {
			return nil, err
		}
		f.children = append(f.children, child)
	}
	return f, nil
}

type stubFactory struct {
	name     string
	typ      string
	children []aggregations.Factory
}

func (f *stubFactory) Name() string { return f.name }
func (f *stubFactory) Type() string { return f.typ }

// fixedSeedSource returns the same seed on every draw.
type fixedSeedSource int32

func (s fixedSeedSource) Int31() int32 { return int32(s) }
