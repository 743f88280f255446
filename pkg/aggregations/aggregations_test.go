package aggregations

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// fakeAgg is a minimal Builder implementation used to assemble test trees.
type fakeAgg struct {
	BaseBuilder

	typ       string
	samplable bool
}

var _ Builder = (*fakeAgg)(nil)

func newFakeAgg(typ, name string, subs ...Builder) *fakeAgg {
	f := &fakeAgg{BaseBuilder: NewBaseBuilder(name), typ: typ, samplable: true}
	f.SetSubAggregations(subs)
	return f
}

func (f *fakeAgg) Type() string                         { return f.typ }
func (f *fakeAgg) BucketCardinality() BucketCardinality { return CardinalityMany }
func (f *fakeAgg) SupportsSampling() bool               { return f.samplable }

func (f *fakeAgg) Equal(other Builder) bool {
	o, ok := other.(*fakeAgg)
	if !ok {
		return false
	}
	return f.EqualBase(&o.BaseBuilder) && f.typ == o.typ
}

func (f *fakeAgg) Hash() uint64 {
	d := xxhash.New()
	f.HashBase(d)
	_, _ = d.WriteString(f.typ)
	return d.Sum64()
}

func (f *fakeAgg) String() string { return fmt.Sprintf("%s [name=%s]", f.typ, f.Name()) }

func (f *fakeAgg) Build(ctx *BuildContext, parent Factory) (Factory, error) {
	return nil, nil
}
