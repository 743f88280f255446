package randomsampler

import (
	"encoding/binary"
	"io"
	"math"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/DashaKrutsko/elasticsearch/pkg/aggregations"
)

const (
	fieldProbability = "probability"
	fieldSeed        = "seed"
)

// binarySize is the fixed wire size: an 8-byte IEEE-754 double followed by
// a 4-byte signed integer. The enclosing protocol envelope handles
// versioning and framing.
const binarySize = 12

// EncodeBinary writes the builder's probability and seed to w in the fixed
// two-field wire encoding.
func (b *Builder) EncodeBinary(w io.Writer) error {
	var buf [binarySize]byte
	binary.BigEndian.PutUint64(buf[0:8], math.Float64bits(b.probability))
	binary.BigEndian.PutUint32(buf[8:12], uint32(b.seed))
	_, err := w.Write(buf[:])
	return err
}

// DecodeBinary reads a builder from the fixed two-field wire encoding.
// The values round-trip bit-identically; the sending node already validated
// them, so no range check is reapplied here.
func DecodeBinary(name string, r io.Reader) (*Builder, error) {
	var buf [binarySize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, errors.Wrapf(err, "reading [%s] aggregation [%s]", TypeName, name)
	}
	b := New(name)
	b.probability = math.Float64frombits(binary.BigEndian.Uint64(buf[0:8]))
	b.seed = int32(binary.BigEndian.Uint32(buf[8:12]))
	return b, nil
}

// EncodeJSON writes the builder's document form to w: an object holding
// exactly the probability and seed fields. Name, metadata, and
// sub-aggregations are emitted by the enclosing tree-node serialization.
func (b *Builder) EncodeJSON(w io.Writer) error {
	s := jsoniter.ConfigFastest.BorrowStream(w)
	defer jsoniter.ConfigFastest.ReturnStream(s)

	s.WriteObjectStart()
	s.WriteObjectField(fieldProbability)
	s.WriteFloat64(b.probability)
	s.WriteMore()
	s.WriteObjectField(fieldSeed)
	s.WriteInt32(b.seed)
	s.WriteObjectEnd()

	if s.Error != nil {
		return s.Error
	}
	return s.Flush()
}

// DecodeJSON parses the document form of a random sampler aggregation.
// The seed field is optional: when absent, the builder keeps the default
// seed drawn at construction time.
func DecodeJSON(name string, data []byte) (*Builder, error) {
	b := New(name)

	iter := jsoniter.ParseBytes(jsoniter.ConfigFastest, data)
	for field := iter.ReadObject(); field != ""; field = iter.ReadObject() {
		switch field {
		case fieldProbability:
			if err := b.SetProbability(iter.ReadFloat64()); err != nil {
				return nil, err
			}
		case fieldSeed:
			b.SetSeed(iter.ReadInt32())
		default:
			return nil, aggregations.InvalidArgumentf("[%s] aggregation [%s] does not recognize field [%s]", TypeName, name, field)
		}
		if iter.Error != nil && iter.Error != io.EOF {
			break
		}
	}
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, errors.Wrapf(iter.Error, "parsing [%s] aggregation [%s]", TypeName, name)
	}
	return b, nil
}
