package randomsampler

import "math/rand"

// SeedSource produces default seeds for samplers whose caller did not
// configure one. It must be safe for concurrent use; *rand.Rand satisfies
// the interface but is only safe when not shared across goroutines.
type SeedSource interface {
	Int31() int32
}

// defaultSeedSource draws from the package-level math/rand source, which
// serializes access internally.
var defaultSeedSource SeedSource = globalSeedSource{}

type globalSeedSource struct{}

func (globalSeedSource) Int31() int32 { return rand.Int31() }
