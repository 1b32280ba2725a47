package random

import (
	"crypto/cipher"
	"math/big"

	"go.dedis.ch/kyber/v4/suites"
	krandom "go.dedis.ch/kyber/v4/util/random"
)

// float64 has 53 bits of mantissa, so drawing an integer in [0, 2^53) and
// scaling it keeps every value exactly representable.
var mantissa = new(big.Int).Lsh(big.NewInt(1), 53)

// streamSource draws from a cipher.Stream, e.g. one of kyber's random streams.
type streamSource struct {
	stream cipher.Stream
}

// NewStream returns a Source that reads its randomness from stream.
func NewStream(stream cipher.Stream) Source {
	return streamSource{stream: stream}
}

// NewCrypto returns a Source backed by the random stream of the Ed25519 suite.
func NewCrypto() Source {
	return NewStream(suites.MustFind("Ed25519").RandomStream())
}

func (s streamSource) Float64() float64 {
	n := krandom.Int(mantissa, s.stream)
	return float64(n.Uint64()) / (1 << 53)
}
