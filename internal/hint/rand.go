package hint

import (
	"crypto/rand"
	"io"
	"math/big"
	mrand "math/rand"

	"github.com/rs/zerolog/log"
)

// Source yields uniform integers in [0, n).
type Source interface {
	Intn(n int) int
}

// cryptoSource draws from crypto/rand (or r when set). A failed read is
// logged and the draw falls back to math/rand.
type cryptoSource struct {
	r io.Reader
}

func (c cryptoSource) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	r := c.r
	if r == nil {
		r = rand.Reader
	}
	nBig, err := rand.Int(r, big.NewInt(int64(n)))
	if err != nil {
		log.Warn().Err(err).Msg("crypto/rand failed, using math/rand")
		return mrand.Intn(n)
	}
	return int(nBig.Int64())
}

// shuffled returns a random permutation of the indices [0, n).
func shuffled(src Source, n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx
}
