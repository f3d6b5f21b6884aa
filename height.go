package rope

import (
	"github.com/dedis/kyber/random"
)

// HeightSource draws a node height in [1, max] from a geometric
// distribution with P(h >= k+1) ~= 1/2 * P(h >= k). It is a pluggable
// dependency: the default implementation below draws real entropy, while
// tests substitute a deterministic source so that two ropes built from the
// same edit sequence produce byte-identical structure.
type HeightSource interface {
	Height(max int) int
}

// cryptoHeightSource draws a height by counting the leading one-bits of a
// uniform random word: h = 1 + (number of leading 1-bits), capped at max.
// The entropy comes from kyber's default random stream rather than
// math/rand, the same technique drand's skip-list height selection uses.
type cryptoHeightSource struct{}

// DefaultHeightSource is the HeightSource used by New when no WithHeightSource
// option is supplied.
var DefaultHeightSource HeightSource = cryptoHeightSource{}

func (cryptoHeightSource) Height(max int) int {
	if max < 1 {
		max = 1
	}
	v := random.Uint32(random.Stream)
	h := 1
	for h < max && v&0x80000000 != 0 {
		h++
		v <<= 1
	}
	return h
}

// FixedHeightSource always returns the same height (clamped to max),
// useful for tests that want every node to participate in exactly one
// level, e.g. to exercise the plain linked-list case of the locator.
type FixedHeightSource int

func (f FixedHeightSource) Height(max int) int {
	h := int(f)
	if h < 1 {
		h = 1
	}
	if h > max {
		h = max
	}
	return h
}

// SequenceHeightSource cycles through a fixed sequence of heights, clamped
// to max, letting tests pin the exact shape of a skip list built from a
// known sequence of inserts without depending on real randomness.
type SequenceHeightSource struct {
	heights []int
	pos     int
}

// NewSequenceHeightSource builds a SequenceHeightSource that replays heights
// in order, wrapping around once exhausted.
func NewSequenceHeightSource(heights ...int) *SequenceHeightSource {
	if len(heights) == 0 {
		heights = []int{1}
	}
	return &SequenceHeightSource{heights: heights}
}

func (s *SequenceHeightSource) Height(max int) int {
	h := s.heights[s.pos%len(s.heights)]
	s.pos++
	if h < 1 {
		h = 1
	}
	if h > max {
		h = max
	}
	return h
}
