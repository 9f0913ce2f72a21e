package cipher

import (
	"math/rand/v2"
	"sync"
)

type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

// NewRand wraps src so the returned generator can be shared between
// goroutines. Key generators take a *rand.Rand so tests can pass a seeded one.
func NewRand(src rand.Source) *rand.Rand {
	return rand.New(&lockedSource{src: src})
}
