package game

import (
	"math/rand"
	"sync"
	"time"
)

// Source yields uniform random ints. It sits behind an interface so tests
// can inject a seeded generator and get reproducible shuffles.
type Source interface {
	// Intn returns a uniform random int in [0, n). n must be > 0.
	Intn(n int) int
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

// NewSource returns a time-seeded Source safe for concurrent use.
func NewSource() Source {
	return &lockedSource{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededSource returns a deterministic Source for tests.
func NewSeededSource(seed int64) Source {
	return &lockedSource{r: rand.New(rand.NewSource(seed))}
}

// shuffle performs an in-place Fisher-Yates shuffle using src.
func shuffle[T any](items []T, src Source) {
	for i := len(items) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
