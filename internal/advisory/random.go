package advisory

import (
	"math/rand"
	"sync"
	"time"
)

// Shuffler supplies random permutations for tip sampling
type Shuffler interface {
	Perm(n int) []int
}

type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewShuffler returns a goroutine-safe Shuffler seeded with seed
func NewShuffler(seed int64) Shuffler {
	return &lockedRand{rng: rand.New(rand.NewSource(seed))}
}

// NewTimeSeededShuffler returns a Shuffler whose output differs between runs
func NewTimeSeededShuffler() Shuffler {
	return NewShuffler(time.Now().UnixNano())
}

func (r *lockedRand) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Perm(n)
}

// sample returns up to n distinct items in random order
func sample(s Shuffler, items []string, n int) []string {
	if n > len(items) {
		n = len(items)
	}
	out := make([]string, 0, n)
	for _, i := range s.Perm(len(items))[:n] {
		out = append(out, items[i])
	}
	return out
}
