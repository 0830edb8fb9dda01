// Package random isolates every "pick one of N" and "probability p" decision
// behind one injectable source so replies can be reproduced in tests.
package random

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source is the randomness used by response assembly.
type Source interface {
	// Intn returns a value in [0, n). n must be > 0.
	Intn(n int) int
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// Rand is a goroutine-safe seeded Source.
type Rand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New returns a Source seeded with seed. A zero seed uses the clock.
func New(seed uint64) *Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *Rand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.IntN(n)
}

func (r *Rand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.Float64()
}

// Pick returns one element of items chosen by src, or the zero value when empty.
func Pick[T any](src Source, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[src.Intn(len(items))]
}

// Sequence replays scripted values. Intn returns the next int modulo n and
// Float64 the next float; exhausted queues repeat their last value, and an
// empty queue yields 0.
type Sequence struct {
	mu     sync.Mutex
	Ints   []int
	Floats []float64
}

func (s *Sequence) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[0]
	if len(s.Ints) > 1 {
		s.Ints = s.Ints[1:]
	}
	if v < 0 {
		v = -v
	}
	return v % n
}

func (s *Sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[0]
	if len(s.Floats) > 1 {
		s.Floats = s.Floats[1:]
	}
	return v
}

// Fixed returns a Sequence that always yields i and f.
func Fixed(i int, f float64) *Sequence {
	return &Sequence{Ints: []int{i}, Floats: []float64{f}}
}
