package generator

import (
	"math"
	"sync"
)

// Source is the randomness the generator consumes. *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a value in [0, n). n > 0.
	Intn(n int) int
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// LockedSource makes a Source safe to share between goroutines.
type LockedSource struct {
	mu  sync.Mutex
	src Source
}

func NewLockedSource(src Source) *LockedSource { return &LockedSource{src: src} }

func (l *LockedSource) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Intn(n)
}

func (l *LockedSource) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}

// decayRate spreads exp(-x) over x in [0, 3] across the sampled range.
const decayRate = 3.0

// weights returns the unnormalised exponential-decay weights for n values
// and their sum. n >= 2.
func weights(n int) ([]float64, float64) {
	w := make([]float64, n)
	sum := 0.0
	for i := range w {
		w[i] = math.Exp(-decayRate * float64(i) / float64(n-1))
		sum += w[i]
	}
	return w, sum
}

// weightedChoice draws from [low, high] with mass decaying toward high.
// A single-value range returns low without touching src.
func weightedChoice(src Source, low, high int) int {
	n := high - low + 1
	if n <= 1 {
		return low
	}
	w, sum := weights(n)
	u := src.Float64() * sum
	for i, wi := range w {
		u -= wi
		if u < 0 {
			return low + i
		}
	}
	// rounding can leave a sliver past the last bucket
	return high
}

