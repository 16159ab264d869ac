package geometry

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

var (
	randMu sync.Mutex
	rng    = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Seed resets the source used by RandomInt and the Randomize methods.
func Seed(seed int64) {
	randMu.Lock()
	defer randMu.Unlock()
	rng = rand.New(rand.NewSource(seed))
}

func uniform() float64 {
	randMu.Lock()
	defer randMu.Unlock()
	return rng.Float64()
}

// RandomInt returns a uniformly distributed integer in [min, max].
// The caller must ensure min <= max.
func RandomInt(min, max int) int {
	return int(math.Floor(uniform()*float64(max-min+1))) + min
}

// randomBetween draws floor(u*(max-min+1) + min), so integral bounds yield an
// integer in [min, max].
func randomBetween(min, max float64) float64 {
	return math.Floor(uniform()*(max-min+1) + min)
}
