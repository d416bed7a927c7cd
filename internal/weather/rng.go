package weather

import (
	"math"
	"math/rand/v2"
)

// RNG returns the next float in [0,1) on each call.
type RNG func() float64

// NewRNG returns a mulberry32 stream. The same seed always yields the same
// sequence; neighbouring seeds diverge from the first draw.
func NewRNG(seed uint32) RNG {
	state := seed
	return func() float64 {
		state += 0x6D2B79F5
		t := state
		t = (t ^ (t >> 15)) * (t | 1)
		t ^= t + (t^(t>>7))*(t|61)
		return float64(t^(t>>14)) / 4294967296
	}
}

// RandomRNG is a non-reproducible stream for one-off calls.
func RandomRNG() RNG {
	// Non-cryptographic PRNG is intentional; callers wanting reproducibility pass a seed.
	// #nosec G404
	return rand.Float64
}

// DateSeed encodes a calendar date as year*10000 + month*100 + day so a
// forecast for the same date is always reproducible.
func DateSeed(year, month, day int) uint32 {
	return uint32(year*10000 + month*100 + day)
}

func orRandom(rng RNG) RNG {
	if rng == nil {
		return RandomRNG()
	}
	return rng
}

// roundHalfUp rounds .5 towards positive infinity so negative temperatures
// round the same way positive ones do.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

func clampFloat(v, minV, maxV float64) float64 {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
