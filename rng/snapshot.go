package rng

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"dnnkit/accel"
)

// Sample holds the next few outputs of each seeded source.
type Sample struct {
	General []float64
	Numeric []float64
	Devices map[string][]byte
}

// Snapshot draws n values from every source. It consumes randomness, so two
// snapshots taken after the same SetRandomSeed call only match if nothing
// else drew in between.
func Snapshot(n int) (Sample, error) {
	if n < 0 {
		return Sample{}, fmt.Errorf("snapshot size must be non-negative, got %d", n)
	}
	s := Sample{
		General: make([]float64, n),
		Numeric: make([]float64, n),
		Devices: make(map[string][]byte),
	}
	for i := range s.General {
		s.General[i] = rand.Float64()
	}
	// A nil Src makes distuv draw from the golang.org/x/exp/rand global source.
	norm := distuv.Normal{Mu: 0, Sigma: 1}
	for i := range s.Numeric {
		s.Numeric[i] = norm.Rand()
	}
	for _, dev := range accel.Devices() {
		buf := make([]byte, n)
		if _, err := dev.Read(buf); err != nil {
			return Sample{}, fmt.Errorf("read %s: %w", dev.Name(), err)
		}
		s.Devices[dev.Name()] = buf
	}
	return s, nil
}
