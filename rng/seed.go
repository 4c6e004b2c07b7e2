// Package rng puts every random source of an experiment into a known state.
package rng

import (
	"math/rand"

	exprand "golang.org/x/exp/rand"

	"dnnkit/accel"
	"dnnkit/utils"
)

// SetRandomSeed seeds, in order: the default accelerator device, every
// accelerator device, the numeric generator used by gonum and the general
// math/rand generator. Deterministic mode is switched on first so the
// devices take the reproducible path.
//
// Devices are optional. With none registered the accelerator steps are
// skipped. A device that fails to seed is reported in verbose mode and
// the remaining sources are still seeded.
func SetRandomSeed(seed int64) {
	accel.SetDeterministic(true)
	if dev, ok := accel.Default(); ok {
		seedDevice(dev, seed)
	}
	for _, dev := range accel.Devices() {
		seedDevice(dev, seed)
	}

	exprand.Seed(uint64(seed))
	//lint:ignore SA1019 the global source is what experiment code draws from
	rand.Seed(seed)
}

func seedDevice(dev accel.Device, seed int64) {
	if err := dev.ManualSeed(seed); err != nil {
		utils.Logf("warning: seeding %s: %v", dev.Name(), err)
	}
}
