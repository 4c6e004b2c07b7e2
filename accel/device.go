package accel

import (
	"errors"
	"fmt"
	"sync"
)

// Device is a random source living on an accelerator.
type Device interface {
	Name() string
	// ManualSeed re-initializes the device generator from seed.
	ManualSeed(seed int64) error
	// Read fills p with the next bytes of the device stream.
	Read(p []byte) (int, error)
}

// ErrDuplicateDevice is returned when a device name is already registered.
var ErrDuplicateDevice = errors.New("accel: device already registered")

var (
	mu            sync.Mutex
	devices       []Device
	deterministic bool
)

// Register adds a device to the registry. The first registered device
// becomes the default one. Names must be unique.
func Register(d Device) error {
	mu.Lock()
	defer mu.Unlock()
	for _, old := range devices {
		if old.Name() == d.Name() {
			return fmt.Errorf("%w: %s", ErrDuplicateDevice, d.Name())
		}
	}
	devices = append(devices, d)
	return nil
}

// Devices returns every registered device in registration order.
func Devices() []Device {
	mu.Lock()
	defer mu.Unlock()
	return append([]Device(nil), devices...)
}

// Default returns the default device, or false if no accelerator is present.
func Default() (Device, bool) {
	mu.Lock()
	defer mu.Unlock()
	if len(devices) == 0 {
		return nil, false
	}
	return devices[0], true
}

// SetDeterministic switches devices between the reproducible path and the
// fastest path.
func SetDeterministic(on bool) {
	mu.Lock()
	deterministic = on
	mu.Unlock()
}

// Deterministic reports whether deterministic mode is on.
func Deterministic() bool {
	mu.Lock()
	defer mu.Unlock()
	return deterministic
}

// Reset drops all devices and turns deterministic mode off.
func Reset() {
	mu.Lock()
	devices = nil
	deterministic = false
	mu.Unlock()
}
