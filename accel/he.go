package accel

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/tuneinsight/lattigo/v5/utils/sampling"
)

// HEDevice is the homomorphic-encryption evaluator seen as an accelerator.
// Its stream is the keyed PRNG the evaluator samples encryption noise from.
type HEDevice struct {
	name string
	prng *sampling.KeyedPRNG
}

// NewHEDevice returns a device keyed with fresh entropy.
func NewHEDevice(name string) (*HEDevice, error) {
	prng, err := sampling.NewPRNG()
	if err != nil {
		return nil, fmt.Errorf("failed to create PRNG for %s: %w", name, err)
	}
	return &HEDevice{name: name, prng: prng}, nil
}

func (d *HEDevice) Name() string { return d.name }

// ManualSeed re-keys the PRNG from seed. Outside deterministic mode the key
// is salted with crypto/rand bytes, so the stream is not reproducible.
func (d *HEDevice) ManualSeed(seed int64) error {
	key, err := deviceKey(d.name, seed, !Deterministic())
	if err != nil {
		return err
	}
	prng, err := sampling.NewKeyedPRNG(key)
	if err != nil {
		return fmt.Errorf("failed to key PRNG for %s: %w", d.name, err)
	}
	d.prng = prng
	return nil
}

func (d *HEDevice) Read(p []byte) (int, error) {
	return d.prng.Read(p)
}

// deviceKey is the 8-byte little-endian seed followed by the device name,
// optionally followed by 16 salt bytes.
func deviceKey(name string, seed int64, salted bool) ([]byte, error) {
	key := make([]byte, 8, 8+len(name)+16)
	binary.LittleEndian.PutUint64(key, uint64(seed))
	key = append(key, name...)
	if salted {
		salt := make([]byte, 16)
		if _, err := rand.Read(salt); err != nil {
			return nil, fmt.Errorf("failed to read salt: %w", err)
		}
		key = append(key, salt...)
	}
	return key, nil
}
