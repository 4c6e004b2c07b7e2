// dnn-seed: seeds every random source and prints the first draws of each,
// so two runs can be compared for reproducibility.
//
// Usage:
//
//	dnn-seed --seed=42 --n=4 --he-devices=2
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"sort"

	"dnnkit/accel"
	"dnnkit/rng"
)

var (
	seed    = flag.Int64("seed", 42, "Random seed")
	n       = flag.Int("n", 4, "Values to draw from each source")
	devices = flag.Int("he-devices", 1, "Number of HE accelerator devices to seed")
)

func main() {
	flag.Parse()

	for i := 0; i < *devices; i++ {
		dev, err := accel.NewHEDevice(fmt.Sprintf("he:%d", i))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := accel.Register(dev); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	rng.SetRandomSeed(*seed)
	s, err := rng.Snapshot(*n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("seed:          %d\n", *seed)
	fmt.Printf("deterministic: %v\n", accel.Deterministic())
	fmt.Printf("general:       %.6f\n", s.General)
	fmt.Printf("numeric:       %.6f\n", s.Numeric)
	names := make([]string, 0, len(s.Devices))
	for name := range s.Devices {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%-14s %s\n", name+":", hex.EncodeToString(s.Devices[name]))
	}
}
