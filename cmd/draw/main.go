// dnn-draw: seeds every random source and draws a network topology
//
// Usage:
//
//	dnn-draw --layers="2 3 2" --seed=42 --out=dnn.png
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"dnnkit/accel"
	"dnnkit/display"
	"dnnkit/rng"
	"dnnkit/topology"
	"dnnkit/utils"
)

func main() {
	cfg, err := utils.LoadConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	layers := flag.String("layers", utils.FormatArchitecture(cfg.Architecture), "Neurons per layer, space separated")
	archFile := flag.String("arch-file", cfg.ArchFile, "JSON architecture file (overrides --layers)")
	saveArch := flag.String("save-arch", cfg.SaveArch, "Write the architecture to this JSON file")
	seed := flag.Int64("seed", cfg.Seed, "Random seed")
	output := flag.String("out", cfg.Output, "Output figure file (png, svg, pdf, ...); temporary if empty")
	width := flag.Float64("width", cfg.Width, "Figure width in inches")
	height := flag.Float64("height", cfg.Height, "Figure height in inches")
	show := flag.Bool("show", cfg.Show, "Open the figure in the system viewer")
	verbose := flag.Bool("verbose", cfg.Verbose, "Verbose output")
	devices := flag.Int("he-devices", 0, "Number of HE accelerator devices to seed")
	flag.Parse()

	cfg.Seed, cfg.Output, cfg.ArchFile, cfg.SaveArch = *seed, *output, *archFile, *saveArch
	cfg.Width, cfg.Height = *width, *height
	cfg.Show, cfg.Verbose = *show, *verbose
	utils.Verbose = cfg.Verbose

	if cfg.ArchFile != "" {
		cfg.Architecture, err = utils.LoadArchitecture(cfg.ArchFile)
	} else {
		cfg.Architecture, err = utils.ParseArchitecture(*layers)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := utils.ValidateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}
	if cfg.SaveArch != "" {
		if err := utils.SaveArchitecture(cfg.SaveArch, cfg.Architecture); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		utils.Logf("Saved architecture to %s", cfg.SaveArch)
	}

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

	utils.Logf("Architecture: %v", cfg.Architecture)
	utils.Logf("Seed:         %d", cfg.Seed)

	stats := &utils.TimingStats{}
	totalStart := time.Now()

	start := time.Now()
	rng.SetRandomSeed(cfg.Seed)
	stats.SeedTime = time.Since(start)

	var viewer display.Viewer = display.SystemViewer{}
	if !cfg.Show {
		viewer = display.NopViewer{}
	}
	err = topology.DrawDNN(cfg.Architecture,
		topology.WithOutput(cfg.Output),
		topology.WithSize(topology.Size{Width: cfg.Width, Height: cfg.Height}),
		topology.WithViewer(viewer),
		topology.WithTiming(stats),
	)
	stats.TotalTime = time.Since(totalStart)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	utils.PrintTimingStats(stats)
}
