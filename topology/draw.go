package topology

import (
	"fmt"
	"os"
	"time"

	"dnnkit/display"
	"dnnkit/utils"
)

type drawConfig struct {
	output string
	size   Size
	viewer display.Viewer
	stats  *utils.TimingStats
}

// Option configures DrawDNN.
type Option func(*drawConfig)

// WithOutput keeps the rendered figure at path instead of a temporary file.
func WithOutput(path string) Option {
	return func(c *drawConfig) { c.output = path }
}

// WithSize sets the figure size in inches.
func WithSize(s Size) Option {
	return func(c *drawConfig) { c.size = s }
}

// WithViewer replaces the system viewer.
func WithViewer(v display.Viewer) Option {
	return func(c *drawConfig) { c.viewer = v }
}

// WithTiming records layout, render and display durations into stats.
func WithTiming(stats *utils.TimingStats) Option {
	return func(c *drawConfig) { c.stats = stats }
}

// DrawDNN lays out layers, renders the diagram and shows it, blocking until
// the viewer returns. Without WithOutput the figure goes to a temporary PNG.
// The temporary file is removed afterwards only if the viewer blocks.
// A detached viewer may still be opening it, so it is kept and its path
// logged.
func DrawDNN(layers []int, opts ...Option) error {
	cfg := drawConfig{
		size:   DefaultSize,
		viewer: display.SystemViewer{},
		stats:  &utils.TimingStats{},
	}
	for _, o := range opts {
		o(&cfg)
	}

	start := time.Now()
	d := Layout(layers)
	cfg.stats.LayoutTime = time.Since(start)
	if len(d.Neurons) == 0 {
		return ErrEmptyDiagram
	}
	utils.Logf("Laid out %d neurons and %d connections", len(d.Neurons), len(d.Edges))

	path, temp := cfg.output, false
	if path == "" {
		f, err := os.CreateTemp("", "dnn-*.png")
		if err != nil {
			return fmt.Errorf("failed to create figure file: %w", err)
		}
		path, temp = f.Name(), true
		f.Close()
	}

	start = time.Now()
	if err := Save(d, path, cfg.size); err != nil {
		if temp {
			os.Remove(path)
		}
		return err
	}
	cfg.stats.RenderTime = time.Since(start)
	utils.Logf("Rendered %s", path)

	start = time.Now()
	err := cfg.viewer.Show(path)
	cfg.stats.DisplayTime = time.Since(start)
	if temp {
		if display.Blocks(cfg.viewer) {
			os.Remove(path)
		} else {
			utils.Logf("Figure kept at %s", path)
		}
	}
	return err
}
