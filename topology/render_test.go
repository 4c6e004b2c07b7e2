package topology

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dnnkit/display"
	"dnnkit/utils"
)

func TestPlotDataRange(t *testing.T) {
	p, err := Plot(Layout([]int{2, 3, 2}))
	require.NoError(t, err)

	assert.Equal(t, 0.0, p.X.Min)
	assert.Equal(t, 2.0, p.X.Max)
	assert.Equal(t, -1.0, p.Y.Min)
	assert.Equal(t, 1.0, p.Y.Max)
}

func renderSVG(t *testing.T, layers []int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dnn.svg")
	require.NoError(t, Save(Layout(layers), path, DefaultSize))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestSaveSVGContents(t *testing.T) {
	svg := renderSVG(t, []int{2, 3, 2})

	// axes are hidden, so the only text is one label per neuron
	assert.Equal(t, 7, strings.Count(svg, "<text"))
	assert.Equal(t, 2, strings.Count(svg, ">Input</text>"))
	assert.Equal(t, 3, strings.Count(svg, ">Hidden1</text>"))
	assert.Equal(t, 2, strings.Count(svg, ">Output</text>"))

	// stroked paths are the connections only, no axis lines or ticks
	assert.Equal(t, 12, strings.Count(svg, "fill:none"))
	// background + 7 markers + 12 connections
	assert.Equal(t, 20, strings.Count(svg, "<path d="))
}

func TestSaveSVGSingleLayer(t *testing.T) {
	svg := renderSVG(t, []int{4})

	assert.Equal(t, 4, strings.Count(svg, ">Input</text>"))
	assert.NotContains(t, svg, ">Output</text>")
	assert.Equal(t, 0, strings.Count(svg, "fill:none"))
	assert.Equal(t, 5, strings.Count(svg, "<path d="))
}

func TestPlotEmpty(t *testing.T) {
	_, err := Plot(Layout(nil))
	assert.ErrorIs(t, err, ErrEmptyDiagram)
}

func TestSaveFormats(t *testing.T) {
	dir := t.TempDir()
	d := Layout([]int{3, 4, 2})

	png := filepath.Join(dir, "dnn.png")
	require.NoError(t, Save(d, png, DefaultSize))
	data, err := os.ReadFile(png)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))

	svg := filepath.Join(dir, "dnn.svg")
	require.NoError(t, Save(d, svg, Size{Width: 3, Height: 2}))
	data, err = os.ReadFile(svg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestSaveUnknownFormat(t *testing.T) {
	err := Save(Layout([]int{1}), filepath.Join(t.TempDir(), "dnn.bmp"), DefaultSize)
	assert.Error(t, err)
}

func TestDrawDNNWithOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "dnn.png")
	rec := &display.Recorder{}
	stats := &utils.TimingStats{}

	err := DrawDNN([]int{2, 3, 2}, WithOutput(out), WithViewer(rec), WithTiming(stats))
	require.NoError(t, err)

	assert.Equal(t, []string{out}, rec.Paths)
	assert.FileExists(t, out)
	assert.Positive(t, int64(stats.RenderTime))
}

func TestDrawDNNTemporaryFileRemoved(t *testing.T) {
	rec := &display.Recorder{}

	require.NoError(t, DrawDNN([]int{4}, WithViewer(rec)))
	require.Len(t, rec.Paths, 1)
	assert.Equal(t, ".png", filepath.Ext(rec.Paths[0]))
	assert.NoFileExists(t, rec.Paths[0])
}

func TestDrawDNNEmpty(t *testing.T) {
	rec := &display.Recorder{}

	err := DrawDNN(nil, WithViewer(rec))
	assert.ErrorIs(t, err, ErrEmptyDiagram)
	assert.Empty(t, rec.Paths)
}

type failingViewer struct{}

func (failingViewer) Show(string) error { return errors.New("no display") }

func (failingViewer) Blocks() bool { return true }

// detachedViewer returns as soon as it has handed the path over, like
// xdg-open, and opens the file a little later.
type detachedViewer struct {
	path   string
	opened chan bool
}

func (v *detachedViewer) Show(path string) error {
	v.path = path
	go func() {
		time.Sleep(50 * time.Millisecond)
		_, err := os.Stat(path)
		v.opened <- err == nil
	}()
	return nil
}

func TestDrawDNNDetachedViewerKeepsFigure(t *testing.T) {
	v := &detachedViewer{opened: make(chan bool, 1)}

	require.NoError(t, DrawDNN([]int{2, 3, 2}, WithViewer(v)))
	require.NotEmpty(t, v.path)
	t.Cleanup(func() { os.Remove(v.path) })

	assert.True(t, <-v.opened, "figure must still exist when a detached viewer opens it")
	assert.FileExists(t, v.path)
}

func TestDrawDNNViewerError(t *testing.T) {
	err := DrawDNN([]int{1, 1}, WithViewer(failingViewer{}))
	assert.EqualError(t, err, "no display")
}
