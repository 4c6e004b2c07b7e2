package topology

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrEmptyDiagram is returned when there is nothing to draw.
var ErrEmptyDiagram = errors.New("topology: diagram has no neurons")

// markerRadius matches a 500pt² scatter marker.
var markerRadius = vg.Points(math.Sqrt(500) / 2)

// Plot builds the figure for d: black connections under coloured markers,
// right-aligned role labels, no axes.
func Plot(d *Diagram) (*plot.Plot, error) {
	if len(d.Neurons) == 0 {
		return nil, ErrEmptyDiagram
	}

	p := plot.New()
	p.HideAxes()

	for _, e := range d.Edges {
		l, err := plotter.NewLine(plotter.XYs{{X: e.From.X, Y: e.From.Y}, {X: e.To.X, Y: e.To.Y}})
		if err != nil {
			return nil, fmt.Errorf("edge %v-%v: %w", e.From, e.To, err)
		}
		l.LineStyle.Color = color.Black
		p.Add(l)
	}

	xys := make(plotter.XYs, len(d.Neurons))
	labels := make([]string, len(d.Neurons))
	for i, n := range d.Neurons {
		xys[i].X, xys[i].Y = n.X, n.Y
		labels[i] = n.Label
	}

	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("neurons: %w", err)
	}
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{
			Color:  plotutil.Color(i),
			Radius: markerRadius,
			Shape:  draw.CircleGlyph{},
		}
	}

	lb, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, fmt.Errorf("labels: %w", err)
	}
	for i := range lb.TextStyle {
		lb.TextStyle[i].Color = color.Black
		lb.TextStyle[i].XAlign = text.XRight
		lb.TextStyle[i].YAlign = text.YCenter
	}

	p.Add(s, lb)
	return p, nil
}

// Size is the figure size in inches.
type Size struct {
	Width, Height float64
}

// DefaultSize matches the default matplotlib figure.
var DefaultSize = Size{Width: 6.4, Height: 4.8}

// Save renders d to path. The format follows the extension
// (png, svg, pdf, eps, jpg, tif).
func Save(d *Diagram, path string, size Size) error {
	p, err := Plot(d)
	if err != nil {
		return err
	}
	if err := p.Save(vg.Length(size.Width)*vg.Inch, vg.Length(size.Height)*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save diagram: %w", err)
	}
	return nil
}
