// Package topology lays out and draws the layer structure of a fully
// connected network: one column per layer, one dot per neuron and a line
// between every pair of neurons in adjacent layers.
package topology

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Point is a position in data coordinates.
type Point struct {
	X, Y float64
}

// Neuron is one marker of the diagram.
type Neuron struct {
	Layer, Index int
	Point
	Label string
}

// Edge connects a neuron of layer i to a neuron of layer i+1.
type Edge struct {
	From, To Point
}

// Diagram is the laid-out network. It is rebuilt on every call and never
// cached.
type Diagram struct {
	Layers  []int
	Neurons []Neuron
	Edges   []Edge
}

// YOffset centres a column of count neurons around zero.
func YOffset(count int) float64 {
	return -float64(count)/2.0 + 0.5
}

// LayerLabel names the role of layer i in a network of n layers. The first
// matching rule wins, so a single-layer network is labelled Input.
func LayerLabel(i, n int) string {
	switch {
	case i == 0:
		return "Input"
	case i == n-1:
		return "Output"
	default:
		return fmt.Sprintf("Hidden%d", i)
	}
}

// Layout places every neuron at (layer, j+YOffset(count)) and connects
// adjacent layers fully. Sizes are not validated: a zero or negative
// count yields an empty column.
func Layout(layers []int) *Diagram {
	d := &Diagram{Layers: append([]int(nil), layers...)}

	for i, count := range layers {
		off := YOffset(count)
		for j := 0; j < count; j++ {
			d.Neurons = append(d.Neurons, Neuron{
				Layer: i,
				Index: j,
				Point: Point{X: float64(i), Y: float64(j) + off},
				Label: LayerLabel(i, len(layers)),
			})
		}
	}

	for i := 0; i+1 < len(layers); i++ {
		srcOff, dstOff := YOffset(layers[i]), YOffset(layers[i+1])
		for j := 0; j < layers[i]; j++ {
			for k := 0; k < layers[i+1]; k++ {
				d.Edges = append(d.Edges, Edge{
					From: Point{X: float64(i), Y: float64(j) + srcOff},
					To:   Point{X: float64(i + 1), Y: float64(k) + dstOff},
				})
			}
		}
	}
	return d
}

// Connectivity returns the count_i x count_{i+1} connection mask between
// layer i and layer i+1, all ones for a fully connected network. It returns
// nil when i has no successor or either layer is empty.
func (d *Diagram) Connectivity(i int) *mat.Dense {
	if i < 0 || i+1 >= len(d.Layers) {
		return nil
	}
	r, c := d.Layers[i], d.Layers[i+1]
	if r <= 0 || c <= 0 {
		return nil
	}
	data := make([]float64, r*c)
	for k := range data {
		data[k] = 1
	}
	return mat.NewDense(r, c, data)
}

// EdgeCount is the number of connections implied by the layer sizes.
func (d *Diagram) EdgeCount() int {
	total := 0.0
	for i := 0; i+1 < len(d.Layers); i++ {
		if m := d.Connectivity(i); m != nil {
			total += mat.Sum(m)
		}
	}
	return int(total)
}

// LayerNeurons returns the neurons of layer i in index order.
func (d *Diagram) LayerNeurons(i int) []Neuron {
	var out []Neuron
	for _, n := range d.Neurons {
		if n.Layer == i {
			out = append(out, n)
		}
	}
	return out
}
