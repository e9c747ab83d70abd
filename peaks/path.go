// SPDX-License-Identifier: EPL-2.0

package peaks

import (
	"math"
	"strconv"
	"strings"

	"github.com/ik5/soundedit/internal/config"
)

const (
	// Width of the drawing area the path is laid out for.
	Width = config.PathWidth
	// Height of the drawing area; the silhouette is centred on y = 0.
	Height = config.PathHeight
)

// Point is a vertex of the waveform outline.
type Point struct {
	X, Y float64
}

// Segment is a quadratic curve with its control point on a vertex and its end
// point halfway to the next vertex.
type Segment struct {
	Control Point
	End     Point
}

// Path is the closed, mirrored outline of a level sequence. It starts at the
// origin and every segment is a quadratic curve.
type Path struct {
	Width, Height float64
	Segments      []Segment
}

// Analyze lays levels out as a mirrored silhouette of width by height.
// At most one level per horizontal unit is kept: with N = ceil(len/width)
// only every Nth level is used. A single level is duplicated so the outline
// always has a top and a bottom edge.
func Analyze(levels []float64, width, height float64) Path {
	p := Path{Width: width, Height: height}
	if len(levels) == 0 || width <= 0 {
		return p
	}

	every := max(1, int(math.Ceil(float64(len(levels))/width)))

	kept := make([]float64, 0, len(levels)/every+2)
	for i, v := range levels {
		if i%every == 0 {
			kept = append(kept, v)
		}
	}
	if len(kept) == 1 {
		kept = append(kept, kept[0])
	}

	last := float64(len(kept) - 1)
	points := make([]Point, 0, 2*len(kept))
	for i, v := range kept {
		points = append(points, Point{X: width * (float64(i) / last), Y: height * v / 2})
	}
	for i := range kept {
		v := kept[len(kept)-1-i]
		points = append(points, Point{X: width * (1 - float64(i)/last), Y: -height * v / 2})
	}

	p.Segments = make([]Segment, len(points))
	for i, pt := range points {
		next := points[(i+1)%len(points)]
		p.Segments[i] = Segment{
			Control: pt,
			End:     Point{X: (pt.X + next.X) / 2, Y: (pt.Y + next.Y) / 2},
		}
	}

	return p
}

// AnalyzeSamples computes chunked levels of samples and lays them out on the
// default drawing area.
func AnalyzeSamples(samples []float32) Path {
	return Analyze(ComputeChunkedRMS(samples, config.ChunkSize), Width, Height)
}

// String renders the path as an SVG path "d" attribute.
func (p Path) String() string {
	var sb strings.Builder

	sb.WriteString("M0 0")
	for i, s := range p.Segments {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('Q')
		writeNum(&sb, s.Control.X)
		sb.WriteByte(' ')
		writeNum(&sb, s.Control.Y)
		sb.WriteByte(' ')
		writeNum(&sb, s.End.X)
		sb.WriteByte(' ')
		writeNum(&sb, s.End.Y)
	}
	sb.WriteByte('Z')

	return sb.String()
}

func writeNum(sb *strings.Builder, v float64) {
	sb.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
}
