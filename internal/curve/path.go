// Package curve provides the piecewise-linear 3D paths the scroll camera
// travels along.
//
// A Path is parameterized by normalized arc length: PointAt(u) returns the
// point at fraction u of the total physical length, so equal steps in u move
// the same distance whichever segment they fall on.
package curve

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrTooFewPoints is returned when a path is built from fewer than two points.
var ErrTooFewPoints = errors.New("curve: a path needs at least two points")

// Path is a chain of straight segments through a list of anchor points.
type Path struct {
	points  []mgl64.Vec3
	lengths []float64 // per-segment length
	total   float64
}

// NewPath creates a path through the given anchors, in order.
func NewPath(points ...mgl64.Vec3) (*Path, error) {
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}
	p := &Path{
		points:  append([]mgl64.Vec3(nil), points...),
		lengths: make([]float64, len(points)-1),
	}
	for i := range p.lengths {
		p.lengths[i] = points[i+1].Sub(points[i]).Len()
		p.total += p.lengths[i]
	}
	return p, nil
}

// MustPath is like NewPath but panics on error.
// Intended for package-level anchor tables.
func MustPath(points ...mgl64.Vec3) *Path {
	p, err := NewPath(points...)
	if err != nil {
		panic(err)
	}
	return p
}

// Length returns the total arc length.
func (p *Path) Length() float64 { return p.total }

// Segments returns the number of segments.
func (p *Path) Segments() int { return len(p.lengths) }

// Joint returns the arc-length parameter of the joint that ends segment i,
// i.e. (L0 + ... + Li) / total. For a two-segment path Joint(0) is the
// split point L0 / (L0 + L1).
// A zero-length path reports its joints evenly spaced.
func (p *Path) Joint(i int) float64 {
	if p.total <= 0 {
		return float64(i+1) / float64(len(p.lengths))
	}
	var acc float64
	for k := 0; k <= i && k < len(p.lengths); k++ {
		acc += p.lengths[k]
	}
	return acc / p.total
}

// Split returns the arc-length parameter of the first joint.
func (p *Path) Split() float64 { return p.Joint(0) }

// PointAt returns the point at normalized arc length u. u is clamped to [0, 1].
func (p *Path) PointAt(u float64) mgl64.Vec3 {
	if u <= 0 || p.total <= 0 {
		return p.points[0]
	}
	if u >= 1 {
		return p.points[len(p.points)-1]
	}

	d := u * p.total
	for i, l := range p.lengths {
		if d <= l || i == len(p.lengths)-1 {
			if l <= 0 {
				return p.points[i+1]
			}
			t := d / l
			if t > 1 {
				t = 1
			}
			a, b := p.points[i], p.points[i+1]
			return a.Add(b.Sub(a).Mul(t))
		}
		d -= l
	}
	return p.points[len(p.points)-1]
}
