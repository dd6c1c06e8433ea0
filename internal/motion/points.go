// Package motion holds the per-frame kinematic payloads the avatar consumes:
// point sets, surface parts with fixed connectivity, and rigid transforms.
// Payloads are produced elsewhere (model loading and kinematics are out of scope);
// this package only carries, slices, and validates them.
package motion

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec3 is a 3D coordinate. Payloads use plain float32 triplets; conversion to
// renderer types happens at the scene boundary.
type Vec3 [3]float32

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]} }

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]} }

// Scale returns v scaled by s.
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v[0] * s, v[1] * s, v[2] * s} }

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Normalized returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vec3) Normalized() Vec3 {
	n := v.Length()
	if n == 0 {
		return v
	}
	return v.Scale(1 / n)
}

// FrameCountError reports a payload that does not span exactly one time sample.
type FrameCountError struct {
	Samples int
}

func (e *FrameCountError) Error() string {
	return fmt.Sprintf("motion: payload spans %d time samples, want exactly 1", e.Samples)
}

// Points is a time series of 3D points, one point per channel. A channel is a
// stable named slot (a marker, a mesh vertex, a muscle via point); the channel
// count is the payload's arity and decides whether the avatar can update actors
// in place or must rebuild them.
type Points struct {
	Labels  []string // optional channel names; may be nil
	Samples [][]Vec3 // Samples[t][c] is the point of channel c at time sample t
}

// NewPoints returns a payload over the given samples. Labels may be nil.
func NewPoints(labels []string, samples ...[]Vec3) *Points {
	return &Points{Labels: labels, Samples: samples}
}

// SampleCount returns the number of time samples in the payload.
func (p *Points) SampleCount() int {
	if p == nil {
		return 0
	}
	return len(p.Samples)
}

// ChannelCount returns the payload's arity (0 when empty).
func (p *Points) ChannelCount() int {
	if p == nil || len(p.Samples) == 0 {
		return 0
	}
	return len(p.Samples[0])
}

// Single returns the payload's only time sample. It fails with a
// FrameCountError when the payload spans zero or several samples.
func (p *Points) Single() ([]Vec3, error) {
	if p == nil || len(p.Samples) != 1 {
		return nil, &FrameCountError{Samples: p.SampleCount()}
	}
	return p.Samples[0], nil
}
