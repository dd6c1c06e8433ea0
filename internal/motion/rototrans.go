package motion

import "github.com/chewxy/math32"

// Transform is a homogeneous rigid transform, row-major: Transform[row][col].
// Column 3 holds the translation; columns 0..2 are the rotated basis vectors,
// unit length for a proper rotation.
type Transform [4][4]float32

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translate returns a pure translation by v.
func Translate(v Vec3) Transform {
	t := Identity()
	t[0][3], t[1][3], t[2][3] = v[0], v[1], v[2]
	return t
}

// RotationX returns a rotation of angle radians about the X axis.
func RotationX(angle float32) Transform {
	s, c := math32.Sincos(angle)
	t := Identity()
	t[1][1], t[1][2] = c, -s
	t[2][1], t[2][2] = s, c
	return t
}

// RotationY returns a rotation of angle radians about the Y axis.
func RotationY(angle float32) Transform {
	s, c := math32.Sincos(angle)
	t := Identity()
	t[0][0], t[0][2] = c, s
	t[2][0], t[2][2] = -s, c
	return t
}

// RotationZ returns a rotation of angle radians about the Z axis.
func RotationZ(angle float32) Transform {
	s, c := math32.Sincos(angle)
	t := Identity()
	t[0][0], t[0][1] = c, -s
	t[1][0], t[1][1] = s, c
	return t
}

// Mul returns t * o (apply o first, then t).
func (t Transform) Mul(o Transform) Transform {
	var r Transform
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += t[i][k] * o[k][j]
			}
			r[i][j] = sum
		}
	}
	return r
}

// Translation returns the transform's origin.
func (t Transform) Translation() Vec3 {
	return Vec3{t[0][3], t[1][3], t[2][3]}
}

// Basis returns the rotated basis column (0=X, 1=Y, 2=Z).
func (t Transform) Basis(col int) Vec3 {
	return Vec3{t[0][col], t[1][col], t[2][col]}
}

// RotoTrans is a time series of rigid transforms for one segment.
type RotoTrans struct {
	Name    string
	Samples []Transform
}

// NewRotoTrans returns a payload over the given transform samples.
func NewRotoTrans(name string, samples ...Transform) *RotoTrans {
	return &RotoTrans{Name: name, Samples: samples}
}

// SampleCount returns the number of time samples in the payload.
func (r *RotoTrans) SampleCount() int {
	if r == nil {
		return 0
	}
	return len(r.Samples)
}

// Single returns the payload's only transform. It fails with a
// FrameCountError when the payload spans zero or several samples.
func (r *RotoTrans) Single() (Transform, error) {
	if r == nil || len(r.Samples) != 1 {
		return Transform{}, &FrameCountError{Samples: r.SampleCount()}
	}
	return r.Samples[0], nil
}
