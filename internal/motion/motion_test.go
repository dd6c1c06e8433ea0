package motion

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointsSingle(t *testing.T) {
	one := NewPoints(nil, []Vec3{{1, 2, 3}, {4, 5, 6}})
	pts, err := one.Single()
	require.NoError(t, err)
	assert.Equal(t, []Vec3{{1, 2, 3}, {4, 5, 6}}, pts)
	assert.Equal(t, 2, one.ChannelCount())

	two := NewPoints(nil, []Vec3{{1, 2, 3}}, []Vec3{{4, 5, 6}})
	_, err = two.Single()
	var fce *FrameCountError
	require.True(t, errors.As(err, &fce))
	assert.Equal(t, 2, fce.Samples)

	empty := NewPoints(nil)
	_, err = empty.Single()
	require.True(t, errors.As(err, &fce))
	assert.Equal(t, 0, fce.Samples)
	assert.Equal(t, 0, empty.ChannelCount())
}

func TestSurfaceOutline(t *testing.T) {
	tests := []struct {
		name    string
		tris    [][3]int32
		outline bool
	}{
		{"no triples", nil, true},
		{"single triple", [][3]int32{{0, 1, 2}}, true},
		{"constant first index", [][3]int32{{0, 1, 2}, {0, 2, 3}, {0, 3, 4}}, true},
		{"varied first index", [][3]int32{{0, 1, 2}, {1, 2, 3}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Surface{Triangles: tt.tris}
			assert.Equal(t, tt.outline, s.Outline())
		})
	}
}

func TestSurfaceValidate(t *testing.T) {
	pts := NewPoints(nil, []Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	ok := &Surface{Name: "ok", Points: pts, Triangles: [][3]int32{{0, 1, 2}}}
	assert.NoError(t, ok.Validate())

	bad := &Surface{Name: "bad", Points: pts, Triangles: [][3]int32{{0, 1, 3}}}
	assert.Error(t, bad.Validate())

	neg := &Surface{Name: "neg", Points: pts, Triangles: [][3]int32{{-1, 1, 2}}}
	assert.Error(t, neg.Validate())
}

func TestTransform(t *testing.T) {
	tr := Translate(Vec3{1, 2, 3})
	assert.Equal(t, Vec3{1, 2, 3}, tr.Translation())
	assert.Equal(t, Vec3{1, 0, 0}, tr.Basis(0))

	rz := RotationZ(math32.Pi / 2)
	x := rz.Basis(0)
	assert.InDelta(t, 0, float64(x[0]), 1e-6)
	assert.InDelta(t, 1, float64(x[1]), 1e-6)
	assert.InDelta(t, 0, float64(x[2]), 1e-6)

	combined := Translate(Vec3{1, 0, 0}).Mul(RotationZ(math32.Pi / 2))
	assert.Equal(t, Vec3{1, 0, 0}, combined.Translation())
}

func TestRotoTransSingle(t *testing.T) {
	rt := NewRotoTrans("seg", Identity())
	tr, err := rt.Single()
	require.NoError(t, err)
	assert.Equal(t, Identity(), tr)

	multi := NewRotoTrans("seg", Identity(), Identity())
	_, err = multi.Single()
	var fce *FrameCountError
	require.True(t, errors.As(err, &fce))
	assert.Equal(t, 2, fce.Samples)
}

func TestVec3Helpers(t *testing.T) {
	v := Vec3{3, 4, 0}
	assert.InDelta(t, 5, float64(v.Length()), 1e-6)
	assert.InDelta(t, 1, float64(v.Normalized().Length()), 1e-6)
	assert.Equal(t, Vec3{}, Vec3{}.Normalized())
	assert.Equal(t, Vec3{4, 6, 1}, v.Add(Vec3{1, 2, 1}))
	assert.Equal(t, Vec3{6, 8, 0}, v.Scale(2))
}
