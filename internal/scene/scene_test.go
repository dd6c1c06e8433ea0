package scene

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avatar-engine/internal/motion"
)

func TestActorBookkeeping(t *testing.T) {
	s := New()
	a := &Actor{Sphere: &Sphere{}}
	b := &Actor{Sphere: &Sphere{}}

	s.AddActor(a)
	s.AddActor(b)
	assert.Equal(t, 2, s.ActorCount())

	s.RemoveActor(a)
	assert.Equal(t, 1, s.ActorCount())

	// Removing an unknown actor is a no-op.
	s.RemoveActor(a)
	assert.Equal(t, 1, s.ActorCount())

	s.RemoveActor(b)
	assert.Equal(t, 0, s.ActorCount())
}

func TestBounds(t *testing.T) {
	s := New()
	s.AddActor(&Actor{Sphere: &Sphere{Center: rl.NewVector3(-1, 0, 0)}})
	s.AddActor(&Actor{Lines: &LineSet{Points: []rl.Vector3{
		rl.NewVector3(1, 0, 0),
		rl.NewVector3(1, 2, 0),
	}}})

	center, radius := s.bounds()
	assert.Equal(t, motion.Vec3{0, 1, 0}, center)
	assert.InDelta(t, motion.Vec3{2, 2, 0}.Length()/2, float64(radius), 1e-6)
}

func TestBoundsEmptyScene(t *testing.T) {
	s := New()
	center, radius := s.bounds()
	assert.Equal(t, motion.Vec3{}, center)
	assert.Equal(t, float32(0), radius)
}

func TestResetCameraFitsActors(t *testing.T) {
	s := New()
	s.AddActor(&Actor{Sphere: &Sphere{Center: rl.NewVector3(10, 0, 0)}})
	s.AddActor(&Actor{Sphere: &Sphere{Center: rl.NewVector3(12, 0, 0)}})

	s.RequestCameraReset()
	s.resetCamera()
	require.Equal(t, float32(11), s.Camera.Target.X)
	assert.Greater(t, s.Camera.Position.X, s.Camera.Target.X, "camera backs off along the view direction")
}

func TestColor01(t *testing.T) {
	c := Color01([3]float32{1, 0, 0.5}, 1)
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(0), c.G)
	assert.Equal(t, uint8(127), c.B)
	assert.Equal(t, uint8(255), c.A)

	clamped := Color01([3]float32{2, -1, 0}, -0.5)
	assert.Equal(t, uint8(255), clamped.R)
	assert.Equal(t, uint8(0), clamped.G)
	assert.Equal(t, uint8(0), clamped.A)
}
