package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Actor is one renderable object owned by the scene. Exactly one geometry kind
// is set at a time; Draw skips kinds that are nil. Geometry is plain data so
// the avatar layer can mutate it without touching GPU state; GPU work happens
// only inside Scene.Draw.
type Actor struct {
	Sphere  *Sphere
	Lines   *LineSet
	Surface *TriangleSet
}

// Sphere is a solid sphere of a given radius, used for markers, contact points,
// and centers of mass.
type Sphere struct {
	Center rl.Vector3
	Radius float32
	Color  rl.Color
}

// LineSet is a set of straight segments over a shared point list. Segments index
// into Points. Colors holds one color per segment when per-segment coloring is
// wanted (coordinate frame axes); otherwise Color applies to all segments.
type LineSet struct {
	Points   []rl.Vector3
	Segments [][2]int32
	Color    rl.Color
	Colors   []rl.Color // optional, len == len(Segments)
	Width    float32    // 1 draws plain lines; larger values draw thin cylinders
}

// TriangleSet is a filled triangulated surface over a shared point list.
// Triangles index into Points.
type TriangleSet struct {
	Points    []rl.Vector3
	Triangles [][3]int32
	Color     rl.Color
}

// Color01 converts a 0..1 RGB triplet and opacity into a raylib color.
func Color01(rgb [3]float32, opacity float32) rl.Color {
	return rl.NewColor(
		uint8(clamp01(rgb[0])*255),
		uint8(clamp01(rgb[1])*255),
		uint8(clamp01(rgb[2])*255),
		uint8(clamp01(opacity)*255),
	)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
