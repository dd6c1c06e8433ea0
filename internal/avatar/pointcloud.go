package avatar

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"avatar-engine/internal/motion"
	"avatar-engine/internal/scene"
)

// pointUnit is one channel of a point category. A channel is always one point,
// so its arity is constant and only the channel count drives rebuilds.
type pointUnit struct {
	pos motion.Vec3
}

func (pointUnit) arity() int { return 1 }

// PointCloud renders one sphere per channel. Markers, contact points, the
// global center of mass, and per-segment centers of mass are all point clouds
// with different styles.
type PointCloud struct {
	set   renderSet[pointUnit]
	style Style
	last  *motion.Points
}

func newPointCloud(name string, st Stage, style Style) *PointCloud {
	c := &PointCloud{style: style}
	c.set = renderSet[pointUnit]{
		name:  name,
		stage: st,
		build: func(pointUnit) *scene.Actor {
			// Placeholder geometry; the place pass that ends the rebuild fills it in.
			return &scene.Actor{Sphere: &scene.Sphere{}}
		},
		place: func(u pointUnit, a *scene.Actor) {
			a.Sphere.Center = rl.NewVector3(u.pos[0], u.pos[1], u.pos[2])
			a.Sphere.Radius = c.style.Size
			a.Sphere.Color = scene.Color01(c.style.Color, c.style.Opacity)
		},
	}
	return c
}

// Update pushes one frame of points. The payload must span exactly one time
// sample; a channel-count change rebuilds the actor generation, otherwise the
// spheres are recentered and restyled in place. The caller repaints separately.
func (c *PointCloud) Update(frame *motion.Points) error {
	pts, err := frame.Single()
	if err != nil {
		return err
	}
	c.last = frame
	units := make([]pointUnit, len(pts))
	for i, p := range pts {
		units[i] = pointUnit{pos: p}
	}
	c.set.apply(units)
	return nil
}

// SetSize changes the sphere radius and re-applies the last frame. No-op until
// a frame has been pushed.
func (c *PointCloud) SetSize(v float32) error {
	s := c.style
	s.Size = v
	return c.restyle(s)
}

// SetColor changes the color (0..1 components) and re-applies the last frame.
func (c *PointCloud) SetColor(rgb [3]float32) error {
	s := c.style
	s.Color = rgb
	return c.restyle(s)
}

// SetOpacity changes the opacity (0..1) and re-applies the last frame.
func (c *PointCloud) SetOpacity(v float32) error {
	s := c.style
	s.Opacity = v
	return c.restyle(s)
}

// restyle validates and stores the new style, then pushes the cached frame
// through the regular update path. The channel count cannot change here, so a
// cached frame always takes the fast path.
func (c *PointCloud) restyle(s Style) error {
	if err := s.Validate(c.set.name); err != nil {
		return err
	}
	c.style = s
	if c.last == nil {
		return nil
	}
	return c.Update(c.last)
}
