package scene

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"avatar-engine/internal/motion"
)

const (
	gridExtent     = 5
	gridMinorStep  = 1
	gridMinorAlpha = 50
	axisLineAlpha  = 220

	// sphereRings/Slices control the tessellation of the shared unit sphere mesh.
	sphereRings  = 16
	sphereSlices = 16

	// lineRadiusPerWidth converts a line width (in the 1..5 range the model
	// configures) into a cylinder radius when drawing thick lines.
	lineRadiusPerWidth = 0.002

	// minFitRadius keeps the camera from collapsing onto a degenerate scene
	// (single point, or no actors yet).
	minFitRadius = 0.5
)

// Scene owns the actor collection and the camera. Renderable sets add and
// remove actors and may flag the camera for a reset; the next Draw consumes the
// flag and refits the camera around everything currently in the scene.
// Update runs camera input handling; Draw renders between BeginMode3D and
// EndMode3D. Camera handling follows raylib examples/core/core_3d_camera_free.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool

	actors            []*Actor
	shouldResetCamera bool

	// Shared unit sphere mesh and material, created lazily on first Draw so GPU
	// resources are allocated after the window/OpenGL context exists.
	sphereMesh   rl.Mesh
	sphereMtl    rl.Material
	sphereLoaded bool
}

// New returns a scene with a perspective camera looking at the origin.
// Camera: position (2,2,2), target (0,0,0), up (0,1,0), fovy 45°. Grid is
// visible by default. Biomechanical data is in meters, hence the short camera
// distance compared to game scenes.
func New() *Scene {
	s := &Scene{}
	s.Camera.Position = rl.NewVector3(2, 2, 2)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 45
	s.Camera.Projection = rl.CameraPerspective
	s.GridVisible = true
	return s
}

// AddActor registers an actor with the scene. Actors are drawn in insertion order.
func (s *Scene) AddActor(a *Actor) {
	s.actors = append(s.actors, a)
}

// RemoveActor unregisters an actor. Unknown actors are ignored.
func (s *Scene) RemoveActor(a *Actor) {
	for i, cur := range s.actors {
		if cur == a {
			s.actors = append(s.actors[:i], s.actors[i+1:]...)
			return
		}
	}
}

// ActorCount returns the number of registered actors.
func (s *Scene) ActorCount() int { return len(s.actors) }

// RequestCameraReset flags the camera to be refitted around the scene contents
// on the next Draw. Renderable sets call this once per rebuild.
func (s *Scene) RequestCameraReset() {
	s.shouldResetCamera = true
}

// SetGridVisible sets whether the floor grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Update runs once per repaint. Uses raylib UpdateCamera with CameraOrbital so
// the user can rotate around the avatar with the mouse and zoom with the wheel.
func (s *Scene) Update() {
	rl.UpdateCamera(&s.Camera, rl.CameraOrbital)
}

// Draw renders the 3D scene. Call between BeginDrawing and any 2D overlay.
// A pending camera reset is consumed first so the new framing applies to this
// repaint.
func (s *Scene) Draw() {
	if s.shouldResetCamera {
		s.resetCamera()
		s.shouldResetCamera = false
	}
	rl.BeginMode3D(s.Camera)
	if s.GridVisible {
		drawFloorGrid()
	}
	for _, a := range s.actors {
		s.drawActor(a)
	}
	rl.EndMode3D()
}

// resetCamera refits the camera so every actor point is in view, keeping the
// current viewing direction.
func (s *Scene) resetCamera() {
	center, radius := s.bounds()
	if radius < minFitRadius {
		radius = minFitRadius
	}
	dir := motion.Vec3{
		s.Camera.Position.X - s.Camera.Target.X,
		s.Camera.Position.Y - s.Camera.Target.Y,
		s.Camera.Position.Z - s.Camera.Target.Z,
	}.Normalized()
	if dir.Length() == 0 {
		dir = motion.Vec3{1, 1, 1}.Normalized()
	}
	halfFov := s.Camera.Fovy / 2 * math32.Pi / 180
	dist := radius/math32.Tan(halfFov) + radius
	s.Camera.Target = rl.NewVector3(center[0], center[1], center[2])
	s.Camera.Position = rl.NewVector3(
		center[0]+dir[0]*dist,
		center[1]+dir[1]*dist,
		center[2]+dir[2]*dist,
	)
}

// bounds returns the center and bounding-sphere radius of all actor points.
func (s *Scene) bounds() (center motion.Vec3, radius float32) {
	var lo, hi motion.Vec3
	first := true
	visit := func(p rl.Vector3) {
		v := motion.Vec3{p.X, p.Y, p.Z}
		if first {
			lo, hi = v, v
			first = false
			return
		}
		for i := 0; i < 3; i++ {
			if v[i] < lo[i] {
				lo[i] = v[i]
			}
			if v[i] > hi[i] {
				hi[i] = v[i]
			}
		}
	}
	for _, a := range s.actors {
		switch {
		case a.Sphere != nil:
			visit(a.Sphere.Center)
		case a.Lines != nil:
			for _, p := range a.Lines.Points {
				visit(p)
			}
		case a.Surface != nil:
			for _, p := range a.Surface.Points {
				visit(p)
			}
		}
	}
	if first {
		return motion.Vec3{}, 0
	}
	center = lo.Add(hi).Scale(0.5)
	radius = hi.Sub(lo).Length() / 2
	return center, radius
}

// ensureSphereLoaded creates the shared unit sphere mesh and material on first
// use, after the window/OpenGL context exists.
func (s *Scene) ensureSphereLoaded() {
	if s.sphereLoaded {
		return
	}
	s.sphereMesh = rl.GenMeshSphere(1, sphereRings, sphereSlices)
	s.sphereMtl = rl.LoadMaterialDefault()
	s.sphereLoaded = true
}

// drawActor renders one actor's geometry. Spheres share one unit mesh, scaled
// and tinted per actor. Surfaces are drawn with backface culling off so both
// sides of open meshes stay visible.
func (s *Scene) drawActor(a *Actor) {
	switch {
	case a.Sphere != nil:
		s.ensureSphereLoaded()
		sp := a.Sphere
		if albedo := s.sphereMtl.GetMap(rl.MapAlbedo); albedo != nil {
			albedo.Color = sp.Color
		}
		scaleM := rl.MatrixScale(sp.Radius, sp.Radius, sp.Radius)
		transM := rl.MatrixTranslate(sp.Center.X, sp.Center.Y, sp.Center.Z)
		rl.DrawMesh(s.sphereMesh, s.sphereMtl, rl.MatrixMultiply(scaleM, transM))
	case a.Lines != nil:
		drawLineSet(a.Lines)
	case a.Surface != nil:
		rl.DisableBackfaceCulling()
		for _, t := range a.Surface.Triangles {
			rl.DrawTriangle3D(
				a.Surface.Points[t[0]],
				a.Surface.Points[t[1]],
				a.Surface.Points[t[2]],
				a.Surface.Color,
			)
		}
		rl.EnableBackfaceCulling()
	}
}

// drawLineSet draws each segment, honoring per-segment colors when present.
// Widths above 1 are drawn as thin cylinders since core raylib lines are always
// one pixel wide.
func drawLineSet(l *LineSet) {
	for i, seg := range l.Segments {
		c := l.Color
		if i < len(l.Colors) {
			c = l.Colors[i]
		}
		start := l.Points[seg[0]]
		end := l.Points[seg[1]]
		if l.Width > 1 {
			r := l.Width * lineRadiusPerWidth
			rl.DrawCylinderEx(start, end, r, r, 8, c)
			continue
		}
		rl.DrawLine3D(start, end, c)
	}
}

// drawFloorGrid draws a grid on the XZ plane with axis lines through the origin
// (X=red, Y=green, Z=blue).
func drawFloorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, minor)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, minor)
	}

	start.X, start.Y, start.Z = float32(-gridExtent), 0, 0
	end.X, end.Y, end.Z = float32(gridExtent), 0, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, float32(-gridExtent), 0
	end.X, end.Y, end.Z = 0, float32(gridExtent), 0
	rl.DrawLine3D(start, end, axisY)
	start.X, start.Y, start.Z = 0, 0, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, 0, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}
