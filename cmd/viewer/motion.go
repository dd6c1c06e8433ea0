package main

import (
	"github.com/chewxy/math32"

	"avatar-engine/internal/motion"
)

// demoFrame is one synthesized time sample of a two-segment arm: markers along
// the segments, a contact at the hand, centers of mass, a torso mesh, one
// muscle path, a wrapping ring at the elbow, and per-segment coordinate frames.
type demoFrame struct {
	markers   *motion.Points
	contacts  *motion.Points
	globalCoM *motion.Points
	segCoM    *motion.Points
	meshes    []*motion.Surface
	muscles   []*motion.Surface
	wrappings [][]*motion.Surface
	frames    []*motion.RotoTrans
}

const (
	shoulderHeight = 1.4
	upperArmLen    = 0.30
	forearmLen     = 0.25
	wrapRadius     = 0.05
	wrapPoints     = 8
)

// synthesize computes the demo frame at time t (seconds). The upper arm swings
// about the shoulder Z axis and the forearm flexes about the elbow.
func synthesize(t float32) demoFrame {
	shoulder := motion.Vec3{0, shoulderHeight, 0}
	upperAngle := -0.6 + 0.5*math32.Sin(t)
	elbowAngle := 0.8 + 0.6*math32.Sin(2*t)

	upperRT := motion.Translate(shoulder).Mul(motion.RotationZ(upperAngle))
	elbowLocal := motion.Translate(motion.Vec3{0, -upperArmLen, 0}).Mul(motion.RotationZ(elbowAngle))
	lowerRT := upperRT.Mul(elbowLocal)

	elbow := lowerRT.Translation()
	wrist := apply(lowerRT, motion.Vec3{0, -forearmLen, 0})
	hand := apply(lowerRT, motion.Vec3{0, -forearmLen - 0.05, 0})

	markers := motion.NewPoints(
		[]string{"shoulder", "elbow", "wrist", "hand"},
		[]motion.Vec3{shoulder, elbow, wrist, hand},
	)
	contacts := motion.NewPoints([]string{"hand"}, []motion.Vec3{hand})

	upperMid := shoulder.Add(elbow).Scale(0.5)
	lowerMid := elbow.Add(wrist).Scale(0.5)
	globalCoM := motion.NewPoints(nil, []motion.Vec3{upperMid.Add(lowerMid).Scale(0.5)})
	segCoM := motion.NewPoints(nil, []motion.Vec3{upperMid, lowerMid})

	return demoFrame{
		markers:   markers,
		contacts:  contacts,
		globalCoM: globalCoM,
		segCoM:    segCoM,
		meshes:    []*motion.Surface{torsoMesh(), armPlate(shoulder, elbow, wrist)},
		muscles:   []*motion.Surface{bicepsPath(shoulder, elbow, wrist)},
		wrappings: [][]*motion.Surface{{wrapRing(lowerRT)}},
		frames: []*motion.RotoTrans{
			motion.NewRotoTrans("upper arm", upperRT),
			motion.NewRotoTrans("forearm", lowerRT),
		},
	}
}

// apply transforms a local point into the global frame.
func apply(t motion.Transform, p motion.Vec3) motion.Vec3 {
	return t.Translation().
		Add(t.Basis(0).Scale(p[0])).
		Add(t.Basis(1).Scale(p[1])).
		Add(t.Basis(2).Scale(p[2]))
}

// torsoMesh is a static box outline. Its triangle table has a constant first
// index, so the mesh category renders it as outline loops.
func torsoMesh() *motion.Surface {
	w, d := float32(0.18), float32(0.10)
	top, bottom := float32(shoulderHeight+0.1), float32(shoulderHeight-0.5)
	pts := []motion.Vec3{
		{-w, bottom, -d}, {w, bottom, -d}, {w, bottom, d}, {-w, bottom, d},
		{-w, top, -d}, {w, top, -d}, {w, top, d}, {-w, top, d},
	}
	return &motion.Surface{
		Name:   "torso",
		Points: motion.NewPoints(nil, pts),
		Triangles: [][3]int32{
			{0, 1, 2}, {0, 2, 3}, {0, 4, 5}, {0, 5, 1}, {0, 3, 7}, {0, 7, 4},
		},
		Mode: motion.TopologyAuto,
	}
}

// armPlate is a small triangulated surface spanning the arm, exercising the
// filled-surface topology branch.
func armPlate(shoulder, elbow, wrist motion.Vec3) *motion.Surface {
	off := motion.Vec3{0, 0, 0.02}
	pts := []motion.Vec3{shoulder, elbow, wrist, shoulder.Add(off), elbow.Add(off)}
	return &motion.Surface{
		Name:      "arm plate",
		Points:    motion.NewPoints(nil, pts),
		Triangles: [][3]int32{{0, 1, 3}, {1, 4, 3}, {1, 2, 4}},
		Mode:      motion.TopologyAuto,
	}
}

// bicepsPath is a muscle via-point path rendered as an outline loop.
func bicepsPath(shoulder, elbow, wrist motion.Vec3) *motion.Surface {
	via := shoulder.Add(elbow).Scale(0.5).Add(motion.Vec3{0.03, 0, 0})
	pts := []motion.Vec3{shoulder, via, elbow, wrist}
	return &motion.Surface{
		Name:      "biceps",
		Points:    motion.NewPoints(nil, pts),
		Triangles: [][3]int32{{0, 1, 2}, {1, 2, 3}},
		Mode:      motion.TopologyOutline,
	}
}

// wrapRing is a circle of points around the forearm axis at the elbow,
// standing in for a wrapping cylinder cross-section.
func wrapRing(rt motion.Transform) *motion.Surface {
	pts := make([]motion.Vec3, wrapPoints)
	for i := range pts {
		a := 2 * math32.Pi * float32(i) / wrapPoints
		local := motion.Vec3{wrapRadius * math32.Cos(a), 0, wrapRadius * math32.Sin(a)}
		pts[i] = apply(rt, local)
	}
	tris := make([][3]int32, 0, wrapPoints/2)
	for i := 0; i < wrapPoints; i += 2 {
		tris = append(tris, [3]int32{int32(i), int32(i + 1), int32((i + 2) % wrapPoints)})
	}
	return &motion.Surface{
		Name:      "elbow wrap",
		Points:    motion.NewPoints(nil, pts),
		Triangles: tris,
		Mode:      motion.TopologyOutline,
	}
}
