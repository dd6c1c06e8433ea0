package motion

import "fmt"

// TopologyMode selects how a surface's triangle table is turned into actor topology.
type TopologyMode int

const (
	// TopologyAuto builds closed outline loops when the triangle table is
	// degenerate (see Outline) and a filled triangulated surface otherwise.
	// Body meshes use this.
	TopologyAuto TopologyMode = iota
	// TopologyOutline always builds closed outline loops. Muscle paths and
	// wrapping surfaces use this.
	TopologyOutline
)

// Surface is one independent mesh part: a point payload plus a fixed triangle
// table. The table holds one index triple per face (or per outline loop) into
// the part's channels. Connectivity is fixed for the lifetime of an actor
// generation; only the points move between frames.
type Surface struct {
	Name      string
	Points    *Points
	Triangles [][3]int32
	Mode      TopologyMode
}

// Outline reports whether the triangle table describes an ordered outline
// rather than a filled surface: no triples at all, or every triple starting at
// the same index.
func (s *Surface) Outline() bool {
	if len(s.Triangles) == 0 {
		return true
	}
	first := s.Triangles[0][0]
	for _, t := range s.Triangles[1:] {
		if t[0] != first {
			return false
		}
	}
	return true
}

// Validate checks every triple index against the part's channel count.
func (s *Surface) Validate() error {
	n := int32(s.Points.ChannelCount())
	for _, t := range s.Triangles {
		for _, id := range t {
			if id < 0 || id >= n {
				return fmt.Errorf("motion: surface %q references point %d, have %d points", s.Name, id, n)
			}
		}
	}
	return nil
}
