// Package avatar keeps a set of scene actors synchronized with externally
// supplied per-frame kinematic data. Each visual category (markers, contacts,
// centers of mass, meshes, muscles, wrapping surfaces, coordinate frames) owns
// one generation of actors; pushing a frame whose arity matches the current
// generation repositions the actors in place, while an arity change destroys
// and rebuilds the whole generation.
package avatar

import (
	"avatar-engine/internal/logger"
	"avatar-engine/internal/scene"
)

// Stage is the part of the scene a renderable set mutates. *scene.Scene
// implements it; tests substitute a recording fake.
type Stage interface {
	AddActor(*scene.Actor)
	RemoveActor(*scene.Actor)
	RequestCameraReset()
}

// unit is one renderable slot within a category: one marker, one mesh part,
// one transform. Every unit maps to exactly one actor. Arity is the channel
// count that pins the current actor generation; when it changes the slot's
// actor must be rebuilt.
type unit interface {
	arity() int
}

// renderSet owns one category's actor generation and applies the
// rebuild-or-reposition decision. build constructs a new actor with its
// topology (geometry may be a placeholder); place applies one unit's frame data
// to an existing actor and runs on every push, including the one that ends a
// rebuild.
type renderSet[U unit] struct {
	name  string
	stage Stage
	log   *logger.Logger

	actors []*scene.Actor
	units  []U

	build func(U) *scene.Actor
	place func(U, *scene.Actor)
}

// apply pushes one frame's units. The fast path repositions existing actors;
// any arity change (including the very first push) swaps the generation.
func (s *renderSet[U]) apply(units []U) {
	if s.generationChanged(units) {
		s.rebuild(units)
		return
	}
	s.units = units
	for i, u := range units {
		s.place(u, s.actors[i])
	}
}

// generationChanged reports whether the incoming units no longer match the
// current actor generation: a different slot count, or any slot whose channel
// count changed.
func (s *renderSet[U]) generationChanged(units []U) bool {
	if len(units) != len(s.actors) {
		return true
	}
	for i, u := range units {
		if u.arity() != s.units[i].arity() {
			return true
		}
	}
	return false
}

// rebuild swaps the actor generation: every current actor leaves the stage,
// one fresh actor per unit is built and registered, the camera reset is
// requested once, and a place pass applies the same frame so actors end the
// rebuild with correct geometry.
func (s *renderSet[U]) rebuild(units []U) {
	for _, a := range s.actors {
		s.stage.RemoveActor(a)
	}
	s.actors = make([]*scene.Actor, 0, len(units))
	for _, u := range units {
		a := s.build(u)
		s.actors = append(s.actors, a)
		s.stage.AddActor(a)
	}
	s.stage.RequestCameraReset()
	s.units = units
	for i, u := range units {
		s.place(u, s.actors[i])
	}
	if s.log != nil {
		s.log.Logf("%s: rebuilt %d actors", s.name, len(s.actors))
	}
}

// replay re-applies the most recent frame to the current actors. Style setters
// use it; it is a no-op before the first push.
func (s *renderSet[U]) replay() {
	for i, u := range s.units {
		s.place(u, s.actors[i])
	}
}

// clear removes the whole generation from the stage.
func (s *renderSet[U]) clear() {
	for _, a := range s.actors {
		s.stage.RemoveActor(a)
	}
	s.actors = nil
	s.units = nil
}
