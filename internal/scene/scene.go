// Package scene owns what the renderers draw: every body's static
// configuration next to its latest frame output, and the camera context.
package scene

import (
	"math"

	"github.com/san-kum/solarsim/internal/orbit"
)

// Entry holds one body and its most recently applied state.
type Entry struct {
	Body  orbit.Body
	State orbit.State
}

// Sun is drawn fixed at the origin.
type Sun struct {
	Color string
	Size  float64
}

// Context replaces ambient drawing state: the renderer receives it explicitly.
type Context struct {
	Frame     int
	Time      float64
	Azimuth   float64 // degrees
	Elevation float64 // degrees
	BoundsXY  float64
	BoundsZ   float64
	Sun       Sun
}

// Scene is indexed by body name; entries keep configuration order.
type Scene struct {
	entries []Entry
	index   map[string]int
	ctx     Context
}

// New builds a scene from the updater's body set and shows frame 0.
func New(u *orbit.Updater, ctx Context) *Scene {
	bodies := u.Bodies()
	s := &Scene{
		entries: make([]Entry, len(bodies)),
		index:   make(map[string]int, len(bodies)),
		ctx:     ctx,
	}
	for i, b := range bodies {
		s.entries[i] = Entry{Body: b}
		s.index[b.Name] = i
	}
	s.Apply(u.Frame(0))
	return s
}

// Apply copies a frame into the scene. States for unknown bodies are ignored.
func (s *Scene) Apply(fr orbit.Frame) {
	for _, st := range fr.Bodies {
		if i, ok := s.index[st.Name]; ok {
			s.entries[i].State = st
		}
	}
	s.ctx.Frame = fr.Index
	s.ctx.Time = fr.Time
	s.ctx.Azimuth = fr.Azimuth
	s.ctx.Elevation = fr.Elevation
}

func (s *Scene) Context() Context { return s.ctx }

func (s *Scene) Len() int { return len(s.entries) }

// Entries returns a snapshot of all entries in configuration order.
func (s *Scene) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Scene) Entry(name string) (Entry, bool) {
	i, ok := s.index[name]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// Guide is a closed orbit path in the z = 0 plane.
type Guide struct {
	Name   string
	Points []orbit.Vec3
}

// Guides samples every orbit circle with n points over [0, 2π].
func (s *Scene) Guides(n int) []Guide {
	if n < 2 {
		return nil
	}
	out := make([]Guide, len(s.entries))
	for i, e := range s.entries {
		pts := make([]orbit.Vec3, n)
		for k := 0; k < n; k++ {
			theta := 2 * math.Pi * float64(k) / float64(n-1)
			pts[k] = orbit.Vec3{X: e.Body.Radius * math.Cos(theta), Y: e.Body.Radius * math.Sin(theta)}
		}
		out[i] = Guide{Name: e.Body.Name, Points: pts}
	}
	return out
}
