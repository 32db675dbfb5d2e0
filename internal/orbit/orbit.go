package orbit

import (
	"math"
)

const (
	DefaultTimeStep    = 0.05
	DefaultTilt        = 0.15
	DefaultLabelOffset = 20.0
	DefaultAzimuthRate = 0.3
	DefaultElevation   = 20.0
)

// Body is the static description of one orbiting body.
type Body struct {
	Name   string
	Radius float64
	Period float64
	Color  string
	Size   float64
}

// Params holds the animation constants shared by every body.
type Params struct {
	TimeStep    float64 // time units per frame
	Tilt        float64 // out-of-plane bobbing amplitude, fraction of radius
	LabelOffset float64
	AzimuthRate float64 // degrees per frame
	Elevation   float64 // degrees
}

func DefaultParams() Params {
	return Params{
		TimeStep:    DefaultTimeStep,
		Tilt:        DefaultTilt,
		LabelOffset: DefaultLabelOffset,
		AzimuthRate: DefaultAzimuthRate,
		Elevation:   DefaultElevation,
	}
}

// State is the derived per-frame state of a body.
type State struct {
	Name     string
	Position Vec3
	Label    Vec3
}

// Frame is the complete output of the updater for one frame index.
type Frame struct {
	Index     int
	Time      float64
	Azimuth   float64
	Elevation float64
	Bodies    []State
}

// Body returns the state of the named body.
func (f Frame) Body(name string) (State, bool) {
	for _, s := range f.Bodies {
		if s.Name == name {
			return s, true
		}
	}
	return State{}, false
}

// Validate checks the body set and constants before the first frame.
func Validate(bodies []Body, p Params) error {
	if err := p.validate(); err != nil {
		return err
	}
	if len(bodies) == 0 {
		return &ConfigError{Field: "bodies", Wrapped: ErrNoBodies}
	}
	seen := make(map[string]bool, len(bodies))
	for _, b := range bodies {
		if seen[b.Name] {
			return &ConfigError{Body: b.Name, Field: "name", Wrapped: ErrDuplicateBody}
		}
		seen[b.Name] = true
		if !(b.Period > 0) || math.IsInf(b.Period, 0) {
			return &ConfigError{Body: b.Name, Field: "period", Value: b.Period, Wrapped: ErrInvalidPeriod}
		}
		if !(b.Radius >= 0) || math.IsInf(b.Radius, 0) {
			return &ConfigError{Body: b.Name, Field: "radius", Value: b.Radius, Wrapped: ErrInvalidRadius}
		}
		if !(b.Size > 0) {
			return &ConfigError{Body: b.Name, Field: "size", Value: b.Size, Wrapped: ErrInvalidSize}
		}
	}
	return nil
}

func (p Params) validate() error {
	switch {
	case !(p.TimeStep > 0) || math.IsInf(p.TimeStep, 0):
		return &ConfigError{Field: "time_step", Value: p.TimeStep, Wrapped: ErrInvalidParams}
	case !(p.Tilt >= 0 && p.Tilt < 1):
		return &ConfigError{Field: "tilt", Value: p.Tilt, Wrapped: ErrInvalidParams}
	case !(p.LabelOffset > 0):
		return &ConfigError{Field: "label_offset", Value: p.LabelOffset, Wrapped: ErrInvalidParams}
	case !(p.AzimuthRate > 0):
		return &ConfigError{Field: "azimuth_rate", Value: p.AzimuthRate, Wrapped: ErrInvalidParams}
	case math.IsNaN(p.Elevation) || math.Abs(p.Elevation) > 90:
		return &ConfigError{Field: "elevation", Value: p.Elevation, Wrapped: ErrInvalidParams}
	}
	return nil
}

// Updater maps frame indices to body positions and camera azimuth.
type Updater struct {
	bodies []Body
	params Params
}

// New validates the configuration and returns an updater over a private
// copy of bodies.
func New(bodies []Body, p Params) (*Updater, error) {
	if err := Validate(bodies, p); err != nil {
		return nil, err
	}
	owned := make([]Body, len(bodies))
	copy(owned, bodies)
	return &Updater{bodies: owned, params: p}, nil
}

func (u *Updater) Params() Params { return u.params }

// Bodies returns a copy of the configured bodies in configuration order.
func (u *Updater) Bodies() []Body {
	out := make([]Body, len(u.bodies))
	copy(out, u.bodies)
	return out
}

// Time converts a frame index to animation time.
func (u *Updater) Time(f int) float64 {
	return float64(clampFrame(f)) * u.params.TimeStep
}

// Angle is the unbounded orbital phase of b at frame f, in radians.
func (u *Updater) Angle(b Body, f int) float64 {
	return 2 * math.Pi * (u.Time(f) / b.Period)
}

// Position returns the scene position of b at frame f.
func (u *Updater) Position(b Body, f int) Vec3 {
	angle := u.Angle(b, f)
	return Vec3{
		X: b.Radius * math.Cos(angle),
		Y: b.Radius * math.Sin(angle),
		Z: b.Radius * u.params.Tilt * math.Sin(angle/2),
	}
}

// State returns position and label anchor of b at frame f.
func (u *Updater) State(b Body, f int) State {
	pos := u.Position(b, f)
	return State{Name: b.Name, Position: pos, Label: pos.Offset(u.params.LabelOffset)}
}

// Azimuth returns the camera azimuth in degrees at frame f.
func (u *Updater) Azimuth(f int) float64 {
	return float64(clampFrame(f)) * u.params.AzimuthRate
}

// Frame computes the full output for frame f.
func (u *Updater) Frame(f int) Frame {
	f = clampFrame(f)
	fr := Frame{
		Index:     f,
		Time:      u.Time(f),
		Azimuth:   u.Azimuth(f),
		Elevation: u.params.Elevation,
		Bodies:    make([]State, len(u.bodies)),
	}
	for i, b := range u.bodies {
		fr.Bodies[i] = u.State(b, f)
	}
	return fr
}

// PeriodFrames is the number of frames b needs for one revolution, rounded.
func (u *Updater) PeriodFrames(b Body) int {
	return int(math.Round(b.Period / u.params.TimeStep))
}

func clampFrame(f int) int {
	if f < 0 {
		return 0
	}
	return f
}
