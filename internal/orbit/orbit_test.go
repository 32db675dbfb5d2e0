package orbit

import (
	"errors"
	"math"
	"testing"
)

func planets() []Body {
	return []Body{
		{Name: "Mercury", Radius: 50, Period: 0.24, Color: "darkgray", Size: 150},
		{Name: "Earth", Radius: 150, Period: 1.00, Color: "deepskyblue", Size: 250},
		{Name: "Neptune", Radius: 800, Period: 164.79, Color: "blue", Size: 300},
	}
}

func TestEarthFrameZero(t *testing.T) {
	u, err := New(planets(), DefaultParams())
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	s, ok := u.Frame(0).Body("Earth")
	if !ok {
		t.Fatal("earth missing from frame")
	}
	if s.Position != (Vec3{150, 0, 0}) {
		t.Errorf("expected (150, 0, 0), got %+v", s.Position)
	}
	want := Vec3{170, 20, 20}
	if s.Label != want {
		t.Errorf("expected label %+v, got %+v", want, s.Label)
	}
}

func TestEarthFullRevolution(t *testing.T) {
	u, _ := New(planets(), DefaultParams())
	earth := planets()[1]

	if n := u.PeriodFrames(earth); n != 20 {
		t.Fatalf("expected 20 frames per revolution, got %d", n)
	}
	p := u.Position(earth, 20)
	if math.Abs(p.X-150) > 1e-9 || math.Abs(p.Y) > 1e-9 || math.Abs(p.Z) > 1e-9 {
		t.Errorf("expected earth back at (150, 0, 0), got %+v", p)
	}
}

func TestAzimuthStep(t *testing.T) {
	u, _ := New(planets(), DefaultParams())
	for f := 0; f < 1000; f++ {
		d := u.Azimuth(f+1) - u.Azimuth(f)
		if math.Abs(d-DefaultAzimuthRate) > 1e-9 {
			t.Fatalf("frame %d: expected step %.2f, got %f", f, DefaultAzimuthRate, d)
		}
	}
	if fr := u.Frame(10); fr.Elevation != DefaultElevation {
		t.Errorf("expected constant elevation %.0f, got %f", DefaultElevation, fr.Elevation)
	}
}

func TestNegativeFrameClamped(t *testing.T) {
	u, _ := New(planets(), DefaultParams())
	a, b := u.Frame(-5), u.Frame(0)
	if a.Index != 0 || a.Azimuth != b.Azimuth {
		t.Errorf("expected negative frame to behave as frame 0, got index %d", a.Index)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]Body, *Params)
		want   error
	}{
		{"zero period", func(b []Body, _ *Params) { b[0].Period = 0 }, ErrInvalidPeriod},
		{"negative period", func(b []Body, _ *Params) { b[1].Period = -1 }, ErrInvalidPeriod},
		{"nan period", func(b []Body, _ *Params) { b[1].Period = math.NaN() }, ErrInvalidPeriod},
		{"negative radius", func(b []Body, _ *Params) { b[2].Radius = -3 }, ErrInvalidRadius},
		{"zero size", func(b []Body, _ *Params) { b[0].Size = 0 }, ErrInvalidSize},
		{"duplicate", func(b []Body, _ *Params) { b[1].Name = b[0].Name }, ErrDuplicateBody},
		{"zero time step", func(_ []Body, p *Params) { p.TimeStep = 0 }, ErrInvalidParams},
		{"tilt one", func(_ []Body, p *Params) { p.Tilt = 1 }, ErrInvalidParams},
		{"steep elevation", func(_ []Body, p *Params) { p.Elevation = 120 }, ErrInvalidParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bodies, p := planets(), DefaultParams()
			tt.mutate(bodies, &p)
			u, err := New(bodies, p)
			if u != nil {
				t.Error("expected nil updater on invalid config")
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("expected *ConfigError, got %T", err)
			}
		})
	}
}

func TestValidateEmpty(t *testing.T) {
	if err := Validate(nil, DefaultParams()); !errors.Is(err, ErrNoBodies) {
		t.Errorf("expected ErrNoBodies, got %v", err)
	}
}

func TestNewCopiesBodies(t *testing.T) {
	bodies := planets()
	u, _ := New(bodies, DefaultParams())
	bodies[1].Radius = 9999

	s, _ := u.Frame(0).Body("Earth")
	if s.Position.X != 150 {
		t.Errorf("updater must not observe caller mutations, got x=%f", s.Position.X)
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Body: "Earth", Field: "period", Value: 0, Wrapped: ErrInvalidPeriod}
	want := `orbit: period must be positive (body "Earth": period=0)`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}
