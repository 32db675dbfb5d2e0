// Package orbit computes the per-frame kinematics of the toy solar system.
//
// Every body moves on a circle around the origin with a constant angular
// speed set by its period. Positions are a pure function of the frame index:
//
//	t     = f * TimeStep
//	angle = 2π * t / period
//	x, y  = r cos(angle), r sin(angle)
//	z     = r * Tilt * sin(angle / 2)
//
// The z term is a cosmetic bobbing motion at half the orbital frequency so
// the scene does not collapse into a flat plane.
//
// # Example
//
//	u, err := orbit.New(bodies, orbit.DefaultParams())
//	if err != nil {
//		return err // configuration error, before any frame is drawn
//	}
//	fr := u.Frame(20)
//
// # Thread Safety
//
// An [Updater] only reads immutable data once constructed and may be shared
// between goroutines.
package orbit
