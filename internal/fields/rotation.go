package fields

import "github.com/san-kum/advect/internal/advect"

// Rotation is solid-body rotation about the origin with angular velocity
// omega. Exact trajectories are circles; explicit schemes spiral outward at
// a rate set by their truncation error, which makes this the standard
// accuracy check for the marching schemes.
func Rotation(omega float64) advect.Field {
	return advect.Field{
		U: func(t, x, y float64) float64 { return -omega * y },
		V: func(t, x, y float64) float64 { return omega * x },
	}
}
