package advect

// VelocityFunc gives one velocity component as a function of time and
// position. Implementations must be pure: no side effects, no dependence on
// particle identity.
type VelocityFunc func(t, x, y float64) float64

// Field pairs the two velocity components of a 2D flow. Fields are supplied
// by the caller and only ever read by the analysis.
type Field struct {
	U VelocityFunc
	V VelocityFunc
}

// Defined reports whether both components are set.
func (f Field) Defined() bool { return f.U != nil && f.V != nil }
