// Package fields provides named analytic 2D velocity fields for particle
// advection. Each constructor returns an [advect.Field] closed over its
// parameters; the functions are pure and safe to share between runs.
package fields
