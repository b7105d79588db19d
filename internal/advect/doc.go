// Package advect provides the core primitives for tracing passive
// particles through a time-dependent 2D velocity field.
//
// The package defines the building blocks of one analysis run:
//
//   - [TimeGrid]: the uniform discrete time sequence
//   - [ParticleSet]: per-particle position history buffers
//   - [Field]: the externally supplied velocity field u(t,x,y), v(t,x,y)
//   - [Analysis]: ties the three together and runs a [Scheme]
//
// # Example
//
//	a, _ := advect.New(0.01, 10.0, x0, y0, fields.DoubleGyre(0.1, 0.25, 2*math.Pi/10))
//	if err := a.March(schemes.NewAdamsBashforth2()); err != nil { ... }
//	a.WriteTrajectory(os.Stdout, 0)
//
// # Thread Safety
//
// Analysis instances are NOT thread-safe. One analysis is driven by one
// caller sequence: configure time, configure initial conditions, march,
// then report or export.
package advect
