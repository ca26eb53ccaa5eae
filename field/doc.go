// Package field implements the particle field simulation.
//
// A Field owns a set of point-mass particles inside a rectangular bound. Each
// call to Tick advances every particle by one step: pointer repulsion,
// integration under gravity and friction, wall reflection, radius relaxation,
// drawing, and probabilistic removal of particles resting on the floor.
//
// The package holds no global state. Toggles and pointer position arrive in
// an Input value on every tick, and randomness comes from an injected Rand,
// so any host loop (terminal frame ticker, headless runner, test) can drive it.
package field
