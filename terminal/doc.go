// Package terminal hosts the simulation on a tcell screen.
//
// Terminal owns the screen lifecycle and runs the event pump that feeds the
// single-threaded engine loop. Mouse press and release edges are derived from
// tcell's level-triggered button state.
package terminal
