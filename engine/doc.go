// Package engine hosts a field on a terminal.
//
// A single goroutine owns the field: terminal events arrive over a channel
// from the pump goroutine and are applied between ticks, so the simulation
// state needs no locking. Simulate drives the same field without a screen.
package engine
