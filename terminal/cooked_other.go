//go:build !linux

package terminal

func restoreCookedMode() {}
