package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/particle-field/terminal"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the loop crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			fmt.Fprintf(os.Stderr, "\n\x1b[31mPARTICLE-FIELD CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
