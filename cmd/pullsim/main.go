// Command pullsim replays scripted pull-to-load gestures and prints the
// resulting state trace.
package main

import (
	"os"

	"github.com/go-drift/pulltoload/cmd/pullsim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
