// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"os"

	"hyperion/cmd"
	"hyperion/internal/log"
	"hyperion/pkg/build"
)

// main is the entry point for the hyperion command line. Subcommands are
// short lived except serve, which runs until interrupted.
func main() {
	// Development builds carry no ldflags; the defaults identify them as "dev".
	if err := build.Initialize(); err != nil {
		log.Debugf("build: %v, using development defaults", err)
	}

	if err := cmd.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", build.GetBuildFlags().Name, err)
		os.Exit(1)
	}
}
