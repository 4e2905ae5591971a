// Package main is the entry point for the skinai server.
//
// Commands: serve, migrate, seed.
package main

import (
	"fmt"
	"os"

	"skinai/cmd/app/commands"
)

func main() {
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
