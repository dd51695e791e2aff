// Package main is the entry point for the autoanki CLI.
package main

import (
	"os"

	"github.com/f3rmion/autoanki/cmd/autoanki/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
