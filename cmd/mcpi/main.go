// Package main provides the mcpi command.
package main

import (
	"os"

	"github.com/leapstack-labs/mcpi/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
