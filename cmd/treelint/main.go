// Package main provides the treelint CLI.
package main

import (
	"os"

	"github.com/treelint/treelint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
