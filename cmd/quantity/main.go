// Package main is the entry point for the quantity CLI.
package main

import (
	"os"

	"quantity-measurement/cmd/quantity/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
