// Package main provides the entry point for the coinfmt CLI
package main

import (
	"os"

	"coinfmt/cmd/coinfmt/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
