// Package main is the entry point for the thisassembly CLI.
package main

import (
	"os"

	"github.com/viant/thisassembly/internal/cmd"
	"github.com/viant/thisassembly/internal/output"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		output.Error(err.Error())
		os.Exit(1)
	}
}
