// Package main is the csquares CLI surface of spec.md §6: a cobra-based
// command line exposing `run` (single or batch instances, transcript +
// tab-separated batch report, exit codes) and `render` (vector export),
// grounded on github.com/rybkr/sudoku/cmd's cobra.Command + Flags() idiom
// (the only CLI pattern present in the retrieved example pack).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "csquares",
	Short: "Compute Gather&Compact reconfiguration plans for modular-cube robots",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
