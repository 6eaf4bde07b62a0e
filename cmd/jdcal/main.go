// Package main provides jdcal, a command-line Julian Date calendar
// calculator.
package main

import (
	"fmt"
	"os"

	"github.com/theory/juliandate/cmd/jdcal/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "jdcal:", err)
		os.Exit(1)
	}
}
