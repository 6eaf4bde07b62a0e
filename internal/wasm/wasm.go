// Package main performs a basic Julian Date conversion in order to test
// WASM compilation.
package main

import (
	"fmt"

	"github.com/theory/juliandate/jd"
)

func main() {
	// Parse a civil date.
	date, _ := jd.Parse("1 Jan 2021")

	// Show the date and its Julian Date.
	//nolint:forbidigo
	fmt.Printf("%v = %v\n", date, date.Julian())
}
