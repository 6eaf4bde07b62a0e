// Package main performs a basic Julian Date conversion in order to test
// WASM compilation.
package main

import (
	"fmt"

	"github.com/theory/juliandate/jd"
)

func main() {
	// Construct a date.
	date, _ := jd.Date(2021, 1, 1)

	// Show the date and its Julian Date.
	//nolint:forbidigo
	fmt.Printf("%v = %v\n", date, date.Julian())
}
