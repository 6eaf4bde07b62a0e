//go:build js && wasm

// package main provides the Wasm app.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"syscall/js"

	"github.com/theory/juliandate/jd"
	"github.com/theory/juliandate/jd/calendar"
	"github.com/theory/juliandate/jd/types"
)

const (
	optLongNames int = 1 << iota
	optIndent
)

func convert(_ js.Value, args []js.Value) any {
	input := args[0].String()
	opts := args[1].Int()

	return execute(input, opts)
}

func main() {
	stream := make(chan struct{})

	js.Global().Set("convert", js.FuncOf(convert))
	js.Global().Set("optLongNames", js.ValueOf(optLongNames))
	js.Global().Set("optIndent", js.ValueOf(optIndent))

	<-stream
}

// execute parses input as a civil date, date-time, or raw Julian Date and
// returns a JSON description of the value.
func execute(input string, opts int) string {
	// Parse the date or date-time.
	value, err := jd.Parse(input)
	if err != nil {
		return fmt.Sprintf("Error parsing %v", err)
	}

	// Assemble the fields to report.
	fields := map[string]any{
		"value":  value.String(),
		"julian": value.Julian(),
	}

	switch value := value.(type) {
	case types.Date:
		fields["dayOfWeek"] = dayName(value.DayOfWeek(), opts)
		fields["dayOfYear"] = value.DayOfYear()
		fields["leapYear"] = value.IsLeapYear()
	case types.DateTime:
		fields["dayOfWeek"] = dayName(value.DayOfWeek(), opts)
		fields["dayOfYear"] = value.DayOfYear()
		fields["leapYear"] = value.IsLeapYear()
		fields["offsetHours"] = value.OffsetHours()
	}

	// Serialize the result.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if opts&optIndent == optIndent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(fields); err != nil {
		return fmt.Sprintf("Error serializing results: %v", err)
	}

	return html.EscapeString(buf.String())
}

// dayName returns the short or long name for a day of the week.
func dayName(day, opts int) string {
	if opts&optLongNames == optLongNames {
		return calendar.DayNames[day]
	}
	return calendar.ShortDayNames[day]
}
