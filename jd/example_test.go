package jd_test

import (
	"fmt"
	"log"

	"github.com/theory/juliandate/jd"
	"github.com/theory/juliandate/jd/calendar"
)

func ExampleDate() {
	date, err := jd.Date(2021, 1, 1)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%v falls on a %v\n", date, calendar.DayNames[date.DayOfWeek()])
	fmt.Printf("day number %v, day %v of the year\n", date.JDN(), date.DayOfYear())
	// Output:
	// 1 Jan 2021 falls on a Friday
	// day number 2459216, day 1 of the year
}

func ExampleDateTime() {
	value, err := jd.DateTime(2021, 1, 2, 3, 4, 5, 0, 5.5)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(value)
	// Output: 2 Jan 2021 03:04:05.00 (+0530)
}

func ExampleDateTime_sub() {
	// The same absolute instant under two different fixed offsets.
	east, err := jd.DateTime(2021, 1, 1, 18, 0, 0, 0, 6)
	if err != nil {
		log.Fatal(err)
	}
	utc, err := jd.DateTime(2021, 1, 1, 12, 0, 0, 0, 0)
	if err != nil {
		log.Fatal(err)
	}

	// Sub reconciles the offsets, but == never does.
	fmt.Println(east.Sub(utc))
	fmt.Println(east == utc)
	// Output:
	// 0
	// false
}

func ExampleParse() {
	value := jd.MustParse("15 Oct 1582")
	fmt.Printf("%.1f\n", value.Julian())
	// Output: 2299161.0
}

func ExampleDate_addDays() {
	date, err := jd.Date(1582, 10, 4)
	if err != nil {
		log.Fatal(err)
	}

	// The reform skips ten civil dates with no gap in day numbers.
	fmt.Println(date.AddDays(1))
	// Output: 15 Oct 1582
}
