// Package cmd assembles the jdcal command tree.
package cmd

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/theory/juliandate/jd"
	"github.com/theory/juliandate/jd/calendar"
	"github.com/theory/juliandate/jd/types"
)

// NewRootCmd builds the jdcal command and its subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jdcal",
		Short: "Julian Date calendar calculator",
		Long: `jdcal converts between civil dates and Julian Dates, reports
weekday and day-of-year facts, and offers a small interactive
calculator. Offsets are fixed UTC offsets; no time zone rules are
ever consulted.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolP(
		"short", "s", false, "print only the converted value",
	)

	rootCmd.AddCommand(newNowCmd(), newJDCmd(), newCivilCmd(), newReplCmd())

	return rootCmd
}

// newNowCmd builds the command reporting the current date-time.
func newNowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Print the current date-time and its Julian Date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			now, err := jd.Now()
			if err != nil {
				return err
			}
			printValue(cmd, now)
			return nil
		},
	}
}

// newJDCmd builds the command converting a civil date to a Julian Date.
func newJDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jd <date>",
		Short: "Convert a civil date or date-time to a Julian Date",
		Example: `  jdcal jd "1 Jan 2021"
  jdcal jd "2 Jan 2021 03:04:05.00 (+0530)"
  jdcal jd 1582-10-15`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := jd.Parse(args[0])
			if err != nil {
				return err
			}
			printValue(cmd, value)
			return nil
		},
	}
}

// newCivilCmd builds the command converting a Julian Date to civil fields.
func newCivilCmd() *cobra.Command {
	var offsetHours float64

	civilCmd := &cobra.Command{
		Use:   "civil <julian-date>",
		Short: "Convert a Julian Date to a civil date or date-time",
		Example: `  jdcal civil 2459216
  jdcal civil 2459216.5 --offset 5.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			julian, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("not a Julian Date: %q", args[0])
			}
			printValue(cmd, fromJulian(julian, offsetHours))
			return nil
		},
	}
	addOffsetFlag(civilCmd.Flags(), &offsetHours)

	return civilCmd
}

// addOffsetFlag registers the shared --offset flag on fs.
func addOffsetFlag(fs *pflag.FlagSet, offsetHours *float64) {
	fs.Float64VarP(
		offsetHours, "offset", "o", 0,
		"fixed UTC offset in hours, rounded to 15 minutes",
	)
}

// fromJulian builds the value for a raw Julian Date: a Date when the
// fraction is zero and no offset was requested, a DateTime otherwise.
func fromJulian(julian, offsetHours float64) types.Value {
	if julian == math.Floor(julian) && offsetHours == 0 {
		return types.DateFromJDN(int(julian))
	}
	offset := int(math.Round(offsetHours * 4))
	return types.FromJD(julian, offset)
}

// printValue reports a value, its Julian Date, and its derived calendar
// facts.
func printValue(cmd *cobra.Command, value types.Value) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%v\n", value)
	if short, _ := cmd.Flags().GetBool("short"); short {
		return
	}
	fmt.Fprintf(out, "julian date: %v\n", value.Julian())

	switch value := value.(type) {
	case types.Date:
		fmt.Fprintf(out, "day of week: %v\n", calendar.DayNames[value.DayOfWeek()])
		fmt.Fprintf(out, "day of year: %v\n", value.DayOfYear())
	case types.DateTime:
		fmt.Fprintf(out, "day of week: %v\n", calendar.DayNames[value.DayOfWeek()])
		fmt.Fprintf(out, "day of year: %v\n", value.DayOfYear())
	}
}
