package calendar

// The name tables are 1-indexed by convention: slot 0 is unused, months run
// from 1 (January) through 12 (December), and weekdays from 1 (Sunday)
// through 7 (Saturday).
var (
	// MonthNames maps month numbers to full English month names.
	MonthNames = [13]string{
		"",
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}

	// ShortMonthNames maps month numbers to three-letter abbreviations.
	ShortMonthNames = [13]string{
		"",
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}

	// DayNames maps day-of-week numbers to full English weekday names.
	DayNames = [8]string{
		"",
		"Sunday", "Monday", "Tuesday", "Wednesday",
		"Thursday", "Friday", "Saturday",
	}

	// ShortDayNames maps day-of-week numbers to three-letter abbreviations.
	ShortDayNames = [8]string{
		"",
		"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat",
	}
)
