package codec

import "time"

const (
	// DateEpoch is the year stored as zero in a packed date
	DateEpoch = 2000
	// MaxDateYear is the last year a packed date can carry
	MaxDateYear = 9999
)

// PackDate encodes a calendar date as (year-2000)*10000 + month*100 + day.
// Years outside [DateEpoch, MaxDateYear] pack to 0, the absent date.
func PackDate(year, month, day int) uint32 {
	if year < DateEpoch || year > MaxDateYear {
		return 0
	}
	return uint32((year-DateEpoch)*10000 + month*100 + day)
}

// UnpackDate splits a packed date into its year, month and day
func UnpackDate(raw uint32) (year, month, day int) {
	year = int(raw/10000) + DateEpoch
	month = int(raw % 10000 / 100)
	day = int(raw % 100)
	return year, month, day
}

// IsDateValid reports whether the triple names a real calendar day
func IsDateValid(year, month, day int) bool {
	if year < 1 || year > 9999 {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= DaysInMonth(year, month)
}

// DaysInMonth returns the length of the month, accounting for leap years
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DecodeDate turns a packed date into a time at UTC midnight.
// Zero and calendar-invalid values report false.
func DecodeDate(raw uint32) (time.Time, bool) {
	if raw == 0 {
		return time.Time{}, false
	}
	y, m, d := UnpackDate(raw)
	if !IsDateValid(y, m, d) {
		return time.Time{}, false
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC), true
}

// EncodeDate packs the calendar day of t
func EncodeDate(t time.Time) uint32 {
	return PackDate(t.Year(), int(t.Month()), t.Day())
}
