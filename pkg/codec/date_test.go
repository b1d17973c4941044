package codec

import (
	"testing"
	"time"
)

func TestPackDate_RoundTrip(t *testing.T) {
	for year := 2000; year <= 2099; year++ {
		for month := 1; month <= 12; month++ {
			for day := 1; day <= DaysInMonth(year, month); day++ {
				raw := PackDate(year, month, day)
				y, m, d := UnpackDate(raw)
				if y != year || m != month || d != day {
					t.Fatalf("round trip %04d-%02d-%02d: got %04d-%02d-%02d", year, month, day, y, m, d)
				}

				got, ok := DecodeDate(raw)
				if !ok {
					t.Fatalf("DecodeDate(%d) reported absent for %04d-%02d-%02d", raw, year, month, day)
				}
				if got.Year() != year || int(got.Month()) != month || got.Day() != day {
					t.Fatalf("DecodeDate(%d) = %v", raw, got)
				}
			}
		}
	}
}

func TestPackDate_Layout(t *testing.T) {
	if got := PackDate(2017, 11, 17); got != 171117 {
		t.Errorf("PackDate(2017, 11, 17) = %d, want 171117", got)
	}
	if got := EncodeDate(time.Date(2018, time.March, 9, 23, 59, 0, 0, time.UTC)); got != 180309 {
		t.Errorf("EncodeDate = %d, want 180309", got)
	}
}

func TestPackDate_YearOutOfRange(t *testing.T) {
	testCases := []struct {
		name string
		year int
	}{
		{name: "before epoch", year: 1999},
		{name: "year one", year: 1},
		{name: "negative", year: -5},
		{name: "after max", year: MaxDateYear + 1},
		{name: "uint32 overflow", year: DateEpoch + 429497},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PackDate(tc.year, 6, 15); got != 0 {
				t.Errorf("PackDate(%d, 6, 15) = %d, want 0", tc.year, got)
			}
		})
	}

	if got := PackDate(MaxDateYear, 12, 31); got != 79991231 {
		t.Errorf("PackDate(%d, 12, 31) = %d, want 79991231", MaxDateYear, got)
	}
	if _, ok := DecodeDate(PackDate(MaxDateYear, 12, 31)); !ok {
		t.Error("last packable day decodes as absent")
	}
	if got := EncodeDate(time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC)); got != 0 {
		t.Errorf("EncodeDate(1999-12-31) = %d, want 0", got)
	}
}

func TestDecodeDate_Absent(t *testing.T) {
	testCases := []struct {
		name string
		raw  uint32
	}{
		{name: "all zero", raw: 0},
		{name: "month zero", raw: PackDate(2017, 0, 10)},
		{name: "month thirteen", raw: PackDate(2017, 13, 1)},
		{name: "day zero", raw: PackDate(2017, 5, 0)},
		{name: "april 31", raw: PackDate(2017, 4, 31)},
		{name: "feb 29 non leap", raw: PackDate(2019, 2, 29)},
		{name: "feb 30 leap", raw: PackDate(2020, 2, 30)},
		{name: "day overflow", raw: 171199},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got, ok := DecodeDate(tc.raw); ok {
				t.Errorf("expected absent, got %v", got)
			}
		})
	}
}

func TestIsDateValid_LeapYears(t *testing.T) {
	if !IsDateValid(2000, 2, 29) {
		t.Error("2000 is a leap year")
	}
	if !IsDateValid(2016, 2, 29) {
		t.Error("2016 is a leap year")
	}
	if IsDateValid(2100, 2, 29) {
		t.Error("2100 is not a leap year")
	}
}
