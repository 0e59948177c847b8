// Package dates finds date-like expressions in free text written in the
// many inconsistent conventions of Wikipedia markup (slash dates, dashed
// ISO dates, written-out day names, BC years, decades, ranges, wiki date
// templates) and normalizes each into a canonical date range with
// explicit certainty flags.
//
// BC years use a plain sign flip: "55 BC" is year -55. The astronomical
// convention (1 BC = year 0) is deliberately NOT applied.
package dates

import (
	"fmt"
	"time"
)

// Precision states how much of a calendar date was actually written in
// the source text.
type Precision int

const (
	PrecisionYear Precision = iota
	PrecisionMonth
	PrecisionDay
)

// Date is a single calendar date with partial precision. Negative years
// are BC. A set day implies a set month; a set month implies a set year.
type Date struct {
	Year      int
	Month     int
	Day       int
	Precision Precision
}

// String renders the date as a fixed-width YYYY/MM/DD string. The zero
// padding counts the leading minus sign for BC years, so "55 BC" renders
// as -055/...
func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// sortKey flattens the date into a single integer that orders
// chronologically, including negative (BC) years.
func (d Date) sortKey() int {
	return d.Year*10000 + d.Month*100 + d.Day
}

// DateRange is the canonical output of the recognizer: a pair of
// boundary dates, each flattened to a concrete day and tagged
// exact/approximate. A single exact date has Start == End with both
// flags false. Ranges are immutable once constructed.
type DateRange struct {
	Start       Date
	End         Date
	StartApprox bool
	EndApprox   bool
}

// String renders the range in the two-endpoint form used by the range
// parser round trip, e.g. "~1810/01/01 - ~1810/12/31". Years are not
// zero-padded here; approximate boundaries carry a "~" prefix. The
// output re-parses through ParseRange to an equal range.
func (r DateRange) String() string {
	return r.boundary(r.Start, r.StartApprox) + " - " + r.boundary(r.End, r.EndApprox)
}

func (DateRange) boundary(d Date, approx bool) string {
	s := fmt.Sprintf("%d/%02d/%02d", d.Year, d.Month, d.Day)
	if approx {
		s = "~" + s
	}
	return s
}

// Compact renders only the start boundary, zero-padded, with a trailing
// " (~)" marker when any side of the range is approximate. This is the
// form detected dates are reported in: "1810/03/05", "-055/03/01 (~)".
func (r DateRange) Compact() string {
	s := r.Start.String()
	if r.StartApprox || r.EndApprox {
		s += " (~)"
	}
	return s
}

// lastDayOfMonth returns the number of days in the given month, leap
// years included. Works for negative years.
func lastDayOfMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// exactDate builds a single-day exact range, validating the calendar.
func exactDate(year, month, day int) (DateRange, error) {
	if month < 1 || month > 12 {
		return DateRange{}, fmt.Errorf("%w: month %d out of range", ErrMalformedDateSpan, month)
	}
	if day < 1 || day > lastDayOfMonth(year, month) {
		return DateRange{}, fmt.Errorf("%w: day %d out of range for %d/%02d", ErrMalformedDateSpan, day, year, month)
	}
	d := Date{Year: year, Month: month, Day: day, Precision: PrecisionDay}
	return DateRange{Start: d, End: d}, nil
}

// monthRange widens a year-month to its first and last day, both
// approximate.
func monthRange(year, month int) (DateRange, error) {
	if month < 1 || month > 12 {
		return DateRange{}, fmt.Errorf("%w: month %d out of range", ErrMalformedDateSpan, month)
	}
	return DateRange{
		Start:       Date{Year: year, Month: month, Day: 1, Precision: PrecisionMonth},
		End:         Date{Year: year, Month: month, Day: lastDayOfMonth(year, month), Precision: PrecisionMonth},
		StartApprox: true,
		EndApprox:   true,
	}, nil
}

// yearRange widens a bare year to Jan 1 - Dec 31, both approximate.
func yearRange(year int) DateRange {
	return DateRange{
		Start:       Date{Year: year, Month: 1, Day: 1, Precision: PrecisionYear},
		End:         Date{Year: year, Month: 12, Day: 31, Precision: PrecisionYear},
		StartApprox: true,
		EndApprox:   true,
	}
}

// yearSpanRange widens a "1611/1612" style year pair into a single
// approximate range covering both years.
func yearSpanRange(from, to int) (DateRange, error) {
	if from > to {
		return DateRange{}, fmt.Errorf("%w: %d after %d", ErrInvertedRange, from, to)
	}
	return DateRange{
		Start:       Date{Year: from, Month: 1, Day: 1, Precision: PrecisionYear},
		End:         Date{Year: to, Month: 12, Day: 31, Precision: PrecisionYear},
		StartApprox: true,
		EndApprox:   true,
	}, nil
}
