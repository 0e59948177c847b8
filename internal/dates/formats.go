package dates

import (
	"fmt"
	"regexp"
)

// Match carries one regexp hit through to a format's converter. Source
// is the full scanned text, so converters can inspect surrounding
// characters (the slash format rejects matches that run into a longer
// separator chain).
type Match struct {
	Text   string
	Groups []string
	Start  int
	End    int
	Source string
}

// Format is one date spelling convention: a name, a compiled pattern and
// a converter turning a hit into a DateRange. The set is closed; adding
// a convention means appending a new entry to Formats.
type Format struct {
	Name    string
	Pattern *regexp.Regexp
	Convert func(Match) (DateRange, error)
}

// Formats is the fixed registration order the extractor iterates in.
// Extraction results follow this order, not text position.
var Formats = []Format{
	{
		Name:    "SLASH_DMY_MDY",
		Pattern: regexp.MustCompile(`\b(\d{1,2})[-/](\d{1,2})[-/](\d{2,4})\b`),
		Convert: slashToRange,
	},
	{
		Name:    "DASH_YMD",
		Pattern: regexp.MustCompile(`(?i)\b(\d{1,4})[-/](\d{1,2})[-/](\d{1,2})(?:\s*(BC|BCE))?\b`),
		Convert: dashYMDToRange,
	},
	{
		Name:    "DAY_MONTH_YEAR",
		Pattern: regexp.MustCompile(`(?i)\b(\d{1,2})\s+(` + monthsPattern + `)[,\s]+(\d{2,4})(?:\s*(BC|BCE))?\b`),
		Convert: dayMonthYearToRange,
	},
	{
		Name:    "MONTH_DAY_YEAR",
		Pattern: regexp.MustCompile(`(?i)\b(` + monthsPattern + `)\s+(\d{1,2})(?:st|nd|rd|th)?[,\s]+(\d{2,4})(?:\s*(BC|BCE))?\b`),
		Convert: monthDayYearToRange,
	},
	{
		Name:    "MONTH_YEAR",
		Pattern: regexp.MustCompile(`(?i)\b(` + monthsPattern + `)\s+(\d{2,4})(?:\s*(BC|BCE))?\b`),
		Convert: monthYearToRange,
	},
	{
		Name:    "WRITTEN_DATE",
		Pattern: regexp.MustCompile(`(?i)\b(` + monthsPattern + `)\s+the\s+(?:(\d{1,2})(?:st|nd|rd|th)?|([a-z]+(?:-[a-z]+)?))[,\s]+(\d{2,4})\b`),
		Convert: writtenDateToRange,
	},
	{
		Name:    "WIKI_DATE",
		Pattern: regexp.MustCompile(`\{\{[^{}]*?\|(\d{4})\|(\d{1,2})\|(\d{1,2})`),
		Convert: wikiDateToRange,
	},
	{
		Name:    "YEAR",
		Pattern: regexp.MustCompile(`(?i)\b(\d{1,4})(?:\s*(BC|BCE))?\b`),
		Convert: yearToRange,
	},
}

// slashToRange handles DD/MM/YYYY vs MM/DD/YYYY dates. The ordering is
// ambiguous, so month-first is tried before day-first; when both
// orderings are calendar-valid the month-first reading wins. This is a
// known imprecision kept for compatibility: the source text carries no
// locale signal to resolve it.
func slashToRange(m Match) (DateRange, error) {
	// Reject matches immediately followed by another separator, which
	// means we only saw a prefix of a longer chain.
	if m.End < len(m.Source) && (m.Source[m.End] == '/' || m.Source[m.End] == '-') {
		return DateRange{}, fmt.Errorf("%w: %q continues with another separator", ErrMalformedDateSpan, m.Text)
	}
	first, second, year := atoi(m.Groups[1]), atoi(m.Groups[2]), atoi(m.Groups[3])
	if r, err := exactDate(year, first, second); err == nil {
		return r, nil
	}
	if r, err := exactDate(year, second, first); err == nil {
		return r, nil
	}
	return DateRange{}, fmt.Errorf("%w: %q is valid in neither month-first nor day-first order", ErrMalformedDateSpan, m.Text)
}

// dashYMDToRange handles unambiguous year-first dates such as
// "1810-03-05" or "55/02/03 BC".
func dashYMDToRange(m Match) (DateRange, error) {
	year := atoi(m.Groups[1])
	if m.Groups[4] != "" {
		year = -year
	}
	return exactDate(year, atoi(m.Groups[2]), atoi(m.Groups[3]))
}

// dayMonthYearToRange handles "12 July 100 BC" style dates.
func dayMonthYearToRange(m Match) (DateRange, error) {
	month, err := MonthNumber(m.Groups[2])
	if err != nil {
		return DateRange{}, err
	}
	year := atoi(m.Groups[3])
	if m.Groups[4] != "" {
		year = -year
	}
	return exactDate(year, month, atoi(m.Groups[1]))
}

// monthDayYearToRange handles "March 5th, 1810" style dates.
func monthDayYearToRange(m Match) (DateRange, error) {
	month, err := MonthNumber(m.Groups[1])
	if err != nil {
		return DateRange{}, err
	}
	year := atoi(m.Groups[3])
	if m.Groups[4] != "" {
		year = -year
	}
	return exactDate(year, month, atoi(m.Groups[2]))
}

// monthYearToRange handles "March 1810" with no day. The result widens
// to the whole month, both boundaries approximate.
func monthYearToRange(m Match) (DateRange, error) {
	month, err := MonthNumber(m.Groups[1])
	if err != nil {
		return DateRange{}, err
	}
	year := atoi(m.Groups[2])
	if m.Groups[3] != "" {
		year = -year
	}
	return monthRange(year, month)
}

// writtenDateToRange handles "March the 5th, 1810" and "March the
// third, 1810", with the day as digits or an English ordinal word.
func writtenDateToRange(m Match) (DateRange, error) {
	month, err := MonthNumber(m.Groups[1])
	if err != nil {
		return DateRange{}, err
	}
	var day int
	if m.Groups[2] != "" {
		day = atoi(m.Groups[2])
	} else {
		day, err = WrittenOrdinal(m.Groups[3])
		if err != nil {
			return DateRange{}, err
		}
	}
	return exactDate(atoi(m.Groups[4]), month, day)
}

// wikiDateToRange handles {{Birth date|YYYY|MM|DD}} style templates.
// The first three pipe-separated numeric fields after the template name
// are year, month and day; trailing fields like |df=y are ignored.
func wikiDateToRange(m Match) (DateRange, error) {
	return exactDate(atoi(m.Groups[1]), atoi(m.Groups[2]), atoi(m.Groups[3]))
}

// yearToRange handles a bare year, optionally BC. The date is pinned to
// January 1 and reported exact.
func yearToRange(m Match) (DateRange, error) {
	year := atoi(m.Groups[1])
	if m.Groups[2] != "" {
		year = -year
	}
	d := Date{Year: year, Month: 1, Day: 1, Precision: PrecisionYear}
	return DateRange{Start: d, End: d}, nil
}
