package dates

import (
	"fmt"
	"strings"
)

// monthNumbers maps lowercase month names and standard 3-letter
// abbreviations to 1-12. Exact match only, no fuzzy lookup.
var monthNumbers = map[string]int{
	"january":   1,
	"jan":       1,
	"february":  2,
	"feb":       2,
	"march":     3,
	"mar":       3,
	"april":     4,
	"apr":       4,
	"may":       5,
	"june":      6,
	"jun":       6,
	"july":      7,
	"jul":       7,
	"august":    8,
	"aug":       8,
	"september": 9,
	"sep":       9,
	"october":   10,
	"oct":       10,
	"november":  11,
	"nov":       11,
	"december":  12,
	"dec":       12,
}

// writtenOrdinals maps English ordinal day-words to 1-31, including the
// hyphenated compounds ("twenty-first").
var writtenOrdinals = map[string]int{
	"first":          1,
	"second":         2,
	"third":          3,
	"fourth":         4,
	"fifth":          5,
	"sixth":          6,
	"seventh":        7,
	"eighth":         8,
	"ninth":          9,
	"tenth":          10,
	"eleventh":       11,
	"twelfth":        12,
	"thirteenth":     13,
	"fourteenth":     14,
	"fifteenth":      15,
	"sixteenth":      16,
	"seventeenth":    17,
	"eighteenth":     18,
	"nineteenth":     19,
	"twentieth":      20,
	"twenty-first":   21,
	"twenty-second":  22,
	"twenty-third":   23,
	"twenty-fourth":  24,
	"twenty-fifth":   25,
	"twenty-sixth":   26,
	"twenty-seventh": 27,
	"twenty-eighth":  28,
	"twenty-ninth":   29,
	"thirtieth":      30,
	"thirty-first":   31,
}

// monthsPattern is the shared regexp alternation for month names. Full
// names come before abbreviations so the longest form wins.
const monthsPattern = "January|February|March|April|May|June|July|August|September|October|November|December|" +
	"Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Oct|Nov|Dec"

// MonthNumber converts a month name or 3-letter abbreviation to its
// number (1-12). The lookup is case-insensitive.
func MonthNumber(name string) (int, error) {
	if n, ok := monthNumbers[strings.ToLower(name)]; ok {
		return n, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMonth, name)
}

// WrittenOrdinal converts an English ordinal day-word ("third",
// "twenty-first") to its number (1-31). The lookup is case-insensitive.
func WrittenOrdinal(word string) (int, error) {
	if n, ok := writtenOrdinals[strings.ToLower(word)]; ok {
		return n, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrdinal, word)
}
