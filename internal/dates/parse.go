package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// eraRe finds a BC/BCE marker anywhere in a side, so both
	// "55 BC" and the embedded "55 BC/03" are handled.
	eraRe = regexp.MustCompile(`(?i)\s*\bBCE?\b`)

	// toSepRe splits a range written with the word "to".
	toSepRe = regexp.MustCompile(`(?i)\s+to\s+`)

	// bareDashRe splits an unspaced year range such as "1810-1812" or
	// "1930s-1940s". Both sides must look like years (3-4 digits) so a
	// dashed year-month like "1810-12" is left to the side parser.
	bareDashRe = regexp.MustCompile(`^(\d{3,4}s?)\s*-\s*(\d{3,4}s?)$`)

	decadeRe    = regexp.MustCompile(`^(\d{1,3}0)s$`)
	ymdRe       = regexp.MustCompile(`^(\d{1,4})[-/](\d{1,2})[-/](\d{1,2})$`)
	yearPairRe  = regexp.MustCompile(`^(\d{1,4})[-/](\d{3,4})$`)
	yearMonthRe = regexp.MustCompile(`^(\d{1,4})[-/](\d{1,2})$`)
	yearOnlyRe  = regexp.MustCompile(`^\d{1,4}$`)
)

// ParseRange parses a pre-isolated date-like span ("1810", "1810/03 -
// 1812/05", "1930s", "55 BC") into a DateRange. The span must already be
// known to describe a single date or range; a span without any year
// token fails with ErrNoYear.
func ParseRange(span string) (DateRange, error) {
	span = strings.TrimSpace(span)
	if span == "" {
		return DateRange{}, fmt.Errorf("%w: empty span", ErrNoYear)
	}

	left, right, found := splitRange(span)
	if !found {
		return parseSide(span)
	}

	l, err := parseSide(left)
	if err != nil {
		return DateRange{}, err
	}
	r, err := parseSide(right)
	if err != nil {
		return DateRange{}, err
	}

	combined := DateRange{
		Start:       l.Start,
		StartApprox: l.StartApprox,
		End:         r.End,
		EndApprox:   r.EndApprox,
	}
	if combined.Start.sortKey() > combined.End.sortKey() {
		return DateRange{}, fmt.Errorf("%w: %s after %s", ErrInvertedRange, combined.Start, combined.End)
	}
	return combined, nil
}

// splitRange detects a range separator: " to ", a spaced " - ", or a
// bare hyphen between two year-like tokens.
func splitRange(span string) (left, right string, found bool) {
	if loc := toSepRe.FindStringIndex(span); loc != nil {
		return span[:loc[0]], span[loc[1]:], true
	}
	if i := strings.Index(span, " - "); i >= 0 {
		return span[:i], span[i+3:], true
	}
	if m := bareDashRe.FindStringSubmatch(span); m != nil {
		return m[1], m[2], true
	}
	return "", "", false
}

// parseSide parses one side of a range (or a whole unsplit span) into a
// mini-range with its own flattened boundaries. Each side may itself be
// a year pair ("1611/1612") or a decade.
func parseSide(s string) (DateRange, error) {
	s = strings.TrimSpace(s)

	// A leading "~" is the approximate marker of our own output grammar;
	// accept it so rendered ranges re-parse.
	marked := strings.HasPrefix(s, "~")
	if marked {
		s = strings.TrimSpace(s[1:])
	}

	// Era marker flips the year sign for every year in the side.
	bc := false
	if loc := eraRe.FindStringIndex(s); loc != nil {
		bc = true
		s = strings.TrimSpace(s[:loc[0]] + s[loc[1]:])
	}

	// A leading minus is the rendered form of a BC year ("-55/01/01");
	// accept it so rendered ranges re-parse.
	if strings.HasPrefix(s, "-") {
		bc = true
		s = strings.TrimSpace(s[1:])
	}

	r, err := parseNumericSide(s, bc)
	if err != nil {
		return DateRange{}, err
	}
	if marked {
		r.StartApprox = true
		r.EndApprox = true
	}
	return r, nil
}

func parseNumericSide(s string, bc bool) (DateRange, error) {
	sign := 1
	if bc {
		sign = -1
	}

	if m := decadeRe.FindStringSubmatch(s); m != nil {
		y0 := sign * atoi(m[1])
		return DateRange{
			Start:       Date{Year: y0, Month: 1, Day: 1, Precision: PrecisionYear},
			End:         Date{Year: y0 + 9, Month: 12, Day: 31, Precision: PrecisionYear},
			StartApprox: true,
			EndApprox:   true,
		}, nil
	}
	if m := ymdRe.FindStringSubmatch(s); m != nil {
		return exactDate(sign*atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}
	if m := yearPairRe.FindStringSubmatch(s); m != nil {
		return yearSpanRange(sign*atoi(m[1]), sign*atoi(m[2]))
	}
	if m := yearMonthRe.FindStringSubmatch(s); m != nil {
		return monthRange(sign*atoi(m[1]), atoi(m[2]))
	}
	if yearOnlyRe.MatchString(s) {
		return yearRange(sign * atoi(s)), nil
	}
	return DateRange{}, fmt.Errorf("%w: %q", ErrNoYear, s)
}

// atoi is for digit-only strings already vetted by a pattern.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
