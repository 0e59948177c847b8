package dates

import (
	"errors"
	"testing"
)

func TestParseRange_Corpus(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1810", "~1810/01/01 - ~1810/12/31"},
		{"1810-1812", "~1810/01/01 - ~1812/12/31"},
		{"1810/1812", "~1810/01/01 - ~1812/12/31"},
		{"1810/03/05", "1810/03/05 - 1810/03/05"},
		{"1810/03", "~1810/03/01 - ~1810/03/31"},
		{"1810/03 - 1812/05", "~1810/03/01 - ~1812/05/31"},
		{"1810/03/05 - 1812/05/07", "1810/03/05 - 1812/05/07"},
		{"1611/1612 - 1615/1617", "~1611/01/01 - ~1617/12/31"},
		{"1930s - 1940s", "~1930/01/01 - ~1949/12/31"},
		{"1930s", "~1930/01/01 - ~1939/12/31"},
		{"55 BC", "~-55/01/01 - ~-55/12/31"},
		{"55 BC - 52 BC", "~-55/01/01 - ~-52/12/31"},
		{"55 BC/03", "~-55/03/01 - ~-55/03/31"},
		{"1810 to 1812", "~1810/01/01 - ~1812/12/31"},
		{"1810-03-05", "1810/03/05 - 1810/03/05"},
	}

	for _, c := range cases {
		r, err := ParseRange(c.in)
		if err != nil {
			t.Errorf("ParseRange(%q): unexpected error: %v", c.in, err)
			continue
		}
		if got := r.String(); got != c.want {
			t.Errorf("ParseRange(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseRange_YearOnlyBoundaries(t *testing.T) {
	r, err := ParseRange("1810")
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	if r.Start != (Date{Year: 1810, Month: 1, Day: 1, Precision: PrecisionYear}) {
		t.Errorf("start = %+v, want 1810/01/01 at year precision", r.Start)
	}
	if r.End != (Date{Year: 1810, Month: 12, Day: 31, Precision: PrecisionYear}) {
		t.Errorf("end = %+v, want 1810/12/31 at year precision", r.End)
	}
	if !r.StartApprox || !r.EndApprox {
		t.Error("year-only range must be approximate on both sides")
	}
}

func TestParseRange_BCOrdering(t *testing.T) {
	r, err := ParseRange("55 BC - 52 BC")
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	if r.Start.Year != -55 || r.End.Year != -52 {
		t.Errorf("years = %d..%d, want -55..-52", r.Start.Year, r.End.Year)
	}
	if r.Start.sortKey() > r.End.sortKey() {
		t.Error("-55 must order before -52 chronologically")
	}
}

func TestParseRange_MixedPrecisionSides(t *testing.T) {
	// Day-precision left, month-precision right: only the right side is
	// approximate.
	r, err := ParseRange("1810/03/05 - 1812/05")
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	if r.StartApprox {
		t.Error("day-precision start must not be approximate")
	}
	if !r.EndApprox {
		t.Error("month-precision end must be approximate")
	}
	if got := r.String(); got != "1810/03/05 - ~1812/05/31" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseRange_Inverted(t *testing.T) {
	for _, in := range []string{"1812 - 1810", "1812/05/07 - 1810/03/05", "52 BC - 55 BC"} {
		if _, err := ParseRange(in); !errors.Is(err, ErrInvertedRange) {
			t.Errorf("ParseRange(%q): err = %v, want ErrInvertedRange", in, err)
		}
	}
}

func TestParseRange_Malformed(t *testing.T) {
	cases := []string{"1810/13", "1810/02/30", "1810/00/05", "1810/03/00"}
	for _, in := range cases {
		if _, err := ParseRange(in); !errors.Is(err, ErrMalformedDateSpan) {
			t.Errorf("ParseRange(%q): err = %v, want ErrMalformedDateSpan", in, err)
		}
	}
}

func TestParseRange_NoYear(t *testing.T) {
	for _, in := range []string{"", "no date here", "sometime in spring"} {
		if _, err := ParseRange(in); !errors.Is(err, ErrNoYear) {
			t.Errorf("ParseRange(%q): err = %v, want ErrNoYear", in, err)
		}
	}
}

func TestParseRange_LeapYears(t *testing.T) {
	if _, err := ParseRange("1804/02/29"); err != nil {
		t.Errorf("Feb 29 of a leap year must parse: %v", err)
	}
	if _, err := ParseRange("1803/02/29"); !errors.Is(err, ErrMalformedDateSpan) {
		t.Error("Feb 29 of a non-leap year must be malformed")
	}
	r, err := ParseRange("1804/02")
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	if r.End.Day != 29 {
		t.Errorf("Feb 1804 end day = %d, want 29", r.End.Day)
	}
}

func TestParseRange_RoundTrip(t *testing.T) {
	// Exact day-precision ranges render without markers and re-parse to
	// an equal range; all corpus outputs are stable under re-parsing.
	inputs := []string{
		"1810/03/05",
		"1810/03/05 - 1812/05/07",
		"1810",
		"1930s",
		"55 BC - 52 BC",
		"1810/03 - 1812/05",
	}
	for _, in := range inputs {
		first, err := ParseRange(in)
		if err != nil {
			t.Fatalf("ParseRange(%q): %v", in, err)
		}
		second, err := ParseRange(first.String())
		if err != nil {
			t.Fatalf("re-parse of %q: %v", first.String(), err)
		}
		if first.String() != second.String() {
			t.Errorf("%q: %q re-parses to %q", in, first.String(), second.String())
		}
		// Exact day-precision ranges survive the round trip as equal
		// values, not just equal strings.
		if !first.StartApprox && !first.EndApprox && first != second {
			t.Errorf("%q: exact range not stable under re-parse: %+v vs %+v", in, first, second)
		}
	}
}

func TestParseRange_RenderedBCYears(t *testing.T) {
	// Rendered BC boundaries carry a leading minus instead of an era
	// word; they must parse back like "55 BC" does.
	r, err := ParseRange("-55/01/01 - -52/12/31")
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	if r.Start.Year != -55 || r.End.Year != -52 {
		t.Errorf("years = %d, %d, want -55, -52", r.Start.Year, r.End.Year)
	}
	if r.StartApprox || r.EndApprox {
		t.Error("exact BC boundaries must not be approximate")
	}
	if got := r.String(); got != "-55/01/01 - -52/12/31" {
		t.Errorf("String() = %q, want the input back", got)
	}

	if _, err := ParseRange("~-55"); err != nil {
		t.Errorf("marked BC year must parse: %v", err)
	}
}
