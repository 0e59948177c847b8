package dates

import (
	"strings"
	"testing"
)

// compactStrings renders every detected range in its reporting form.
func compactStrings(detected []Detected) []string {
	out := make([]string, len(detected))
	for i, d := range detected {
		out[i] = d.Range.Compact()
	}
	return out
}

func TestExtract_Corpus(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		// Bare years, pinned to January 1.
		{"in 1805,", "1805/01/01"},
		{"from 934,", "0934/01/01"},
		{"to 58,", "0058/01/01"},
		{"in 55 BC,", "-055/01/01"},
		// Month-year widens to the month and is marked approximate.
		{"March 55 BC", "-055/03/01 (~)"},
		{"March 1810", "1810/03/01 (~)"},
		// Full dates.
		{"1810/03/05", "1810/03/05"},
		{"55/02/03 BC", "-055/02/03"},
		{"12 July 100 BC", "-100/07/12"},
		{"7 December 43 BC", "-043/12/07"},
		{"March 5th, 1810", "1810/03/05"},
		{"born March the twenty-first, 1804", "1804/03/21"},
		{"born March the 21st, 1804", "1804/03/21"},
		// Wiki templates, with and without trailing fields.
		{"{{Birth date|1810|03|05}}", "1810/03/05"},
		{"{{Birth date|1810|03|05|df=y}}", "1810/03/05"},
	}

	for _, c := range cases {
		detected, _ := Extract(c.text)
		got := compactStrings(detected)
		found := false
		for _, s := range got {
			if s == c.want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Extract(%q): want %q among %v", c.text, c.want, got)
		}
	}
}

func TestExtract_Formats(t *testing.T) {
	cases := []struct {
		text       string
		wantFormat string
		wantText   string
	}{
		{"on 03/04/1810 the", "SLASH_DMY_MDY", "03/04/1810"},
		{"on 1810-03-05 the", "DASH_YMD", "1810-03-05"},
		{"on 5 March 1810 the", "DAY_MONTH_YEAR", "5 March 1810"},
		{"on March 5th, 1810 the", "MONTH_DAY_YEAR", "March 5th, 1810"},
		{"in March 1810 the", "MONTH_YEAR", "March 1810"},
		{"on March the fifth, 1810 the", "WRITTEN_DATE", "March the fifth, 1810"},
		{"{{Death date|1812|05|07}}", "WIKI_DATE", "{{Death date|1812|05|07"},
		{"in 1805,", "YEAR", "1805"},
	}

	for _, c := range cases {
		detected, errs := Extract(c.text)
		found := false
		for _, d := range detected {
			if d.Format == c.wantFormat && d.Text == c.wantText {
				found = true
				if c.text[d.Start:d.End] != d.Text {
					t.Errorf("%q: span (%d,%d) does not cover %q", c.text, d.Start, d.End, d.Text)
				}
			}
		}
		if !found {
			t.Errorf("Extract(%q): no %s match %q in %+v (errs %v)", c.text, c.wantFormat, c.wantText, detected, errs)
		}
	}
}

func TestExtract_SlashOrderingFallback(t *testing.T) {
	// Day 25 cannot be a month, so the day-first reading applies.
	detected, errs := Extract("25/12/1810")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	for _, d := range detected {
		if d.Format == "SLASH_DMY_MDY" {
			if got := d.Range.Compact(); got != "1810/12/25" {
				t.Errorf("Compact() = %q, want 1810/12/25", got)
			}
			return
		}
	}
	t.Fatal("no slash-format match found")
}

func TestExtract_InvalidMatchBecomesParseError(t *testing.T) {
	// Matches the slash pattern but is valid in neither ordering.
	detected, errs := Extract("noted as 13/13/1810 in the ledger")
	for _, d := range detected {
		if d.Format == "SLASH_DMY_MDY" {
			t.Errorf("invalid slash date accepted: %+v", d)
		}
	}
	found := false
	for _, e := range errs {
		if e.Format == "SLASH_DMY_MDY" && e.Text == "13/13/1810" {
			found = true
			if e.Message == "" {
				t.Error("parse error has empty message")
			}
		}
	}
	if !found {
		t.Errorf("expected a SLASH_DMY_MDY parse error, got %v", errs)
	}
}

func TestExtract_OverlapRetained(t *testing.T) {
	// The year inside a full date is also reported by the YEAR format:
	// no deduplication happens across formats.
	detected, _ := Extract("5 March 1810")
	var haveFull, haveYear bool
	for _, d := range detected {
		switch {
		case d.Format == "DAY_MONTH_YEAR":
			haveFull = true
		case d.Format == "YEAR" && d.Text == "1810":
			haveYear = true
		}
	}
	if !haveFull || !haveYear {
		t.Errorf("want both the full date and the bare year retained, got %+v", detected)
	}
}

func TestExtract_RegistrationOrder(t *testing.T) {
	// Results follow format registration order even when a later
	// format's match sits earlier in the text.
	detected, _ := Extract("1805 and {{Birth date|1810|03|05}}")
	lastWiki, firstYear := -1, -1
	for i, d := range detected {
		if d.Format == "WIKI_DATE" && lastWiki < 0 {
			lastWiki = i
		}
		if d.Format == "YEAR" && firstYear < 0 {
			firstYear = i
		}
	}
	if lastWiki < 0 || firstYear < 0 {
		t.Fatalf("missing formats in %+v", detected)
	}
	if lastWiki > firstYear {
		t.Error("WIKI_DATE registers before YEAR, so its matches must come first")
	}
}

func TestExtract_NeverFails(t *testing.T) {
	inputs := []string{
		"",
		"no dates at all",
		strings.Repeat("99/99/9999 ", 50),
		"{{|||}} 00/00/0000 32 January 1810 February 30, 1810",
		"March the umpteenth, 1810",
	}
	for _, in := range inputs {
		detected, errs := Extract(in)
		// Both lists always come back, possibly empty.
		_ = detected
		_ = errs
	}
}

func TestExtract_RunningText(t *testing.T) {
	text := "Napoleon was crowned on 2 December 1804 in Paris. " +
		"The coronation {{Coronation date|1804|12|02}} followed the plebiscite of November 1804."
	detected, errs := Extract(text)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	wants := map[string]bool{
		"1804/12/02":     false, // day-month-year and the wiki template
		"1804/11/01 (~)": false, // month-year
	}
	for _, d := range detected {
		if _, ok := wants[d.Range.Compact()]; ok {
			wants[d.Range.Compact()] = true
		}
	}
	for w, seen := range wants {
		if !seen {
			t.Errorf("missing %q in %v", w, compactStrings(detected))
		}
	}
}
