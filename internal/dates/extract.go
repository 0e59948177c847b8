package dates

// Detected is one accepted date match: the matched substring, the format
// that produced it, its byte span in the source text and the normalized
// range.
type Detected struct {
	Text   string
	Format string
	Start  int
	End    int
	Range  DateRange
}

// ParseError records a match that looked like a date but could not be
// assembled into one. Collected alongside successes, never fatal.
type ParseError struct {
	Text    string
	Format  string
	Message string
}

// Extract runs every registered format over the text and returns all
// accepted matches plus the non-fatal parse errors. It never fails on
// input text: a bad span becomes one ParseError entry and scanning
// continues.
//
// Results follow format registration order, not text position, and
// overlapping matches from different formats are all retained (a year is
// typically reported both alone and as part of a longer date). Callers
// needing positional order can sort on Detected.Start.
func Extract(text string) ([]Detected, []ParseError) {
	var detected []Detected
	var errs []ParseError

	for _, f := range Formats {
		for _, idx := range f.Pattern.FindAllStringSubmatchIndex(text, -1) {
			m := matchAt(f, text, idx)
			r, err := f.Convert(m)
			if err != nil {
				errs = append(errs, ParseError{Text: m.Text, Format: f.Name, Message: err.Error()})
				continue
			}
			detected = append(detected, Detected{
				Text:   m.Text,
				Format: f.Name,
				Start:  m.Start,
				End:    m.End,
				Range:  r,
			})
		}
	}
	return detected, errs
}

// matchAt builds a Match from the index pairs of
// FindAllStringSubmatchIndex. Unset groups become empty strings.
func matchAt(f Format, text string, idx []int) Match {
	groups := make([]string, len(idx)/2)
	for i := range groups {
		s, e := idx[2*i], idx[2*i+1]
		if s >= 0 {
			groups[i] = text[s:e]
		}
	}
	return Match{
		Text:   text[idx[0]:idx[1]],
		Groups: groups,
		Start:  idx[0],
		End:    idx[1],
		Source: text,
	}
}
