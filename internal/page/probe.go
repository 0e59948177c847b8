package page

import "regexp"

const probeMonths = "January|February|March|April|May|June|July|August|September|October|November|December|" +
	"Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Oct|Nov|Dec"

// datePatternRe is a coarse sieve for date-looking substrings. It trades
// precision for speed so whole dumps can be filtered before the real
// date extractor runs.
var datePatternRe = regexp.MustCompile(`(?i)` +
	`\d{1,2}[-/]\d{1,2}[-/]\d{2,4}` +
	`|\d{4}[-/]\d{1,2}[-/]\d{1,2}` +
	`|\b\d{1,2}\s+(?:` + probeMonths + `)[,\s]+\d{2,4}\b` +
	`|\b(?:` + probeMonths + `)\s+\d{1,2}(?:st|nd|rd|th)?[,\s]+\d{2,4}\b` +
	`|\b\d{4}\b`)

// HasDate reports whether the text contains anything date-shaped.
func HasDate(text string) bool {
	return datePatternRe.MatchString(text)
}

// DateStrings returns every date-shaped substring in the text.
func DateStrings(text string) []string {
	return datePatternRe.FindAllString(text, -1)
}
