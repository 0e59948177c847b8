package page

import (
	"regexp"
	"strings"
)

var (
	categoryRe    = regexp.MustCompile(`\[\[Category:(.*?)\]\]`)
	htmlCommentRe = regexp.MustCompile(`(?s)<!--.*?-->`)
	infoboxLineRe = regexp.MustCompile(`^\|\s*([a-z0-9_]+)\s*=(.*)$`)
)

// Categories returns the [[Category:...]] names found in the page text.
func Categories(text string) []string {
	var cats []string
	for _, m := range categoryRe.FindAllStringSubmatch(text, -1) {
		cats = append(cats, m[1])
	}
	return cats
}

// Infobox holds the parsed infobox of a page: its broad category (the
// token after "{{Infobox") and the field values keyed by name. Multi-line
// field values keep only their first line.
type Infobox struct {
	Category string
	Fields   map[string]string
}

// ParseInfobox locates the first {{Infobox ...}} template in the page
// text, walking nested braces to find its end, and parses the "|key =
// value" lines inside it. It returns nil when the page has no infobox.
func ParseInfobox(text string) *Infobox {
	start := strings.Index(text, "{{Infobox")
	if start < 0 {
		return nil
	}
	end := matchingBraces(text, start)
	if end < 0 {
		return nil
	}
	body := text[start+len("{{Infobox") : end]

	box := &Infobox{Fields: make(map[string]string)}
	if i := strings.IndexAny(body, "|\n"); i >= 0 {
		box.Category = body[:i]
	} else {
		box.Category = body
	}
	box.Category = strings.ToLower(strings.TrimSpace(htmlCommentRe.ReplaceAllString(box.Category, "")))

	for _, line := range strings.Split(body, "\n") {
		m := infoboxLineRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		value := strings.TrimSpace(htmlCommentRe.ReplaceAllString(m[2], ""))
		box.Fields[m[1]] = value
	}
	return box
}

// matchingBraces returns the index just past the "}}" closing the
// template opening at start, or -1 when the braces never balance.
func matchingBraces(text string, start int) int {
	depth := 0
	for i := start; i < len(text); {
		switch {
		case strings.HasPrefix(text[i:], "{{"):
			depth++
			i += 2
		case strings.HasPrefix(text[i:], "}}"):
			depth--
			i += 2
			if depth == 0 {
				return i
			}
		default:
			i++
		}
	}
	return -1
}
