package page

import (
	"fmt"
	"regexp"
	"strings"
)

// Section is a node in a page's heading tree. The lead text before the
// first heading becomes a level-0 section with an empty title.
type Section struct {
	Level    int
	Title    string
	Text     string
	Children []*Section
	Parent   *Section
}

var headingRe = regexp.MustCompile(`^(=+)\s*(.*?)\s*(=+)$`)

// Sections splits the page text at heading lines ("== Title ==") and
// assembles the resulting chunks into a tree by heading level. The
// returned root is a synthetic level-0 section unless the page has a
// single top-level section.
func Sections(text string) *Section {
	return buildSectionTree(splitSectionTexts(text))
}

func splitSectionTexts(text string) []string {
	var chunks []string
	var current strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if isHeading(line) && current.Len() > 0 {
			chunks = append(chunks, strings.TrimSuffix(current.String(), "\n"))
			current.Reset()
		}
		current.WriteString(line)
		current.WriteString("\n")
	}
	if current.Len() > 0 {
		chunks = append(chunks, strings.TrimSuffix(current.String(), "\n"))
	}
	return chunks
}

func isHeading(line string) bool {
	m := headingRe.FindStringSubmatch(strings.TrimSpace(line))
	return m != nil && len(m[1]) == len(m[3])
}

func buildSectionTree(texts []string) *Section {
	var roots []*Section
	var stack []*Section

	for _, text := range texts {
		sec := sectionFromText(text)
		for len(stack) > 0 && stack[len(stack)-1].Level >= sec.Level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, sec)
		} else {
			top := stack[len(stack)-1]
			top.Children = append(top.Children, sec)
			sec.Parent = top
		}
		stack = append(stack, sec)
	}

	if len(roots) == 1 {
		return roots[0]
	}
	root := &Section{Title: "Root"}
	for _, sec := range roots {
		root.Children = append(root.Children, sec)
		sec.Parent = root
	}
	return root
}

// sectionFromText parses one chunk: a heading line of the form
// "== Title ==" followed by body text, or plain lead text.
func sectionFromText(text string) *Section {
	header, body, found := strings.Cut(text, "\n")
	if !found {
		return &Section{Text: text}
	}
	m := headingRe.FindStringSubmatch(strings.TrimSpace(header))
	if m == nil || len(m[1]) != len(m[3]) {
		return &Section{Text: text}
	}
	return &Section{Level: len(m[1]), Title: m[2], Text: body}
}

// TitleWithParents renders the path from the root to this section,
// e.g. "History > Napoleonic era".
func (s *Section) TitleWithParents() string {
	if s.Parent != nil && s.Parent.Title != "" {
		return s.Parent.TitleWithParents() + " > " + s.Title
	}
	return s.Title
}

// TextByTitle returns the text of the first section whose title or
// full path matches, or "" when no section matches.
func (s *Section) TextByTitle(title string) (string, bool) {
	if s.Title == title || s.TitleWithParents() == title {
		return s.Text, true
	}
	for _, child := range s.Children {
		if text, ok := child.TextByTitle(title); ok {
			return text, true
		}
	}
	return "", false
}

func (s *Section) String() string {
	text := s.Text
	if len(text) > 20 {
		text = text[:20] + "..."
	}
	return fmt.Sprintf("Section[%d](title=%s, text=%s)", s.Level, s.Title, text)
}
