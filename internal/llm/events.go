package llm

import (
	"fmt"
	"strings"

	"github.com/ndelvaux/wikidump/internal/dates"
)

// Event is one historical event extracted from page text. Multiple
// names in Who are separated with "|". When holds a date or date range
// in the YYYY/MM/DD grammar.
type Event struct {
	Who   string `json:"who"`
	What  string `json:"what"`
	Where string `json:"where"`
	City  string `json:"city"`
	When  string `json:"when"`
}

func (e Event) String() string {
	return fmt.Sprintf("%s - %s (%s) [%s] %s", e.When, e.Where, e.City, e.Who, e.What)
}

// DateRange parses the event's When field into a date range.
func (e Event) DateRange() (dates.DateRange, error) {
	return dates.ParseRange(e.When)
}

// Events is the list of events extracted from one text.
type Events []Event

func (es Events) String() string {
	lines := make([]string, len(es))
	for i, e := range es {
		lines[i] = e.String()
	}
	return strings.Join(lines, "\n\n")
}

// eventsResponse is the JSON envelope the model is asked to return.
type eventsResponse struct {
	Events Events `json:"events"`
}
