package page

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestCoordinates_CoordTemplate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		lat, lon float64
	}{
		{"with seconds", "{{Coord|48|51|24|N|2|21|3|E|display=title}}", 48.85667, 2.35083},
		{"without seconds", "{{coord|49|1|N|3|23|E|region:FR_type:event}}", 49.016667, 3.383333},
		{"south west", "{{Coord|33|51|S|151|12|E}}", -33.85, 151.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lon, ok := Coordinates(tt.text)
			if !ok {
				t.Fatal("no coordinates found")
			}
			if math.Abs(lat-tt.lat) > 1e-4 || math.Abs(lon-tt.lon) > 1e-4 {
				t.Errorf("got (%f, %f), want (%f, %f)", lat, lon, tt.lat, tt.lon)
			}
		})
	}
}

func TestCoordinates_InfoboxFallback(t *testing.T) {
	text := "{{Infobox settlement\n| name = Ajaccio\n| latitude = 41.9267\n| longitude = 8.7369\n}}"
	lat, lon, ok := Coordinates(text)
	if !ok {
		t.Fatal("no coordinates found")
	}
	if math.Abs(lat-41.9267) > 1e-6 || math.Abs(lon-8.7369) > 1e-6 {
		t.Errorf("got (%f, %f)", lat, lon)
	}
}

func TestCoordinates_None(t *testing.T) {
	for _, text := range []string{
		"No coordinates here.",
		"| latitude = 95.0\n| longitude = 10.0", // out of range
		"| latitude = 41.9",                     // longitude missing
	} {
		if _, _, ok := Coordinates(text); ok {
			t.Errorf("Coordinates(%q) found a pair, want none", text)
		}
	}
}

func TestCategories(t *testing.T) {
	text := "Some text.\n[[Category:French emperors]]\n[[Category:1769 births]]\n"
	got := Categories(text)
	want := []string{"French emperors", "1769 births"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categories = %v, want %v", got, want)
	}
	if got := Categories("no categories"); got != nil {
		t.Errorf("Categories = %v, want nil", got)
	}
}

const marneInfobox = `{{Infobox military conflict
| conflict          = First Battle of the Marne
| partof            = the [[Western Front (World War I)|Western Front]] of [[World War I]]
| date              = 5-14 September 1914
| place             = [[Marne River]] near [[Brasles]], east of Paris
| coordinates       = {{coord|49|1|N|3|23|E|region:FR_type:event|display= inline}}
| result            = Allied victory <!-- per talk page consensus -->
}}
Rest of the article.`

func TestParseInfobox(t *testing.T) {
	box := ParseInfobox(marneInfobox)
	if box == nil {
		t.Fatal("no infobox found")
	}
	if box.Category != "military conflict" {
		t.Errorf("Category = %q, want %q", box.Category, "military conflict")
	}
	if got := box.Fields["conflict"]; got != "First Battle of the Marne" {
		t.Errorf("conflict = %q", got)
	}
	if got := box.Fields["date"]; got != "5-14 September 1914" {
		t.Errorf("date = %q", got)
	}
	if got := box.Fields["coordinates"]; !strings.HasPrefix(got, "{{coord|49|1|N") {
		t.Errorf("coordinates = %q", got)
	}
	if got := box.Fields["result"]; got != "Allied victory" {
		t.Errorf("result = %q, comment not stripped", got)
	}
}

func TestParseInfobox_Missing(t *testing.T) {
	if box := ParseInfobox("plain text without a template"); box != nil {
		t.Errorf("got %+v, want nil", box)
	}
	if box := ParseInfobox("{{Infobox person\n| name = X\n"); box != nil {
		t.Errorf("unbalanced braces: got %+v, want nil", box)
	}
}

const sectionedPage = `Lead paragraph.
== History ==
Early days.
=== Rise ===
Climbing up.
=== Fall ===
Coming down.
== Legacy ==
What remains.`

func TestSections(t *testing.T) {
	root := Sections(sectionedPage)
	if root.Level != 0 || root.Title != "" || root.Text != "Lead paragraph." {
		t.Fatalf("unexpected root section: %s", root)
	}
	if len(root.Children) != 2 {
		t.Fatalf("root has %d children, want 2", len(root.Children))
	}

	history := root.Children[0]
	if history.Title != "History" || history.Level != 2 {
		t.Fatalf("unexpected second section: %s", history)
	}
	if len(history.Children) != 2 {
		t.Fatalf("History has %d children, want 2", len(history.Children))
	}
	rise := history.Children[0]
	if rise.Title != "Rise" || rise.Level != 3 || rise.Text != "Climbing up." {
		t.Errorf("unexpected subsection: %s", rise)
	}
	if got := rise.TitleWithParents(); got != "History > Rise" {
		t.Errorf("TitleWithParents = %q", got)
	}

	if text, ok := root.TextByTitle("Fall"); !ok || text != "Coming down." {
		t.Errorf("TextByTitle(Fall) = %q, %v", text, ok)
	}
	if text, ok := root.TextByTitle("History > Rise"); !ok || text != "Climbing up." {
		t.Errorf("TextByTitle by path = %q, %v", text, ok)
	}
	if _, ok := root.TextByTitle("Missing"); ok {
		t.Error("TextByTitle found a missing section")
	}
}

func TestSections_NoHeadings(t *testing.T) {
	root := Sections("just one block of text")
	if root.Level != 0 || root.Text != "just one block of text" {
		t.Errorf("unexpected root: %s", root)
	}
}

func TestStripMarkup(t *testing.T) {
	text := "Napoleon<ref name=\"b1\">Biography, p. 3</ref> was born" +
		"<!-- citation needed --> in Ajaccio.<ref group=\"n\" />"
	got := StripMarkup(text)
	if strings.Contains(got, "Biography") || strings.Contains(got, "citation needed") {
		t.Errorf("citations survived: %q", got)
	}
	if !strings.Contains(got, "Napoleon was born in Ajaccio.") {
		t.Errorf("visible text mangled: %q", got)
	}
}

func TestHasDate(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"He was crowned on 2 December 1804.", true},
		{"Born August 15, 1769 in Ajaccio.", true},
		{"The report of 1810-03-05 was filed.", true},
		{"Sometime in 1805.", true},
		{"No dates in this sentence.", false},
		{"Only a number: 42.", false},
	}
	for _, tt := range tests {
		if got := HasDate(tt.text); got != tt.want {
			t.Errorf("HasDate(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestDateStrings(t *testing.T) {
	text := "Crowned 2 December 1804, exiled in 1814, returned 1815-03-20."
	got := DateStrings(text)
	want := []string{"2 December 1804", "1814", "1815-03-20"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DateStrings = %v, want %v", got, want)
	}
}
