package model

import "time"

// TimestampLayout is the revision timestamp format used by MediaWiki
// exports.
const TimestampLayout = "2006-01-02T15:04:05Z"

// Page is one page record streamed out of a Wikipedia dump.
type Page struct {
	PageID        int       `json:"page_id"`
	Title         string    `json:"title"`
	Timestamp     time.Time `json:"timestamp"`
	RedirectTitle string    `json:"redirect_title,omitempty"` // set when the page is a redirect
	RevisionID    string    `json:"revision_id"`
	Text          string    `json:"text,omitempty"`
}

// IsRedirect reports whether the page redirects to another title.
func (p *Page) IsRedirect() bool {
	return p.RedirectTitle != ""
}

// WikipediaURL returns the canonical article URL for the page title.
func (p *Page) WikipediaURL() string {
	return "https://en.wikipedia.org/wiki/" + p.Title
}

// PageFilter decides whether a page is kept during iteration. A nil
// filter keeps everything.
type PageFilter func(*Page) bool
