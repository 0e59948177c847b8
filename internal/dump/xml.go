package dump

import (
	"compress/bzip2"
	"compress/gzip"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ndelvaux/wikidump/internal/model"
)

// XMLExtractor streams pages from a MediaWiki XML dump file, either
// uncompressed (.xml) or bzip2-compressed (.xml.bz2). Pages are decoded
// one <page> element at a time, so arbitrarily large dumps stream in
// constant memory.
type XMLExtractor struct {
	path string
}

// NewXMLExtractor creates an extractor for the given dump file.
func NewXMLExtractor(path string) *XMLExtractor {
	return &XMLExtractor{path: path}
}

// xmlPage mirrors the <page> element of a MediaWiki export. The decoder
// matches local element names, so the export namespace version does not
// matter.
type xmlPage struct {
	Title    string `xml:"title"`
	ID       int    `xml:"id"`
	Redirect *struct {
		Title string `xml:"title,attr"`
	} `xml:"redirect"`
	Revision struct {
		ID        string `xml:"id"`
		Timestamp string `xml:"timestamp"`
		Text      string `xml:"text"`
	} `xml:"revision"`
}

func (xp *xmlPage) toPage() (*model.Page, error) {
	p := &model.Page{
		PageID:     xp.ID,
		Title:      xp.Title,
		RevisionID: xp.Revision.ID,
		Text:       xp.Revision.Text,
	}
	if xp.Redirect != nil {
		p.RedirectTitle = xp.Redirect.Title
	}
	if xp.Revision.Timestamp != "" {
		ts, err := time.Parse(model.TimestampLayout, xp.Revision.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("page %q: parse timestamp: %w", xp.Title, err)
		}
		p.Timestamp = ts
	}
	return p, nil
}

func (x *XMLExtractor) open() (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(x.path, ".xml"):
		return os.Open(x.path)
	case strings.HasSuffix(x.path, ".xml.bz2"):
		f, err := os.Open(x.path)
		if err != nil {
			return nil, err
		}
		return &wrappedReadCloser{r: bzip2.NewReader(f), c: f}, nil
	case strings.HasSuffix(x.path, ".xml.gz"):
		f, err := os.Open(x.path)
		if err != nil {
			return nil, err
		}
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &wrappedReadCloser{r: zr, c: f}, nil
	default:
		return nil, fmt.Errorf("unsupported dump file type: %s", x.path)
	}
}

// wrappedReadCloser reads from a decompressor while closing the
// underlying file.
type wrappedReadCloser struct {
	r io.Reader
	c io.Closer
}

func (w *wrappedReadCloser) Read(p []byte) (int, error) { return w.r.Read(p) }
func (w *wrappedReadCloser) Close() error               { return w.c.Close() }

// IterPages implements Source by streaming <page> elements.
func (x *XMLExtractor) IterPages(ctx context.Context, fn func(*model.Page) error) error {
	rc, err := x.open()
	if err != nil {
		return fmt.Errorf("open dump: %w", err)
	}
	defer rc.Close()
	return iterPagesXML(ctx, rc, fn)
}

func iterPagesXML(ctx context.Context, r io.Reader, fn func(*model.Page) error) error {
	dec := xml.NewDecoder(r)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read dump: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "page" {
			continue
		}

		var xp xmlPage
		if err := dec.DecodeElement(&xp, &se); err != nil {
			return fmt.Errorf("decode page element: %w", err)
		}
		page, err := xp.toPage()
		if err != nil {
			return err
		}
		if err := fn(page); err != nil {
			if errors.Is(err, ErrStopIteration) {
				return nil
			}
			return err
		}
	}
}

// WriteSample copies the first limit pages into a smaller XML dump,
// useful for debugging and tests. The output is plain .xml or gzip
// .xml.gz; bzip2 output is not supported by the standard library.
func (x *XMLExtractor) WriteSample(ctx context.Context, outPath string, limit int) error {
	if strings.HasSuffix(outPath, ".bz2") {
		return fmt.Errorf("bzip2 output is not supported, use .xml or .xml.gz: %s", outPath)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create sample: %w", err)
	}
	defer f.Close()

	var w io.Writer = f
	var zw *gzip.Writer
	if strings.HasSuffix(outPath, ".gz") {
		zw = gzip.NewWriter(f)
		w = zw
	}

	if _, err := io.WriteString(w, xml.Header+"<mediawiki version=\"0.11\">\n"); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("  ", "  ")

	err = ForEachPage(ctx, x, IterOptions{Limit: limit}, func(p *model.Page) error {
		return enc.Encode(samplePageXML(p))
	})
	if err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n</mediawiki>\n"); err != nil {
		return err
	}
	if zw != nil {
		return zw.Close()
	}
	return nil
}

// sampleXMLPage is the marshaling shape for WriteSample output.
type sampleXMLPage struct {
	XMLName  xml.Name `xml:"page"`
	Title    string   `xml:"title"`
	ID       int      `xml:"id"`
	Redirect *struct {
		Title string `xml:"title,attr"`
	} `xml:"redirect,omitempty"`
	Revision struct {
		ID        string `xml:"id"`
		Timestamp string `xml:"timestamp"`
		Text      string `xml:"text"`
	} `xml:"revision"`
}

func samplePageXML(p *model.Page) *sampleXMLPage {
	sp := &sampleXMLPage{Title: p.Title, ID: p.PageID}
	if p.RedirectTitle != "" {
		sp.Redirect = &struct {
			Title string `xml:"title,attr"`
		}{Title: p.RedirectTitle}
	}
	sp.Revision.ID = p.RevisionID
	if !p.Timestamp.IsZero() {
		sp.Revision.Timestamp = p.Timestamp.Format(model.TimestampLayout)
	}
	sp.Revision.Text = p.Text
	return sp
}
