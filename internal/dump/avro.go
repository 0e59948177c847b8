package dump

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hamba/avro/v2"
	"github.com/hamba/avro/v2/ocf"

	"github.com/ndelvaux/wikidump/internal/model"
)

// pageSchema is the Avro schema for stored page records. Timestamps are
// kept as the MediaWiki string form so files stay readable by other
// tooling.
const pageSchema = `{
	"type": "record",
	"name": "Page",
	"fields": [
		{"name": "page_id", "type": "long"},
		{"name": "title", "type": "string"},
		{"name": "timestamp", "type": "string"},
		{"name": "redirect_title", "type": "string"},
		{"name": "revision_id", "type": "string"},
		{"name": "text", "type": "string"}
	]
}`

// PageSchema is the parsed schema shared by the Avro store and the
// title index.
var PageSchema = avro.MustParse(pageSchema)

// avroPage is the storage shape of a page record.
type avroPage struct {
	PageID        int64  `avro:"page_id"`
	Title         string `avro:"title"`
	Timestamp     string `avro:"timestamp"`
	RedirectTitle string `avro:"redirect_title"`
	RevisionID    string `avro:"revision_id"`
	Text          string `avro:"text"`
}

func toAvroPage(p *model.Page) *avroPage {
	ap := &avroPage{
		PageID:        int64(p.PageID),
		Title:         p.Title,
		RedirectTitle: p.RedirectTitle,
		RevisionID:    p.RevisionID,
		Text:          p.Text,
	}
	if !p.Timestamp.IsZero() {
		ap.Timestamp = p.Timestamp.Format(model.TimestampLayout)
	}
	return ap
}

func (ap *avroPage) toPage() (*model.Page, error) {
	p := &model.Page{
		PageID:        int(ap.PageID),
		Title:         ap.Title,
		RedirectTitle: ap.RedirectTitle,
		RevisionID:    ap.RevisionID,
		Text:          ap.Text,
	}
	if ap.Timestamp != "" {
		ts, err := time.Parse(model.TimestampLayout, ap.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("page %q: parse timestamp: %w", ap.Title, err)
		}
		p.Timestamp = ts
	}
	return p, nil
}

// AvroExtractor streams pages back out of an Avro page file.
type AvroExtractor struct {
	path string
}

// NewAvroExtractor creates an extractor for the given Avro page file.
func NewAvroExtractor(path string) *AvroExtractor {
	return &AvroExtractor{path: path}
}

// IterPages implements Source.
func (a *AvroExtractor) IterPages(ctx context.Context, fn func(*model.Page) error) error {
	f, err := os.Open(a.path)
	if err != nil {
		return fmt.Errorf("open avro file: %w", err)
	}
	defer f.Close()

	dec, err := ocf.NewDecoder(f)
	if err != nil {
		return fmt.Errorf("read avro header: %w", err)
	}
	for dec.HasNext() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		var ap avroPage
		if err := dec.Decode(&ap); err != nil {
			return fmt.Errorf("decode avro record: %w", err)
		}
		page, err := ap.toPage()
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
	return nil
}

// ExportOptions control ExportAvro.
type ExportOptions struct {
	BatchSize     int              // flush granularity; defaults to 10000
	Limit         int              // stop after this many pages; 0 means all
	Filter        model.PageFilter // nil keeps every page
	IncludeText   bool             // keep article text in the output
	RedirectsPath string           // when set, redirects go to this separate file instead
}

// ExportAvro converts a page source into a zstandard-compressed Avro
// file and returns the number of pages written. When RedirectsPath is
// set, redirect pages are written there (without text) and excluded
// from the main file.
func ExportAvro(ctx context.Context, src Source, outPath string, opts ExportOptions) (int, error) {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 10000
	}

	f, err := os.Create(outPath)
	if err != nil {
		return 0, fmt.Errorf("create avro file: %w", err)
	}
	defer f.Close()

	enc, err := ocf.NewEncoder(pageSchema, f, ocf.WithCodec(ocf.ZStandard))
	if err != nil {
		return 0, fmt.Errorf("create avro encoder: %w", err)
	}

	var redirectsEnc *ocf.Encoder
	if opts.RedirectsPath != "" {
		rf, err := os.Create(opts.RedirectsPath)
		if err != nil {
			return 0, fmt.Errorf("create redirects file: %w", err)
		}
		defer rf.Close()
		redirectsEnc, err = ocf.NewEncoder(pageSchema, rf, ocf.WithCodec(ocf.ZStandard))
		if err != nil {
			return 0, fmt.Errorf("create redirects encoder: %w", err)
		}
	}

	written := 0
	sinceFlush := 0
	err = ForEachPage(ctx, src, IterOptions{Limit: opts.Limit, Filter: opts.Filter}, func(p *model.Page) error {
		ap := toAvroPage(p)
		if !opts.IncludeText {
			ap.Text = ""
		}
		if redirectsEnc != nil && p.IsRedirect() {
			ap.Text = ""
			return redirectsEnc.Encode(ap)
		}
		if err := enc.Encode(ap); err != nil {
			return err
		}
		written++
		sinceFlush++
		if sinceFlush >= opts.BatchSize {
			sinceFlush = 0
			return enc.Flush()
		}
		return nil
	})
	if err != nil {
		return written, fmt.Errorf("export pages: %w", err)
	}

	if redirectsEnc != nil {
		if err := redirectsEnc.Close(); err != nil {
			return written, fmt.Errorf("close redirects encoder: %w", err)
		}
	}
	if err := enc.Close(); err != nil {
		return written, fmt.Errorf("close avro encoder: %w", err)
	}
	return written, nil
}
