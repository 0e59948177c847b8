// Package download fetches dump files over HTTP with robots.txt
// compliance, per-host rate limiting and atomic writes.
package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/ndelvaux/wikidump/internal/worker"
)

// ErrDisallowed is returned when robots.txt forbids fetching a URL.
var ErrDisallowed = errors.New("fetch disallowed by robots.txt")

// Options configure a Downloader.
type Options struct {
	UserAgent  string
	Timeout    time.Duration // per-request; defaults to 10 minutes
	Rate       float64       // requests per second per host; defaults to 1
	Burst      int
	Replace    bool // re-download even when the file exists
	SkipRobots bool // do not consult robots.txt
	Verbose    bool
}

// Downloader fetches dump files to disk, skipping files that already
// exist and writing through a temporary file so a partial download is
// never mistaken for a complete one.
type Downloader struct {
	httpClient *http.Client
	robots     *RobotsChecker
	limiter    *worker.Limiter
	opts       Options
}

// NewDownloader creates a Downloader.
func NewDownloader(opts Options) *Downloader {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Minute
	}
	if opts.Rate <= 0 {
		opts.Rate = 1
	}
	if opts.Burst <= 0 {
		opts.Burst = 1
	}
	return &Downloader{
		httpClient: &http.Client{Timeout: opts.Timeout},
		robots:     NewRobotsChecker(opts.UserAgent, 15*time.Second),
		limiter:    worker.NewLimiter(opts.Rate, opts.Burst),
		opts:       opts,
	}
}

// Fetch downloads url to path. An existing file is kept unless Replace
// is set. It returns the number of bytes written, 0 when skipped.
func (d *Downloader) Fetch(ctx context.Context, url, path string) (int64, error) {
	if !d.opts.Replace {
		if _, err := os.Stat(path); err == nil {
			d.logf("%s already exists, skipping download", path)
			return 0, nil
		}
	}

	var crawlDelay time.Duration
	if !d.opts.SkipRobots {
		allowed, delay, err := d.robots.CanFetch(ctx, url)
		if err != nil {
			return 0, err
		}
		if !allowed {
			return 0, fmt.Errorf("%s: %w", url, ErrDisallowed)
		}
		crawlDelay = delay
	}

	if err := d.limiter.Wait(ctx, url); err != nil {
		return 0, err
	}
	if crawlDelay > 0 {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(crawlDelay):
		}
	}

	d.logf("downloading %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", d.opts.UserAgent)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("create directory: %w", err)
		}
	}

	tmp := path + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return 0, fmt.Errorf("create file: %w", err)
	}

	written, err := io.Copy(f, resp.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("write file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("finalize file: %w", err)
	}

	d.logf("download complete: %s (%d bytes)", path, written)
	return written, nil
}

func (d *Downloader) logf(format string, args ...any) {
	if d.opts.Verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
