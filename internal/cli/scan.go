package cli

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ndelvaux/wikidump/internal/dates"
	"github.com/ndelvaux/wikidump/internal/dump"
	"github.com/ndelvaux/wikidump/internal/model"
	"github.com/ndelvaux/wikidump/internal/page"
	"github.com/ndelvaux/wikidump/internal/worker"
	"github.com/spf13/cobra"
)

var (
	scanWorkers   int
	scanBatchSize int
	scanLimit     int
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <dump.xml[.bz2]|pages.avro>",
	Short: "Scan a whole dump for dates, in parallel",
	Long: `Scan runs the date recognizer over every non-redirect page of a dump,
processing batches of pages on parallel workers, and prints how many
dates each source format contributed.

Example:
  wikidump scan pages.avro
  wikidump scan dump.xml.bz2 --workers 8 --limit 100000`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().IntVar(&scanWorkers, "workers", 0, "parallel workers (default from config)")
	scanCmd.Flags().IntVar(&scanBatchSize, "batch-size", 0, "pages per batch (default from config)")
	scanCmd.Flags().IntVar(&scanLimit, "limit", 0, "stop after this many pages (0 = all)")
}

func runScan(cmd *cobra.Command, args []string) error {
	src, err := openSource(args[0])
	if err != nil {
		return err
	}

	cfg := loadConfig()
	workers := scanWorkers
	if workers <= 0 {
		workers = cfg.Concurrency.Workers
	}
	batchSize := scanBatchSize
	if batchSize <= 0 {
		batchSize = cfg.Dump.BatchSize
	}

	var mu sync.Mutex
	perFormat := make(map[string]int)
	pagesWithDates := 0
	pagesScanned := 0

	processor := worker.NewBatchProcessor(workers, batchSize)
	start := time.Now()

	results, err := processor.Process(context.Background(), src,
		dump.IterOptions{
			Limit:  scanLimit,
			Filter: func(p *model.Page) bool { return !p.IsRedirect() },
		},
		func(ctx context.Context, pages []*model.Page, index int) error {
			local := make(map[string]int)
			withDates := 0
			for _, p := range pages {
				if !page.HasDate(p.Text) {
					continue
				}
				detected, _ := dates.Extract(p.Text)
				if len(detected) > 0 {
					withDates++
				}
				for _, d := range detected {
					local[d.Format]++
				}
			}
			mu.Lock()
			for format, n := range local {
				perFormat[format] += n
			}
			pagesWithDates += withDates
			pagesScanned += len(pages)
			mu.Unlock()
			logf("batch %d done (%d pages)", index, len(pages))
			return nil
		})
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	for _, r := range results {
		if r.Err != nil {
			return fmt.Errorf("batch %d: %w", r.Index, r.Err)
		}
	}

	fmt.Printf("Scanned %d pages in %s, %d contain dates\n", pagesScanned, time.Since(start).Round(time.Millisecond), pagesWithDates)

	formats := make([]string, 0, len(perFormat))
	for format := range perFormat {
		formats = append(formats, format)
	}
	sort.Slice(formats, func(i, j int) bool { return perFormat[formats[i]] > perFormat[formats[j]] })
	for _, format := range formats {
		fmt.Printf("%-16s %d\n", format, perFormat[format])
	}
	return nil
}
