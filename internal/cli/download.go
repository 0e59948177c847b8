package cli

import (
	"fmt"
	"path"

	"github.com/ndelvaux/wikidump/internal/download"
	"github.com/spf13/cobra"
)

var (
	downloadReplace  bool
	downloadNoRobots bool
	downloadRate     float64
)

// downloadCmd represents the download command
var downloadCmd = &cobra.Command{
	Use:   "download <url> [path]",
	Short: "Download a dump file",
	Long: `Download fetches a dump file over HTTP, skipping the download when
the target file already exists. The transfer goes through a temporary
.part file, so an interrupted download never leaves a truncated file
under the final name.

Example:
  wikidump download https://dumps.wikimedia.org/enwiki/latest/enwiki-latest-pages-articles.xml.bz2`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDownload,
}

func init() {
	rootCmd.AddCommand(downloadCmd)

	downloadCmd.Flags().BoolVar(&downloadReplace, "replace", false, "re-download even when the file exists")
	downloadCmd.Flags().BoolVar(&downloadNoRobots, "no-robots", false, "do not consult robots.txt")
	downloadCmd.Flags().Float64Var(&downloadRate, "rate", 0, "requests per second per host (default from config)")
}

func runDownload(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	url := args[0]
	target := path.Base(url)
	if len(args) == 2 {
		target = args[1]
	}

	rate := cfg.Download.RequestsPerSecond
	if downloadRate > 0 {
		rate = downloadRate
	}

	d := download.NewDownloader(download.Options{
		UserAgent:  cfg.Download.UserAgent,
		Timeout:    cfg.Download.Timeout,
		Rate:       rate,
		Burst:      cfg.Download.Burst,
		Replace:    downloadReplace,
		SkipRobots: downloadNoRobots || !cfg.Download.CheckRobots,
		Verbose:    cfg.Output.Verbose,
	})

	written, err := d.Fetch(cmd.Context(), url, target)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}
	if written == 0 {
		fmt.Printf("%s already exists, skipped\n", target)
	} else {
		fmt.Printf("Downloaded %s (%d bytes)\n", target, written)
	}
	return nil
}
