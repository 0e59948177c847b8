package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ndelvaux/wikidump/internal/cache"
	"github.com/ndelvaux/wikidump/internal/dump"
	"github.com/ndelvaux/wikidump/internal/model"
	"github.com/ndelvaux/wikidump/internal/page"
	"github.com/spf13/cobra"
)

var (
	pageAsJSON bool
	pageFields bool
)

// pageCmd represents the page command
var pageCmd = &cobra.Command{
	Use:   "page <index-dir> <title>...",
	Short: "Look up pages by title in a built index",
	Long: `Page fetches one or more pages from a LevelDB title index and prints
their text, or with --fields the structured data extracted from it
(coordinates, categories, infobox).

Example:
  wikidump page pages.idx "Napoleon"
  wikidump page pages.idx "Napoleon" "Waterloo" --json
  wikidump page pages.idx "Napoleon" --fields`,
	Args: cobra.MinimumNArgs(2),
	RunE: runPage,
}

func init() {
	rootCmd.AddCommand(pageCmd)

	pageCmd.Flags().BoolVar(&pageAsJSON, "json", false, "print the full page record as JSON")
	pageCmd.Flags().BoolVar(&pageFields, "fields", false, "print extracted fields instead of text")
}

func runPage(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	var c cache.Cache
	if cfg.Cache.Enabled {
		c = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}

	ix, err := dump.OpenIndex(args[0], c)
	if err != nil {
		return fmt.Errorf("open index: %w", err)
	}
	defer func() { _ = ix.Close() }()

	pages, err := ix.PagesByTitle(args[1:])
	if err != nil {
		return err
	}

	for _, p := range pages {
		if err := printPage(p); err != nil {
			return err
		}
	}
	return nil
}

func printPage(p *model.Page) error {
	switch {
	case pageAsJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	case pageFields:
		fmt.Printf("Title: %s\n", p.Title)
		fmt.Printf("URL: %s\n", p.WikipediaURL())
		if lat, lon, ok := page.Coordinates(p.Text); ok {
			fmt.Printf("Coordinates: %.5f, %.5f\n", lat, lon)
		}
		if box := page.ParseInfobox(p.Text); box != nil {
			fmt.Printf("Infobox: %s (%d fields)\n", box.Category, len(box.Fields))
		}
		for _, cat := range page.Categories(p.Text) {
			fmt.Printf("Category: %s\n", cat)
		}
		fmt.Println()
		return nil
	default:
		fmt.Println(p.Text)
		return nil
	}
}
