package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ndelvaux/wikidump/internal/cache"
	"github.com/ndelvaux/wikidump/internal/dump"
	"github.com/ndelvaux/wikidump/internal/llm"
	"github.com/ndelvaux/wikidump/internal/page"
	"github.com/spf13/cobra"
)

var (
	eventsProvider string
	eventsModel    string
	eventsCacheDir string
	eventsAsJSON   bool
)

// eventsCmd represents the events command
var eventsCmd = &cobra.Command{
	Use:   "events <index-dir> <title>",
	Short: "Extract historical events from a page with an LLM",
	Long: `Events looks a page up by title, strips citations and markup from its
text and asks an LLM for every event it describes, printed as
"date - place (city) [who] what" lines.

Requires the OPENAI_API_KEY environment variable. Responses are cached
on disk when --cache-dir is set.

Example:
  wikidump events pages.idx "Benedetto Marcello"
  wikidump events pages.idx "Napoleon" --json --cache-dir ~/.wikidump/events`,
	Args: cobra.ExactArgs(2),
	RunE: runEvents,
}

func init() {
	rootCmd.AddCommand(eventsCmd)

	eventsCmd.Flags().StringVar(&eventsProvider, "provider", "openai", "LLM provider")
	eventsCmd.Flags().StringVar(&eventsModel, "model", "", "LLM model name (default from config)")
	eventsCmd.Flags().StringVar(&eventsCacheDir, "cache-dir", "", "cache LLM responses in this directory")
	eventsCmd.Flags().BoolVar(&eventsAsJSON, "json", false, "print events as JSON")
}

func runEvents(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	cfg.LLM.Provider = eventsProvider
	if eventsModel != "" {
		cfg.LLM.Model = eventsModel
	}

	provider, err := llm.NewProvider(llm.Config{
		Provider:  cfg.LLM.Provider,
		Model:     cfg.LLM.Model,
		APIKey:    cfg.LLM.APIKey,
		BaseURL:   cfg.LLM.BaseURL,
		Timeout:   cfg.LLM.Timeout,
		MaxTokens: cfg.LLM.MaxTokens,
	})
	if err != nil {
		return err
	}
	if provider == nil {
		return fmt.Errorf("no LLM provider configured")
	}

	ix, err := dump.OpenIndex(args[0], nil)
	if err != nil {
		return fmt.Errorf("open index: %w", err)
	}
	defer func() { _ = ix.Close() }()

	p, err := ix.PageByTitle(args[1])
	if err != nil {
		return err
	}

	text := page.StripMarkup(p.Text)
	logf("extracting events from %q (%d chars after cleanup)", p.Title, len(text))

	events, err := extractEventsCached(cmd.Context(), provider, text)
	if err != nil {
		return err
	}

	if eventsAsJSON {
		data, err := json.MarshalIndent(events, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}
	fmt.Println(events.String())
	return nil
}

// extractEventsCached consults the disk cache before calling the LLM.
func extractEventsCached(ctx context.Context, provider llm.Provider, text string) (llm.Events, error) {
	var c *cache.DiskCache
	key := cache.Key(text)
	if eventsCacheDir != "" {
		c = cache.NewDiskCache(eventsCacheDir, 30*24*time.Hour)
		if data, found := c.Get(key); found {
			var events llm.Events
			if err := json.Unmarshal(data, &events); err == nil {
				logf("events served from cache")
				return events, nil
			}
		}
	}

	events, err := provider.ExtractEvents(ctx, text)
	if err != nil {
		return nil, err
	}

	if c != nil {
		if data, err := json.Marshal(events); err == nil {
			_ = c.Set(key, data, 0)
		}
	}
	return events, nil
}
