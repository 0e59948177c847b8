package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ndelvaux/wikidump/internal/dates"
	"github.com/ndelvaux/wikidump/internal/dump"
	"github.com/spf13/cobra"
)

var (
	datesIndexDir string
	datesTitle    string
	datesCompact  bool
)

// datesCmd represents the dates command
var datesCmd = &cobra.Command{
	Use:   "dates [file]",
	Short: "Extract dates from text, a file or an indexed page",
	Long: `Dates runs the date recognizer over text read from a file (or stdin
when no file is given) and prints every detected date with its source
format and normalized range.

With --index and --title the text comes from an indexed page instead.

Example:
  wikidump dates article.txt
  echo "He died on 5 May 1821." | wikidump dates
  wikidump dates --index pages.idx --title "Napoleon"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDates,
}

func init() {
	rootCmd.AddCommand(datesCmd)

	datesCmd.Flags().StringVar(&datesIndexDir, "index", "", "LevelDB title index directory")
	datesCmd.Flags().StringVar(&datesTitle, "title", "", "page title to read from the index")
	datesCmd.Flags().BoolVar(&datesCompact, "compact", false, "print single-date form instead of ranges")
}

func runDates(cmd *cobra.Command, args []string) error {
	text, err := datesInput(args)
	if err != nil {
		return err
	}

	detected, parseErrs := dates.Extract(text)

	for _, d := range detected {
		rendered := d.Range.String()
		if datesCompact {
			rendered = d.Range.Compact()
		}
		fmt.Printf("%-14s %-30q %s\n", d.Format, d.Text, rendered)
	}

	if len(parseErrs) > 0 {
		logf("%d match(es) failed to parse", len(parseErrs))
		for _, pe := range parseErrs {
			logf("  %s: %q: %s", pe.Format, pe.Text, pe.Message)
		}
	}
	return nil
}

func datesInput(args []string) (string, error) {
	if datesTitle != "" {
		if datesIndexDir == "" {
			return "", fmt.Errorf("--title requires --index")
		}
		ix, err := dump.OpenIndex(datesIndexDir, nil)
		if err != nil {
			return "", fmt.Errorf("open index: %w", err)
		}
		defer func() { _ = ix.Close() }()

		p, err := ix.PageByTitle(datesTitle)
		if err != nil {
			return "", err
		}
		return p.Text, nil
	}

	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
