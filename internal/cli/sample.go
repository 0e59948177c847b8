package cli

import (
	"context"
	"fmt"

	"github.com/ndelvaux/wikidump/internal/dump"
	"github.com/spf13/cobra"
)

var sampleLimit int

// sampleCmd represents the sample command
var sampleCmd = &cobra.Command{
	Use:   "sample <dump.xml[.bz2]> <sample.xml[.gz]>",
	Short: "Write a truncated XML dump with the first N pages",
	Long: `Sample copies the first pages of a dump into a small XML file,
useful for trying a processing pipeline before running it on the full
dump.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x := dump.NewXMLExtractor(args[0])
		if err := x.WriteSample(context.Background(), args[1], sampleLimit); err != nil {
			return fmt.Errorf("sample: %w", err)
		}
		fmt.Printf("Wrote %d-page sample to %s\n", sampleLimit, args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
	sampleCmd.Flags().IntVar(&sampleLimit, "limit", 100, "number of pages to keep")
}
