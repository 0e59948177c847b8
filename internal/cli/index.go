package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/ndelvaux/wikidump/internal/dump"
	"github.com/spf13/cobra"
)

// indexCmd represents the index command
var indexCmd = &cobra.Command{
	Use:   "index <pages.avro> <index-dir>",
	Short: "Build a LevelDB title index over an Avro page file",
	Long: `Index stores every page under its title in a LevelDB database so
single pages can be looked up without scanning the whole file.

Example:
  wikidump index pages.avro pages.idx`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := openSource(args[0])
		if err != nil {
			return err
		}

		logf("indexing %s -> %s", args[0], args[1])
		start := time.Now()

		count, err := dump.BuildIndex(context.Background(), src, args[1])
		if err != nil {
			return fmt.Errorf("index: %w", err)
		}

		fmt.Printf("Indexed %d pages in %s\n", count, time.Since(start).Round(time.Millisecond))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
