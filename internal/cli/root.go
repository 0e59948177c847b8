// Package cli wires the wikidump commands together.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/ndelvaux/wikidump/internal/dump"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wikidump",
	Short: "Extract pages, dates and events from Wikipedia dumps",
	Long: `wikidump streams pages out of Wikipedia XML dumps, converts them to
compact Avro files for fast re-reading, indexes them for random access
by title, and extracts structured data from page text: dates in many
written formats, coordinates, infoboxes, categories and, optionally,
LLM-extracted historical events.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("wikidump v0.2.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.wikidump/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home + "/.wikidump")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match WIKIDUMP_*
	viper.SetEnvPrefix("WIKIDUMP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// openSource picks a page source by file extension.
func openSource(path string) (dump.Source, error) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".avro"):
		return dump.NewAvroExtractor(path), nil
	case strings.HasSuffix(lower, ".xml"), strings.HasSuffix(lower, ".xml.bz2"), strings.HasSuffix(lower, ".xml.gz"):
		return dump.NewXMLExtractor(path), nil
	default:
		return nil, fmt.Errorf("unsupported dump file: %s (want .xml, .xml.bz2, .xml.gz or .avro)", path)
	}
}

func logf(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
