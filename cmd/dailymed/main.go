// Command dailymed provides a CLI for the DailyMed v2 REST API.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/henrybloomingdale/dailymed-cli/internal/dailymed"
	"github.com/henrybloomingdale/dailymed-cli/internal/nlm"
	"github.com/henrybloomingdale/dailymed-cli/internal/output"
)

var (
	flagJSON    bool
	flagHuman   bool
	flagCSV     string
	flagBaseURL string
	flagQuiet   bool
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "dailymed",
	Short:         "DailyMed drug label CLI",
	Long:          `A command-line interface for searching and retrieving FDA drug label (SPL) data from the NLM DailyMed v2 web services.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	// Invoking the tool without a subcommand is a usage error, not a
	// successful run: show help but still exit non-zero.
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = cmd.Help()
		return errors.New("a subcommand is required")
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output raw JSON exactly as returned by the service")
	rootCmd.PersistentFlags().BoolVarP(&flagHuman, "human", "H", false, "Rich table output for list results")
	rootCmd.PersistentFlags().StringVar(&flagCSV, "csv", "", "Export list results to CSV file")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", nlm.DefaultBaseURL, "DailyMed web services base URL")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging (request URLs)")

	for _, res := range dailymed.Resources {
		rootCmd.AddCommand(newListCommand(res))
	}
	for _, res := range dailymed.SetIDResources {
		rootCmd.AddCommand(newSetIDCommand(res))
	}
}

// newLogger creates the operator-facing logger. Progress lines go to stderr
// so stdout stays clean for piping results.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{Level: level})
}

func logLevel() log.Level {
	switch {
	case flagQuiet:
		return log.ErrorLevel
	case flagVerbose:
		return log.DebugLevel
	default:
		return log.InfoLevel
	}
}

func newClient() *dailymed.Client {
	return dailymed.NewClient(
		dailymed.WithBaseURL(flagBaseURL),
		dailymed.WithLogger(newLogger(os.Stderr, logLevel())),
	)
}

func outputCfg(columns []string) output.Config {
	return output.Config{
		JSON:    flagJSON,
		Human:   flagHuman,
		CSVFile: flagCSV,
		Columns: columns,
	}
}
