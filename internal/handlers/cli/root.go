package cli

import (
	"time"

	"github.com/AntonioJCosta/mostactive/internal/core/ports"
	"github.com/spf13/cobra"
)

// RecordSourceFactory builds a record source for a log file path.
type RecordSourceFactory func(path string) (ports.RecordSource, error)

// FrequencyServiceFactory builds a frequency service that buckets timestamps in location.
type FrequencyServiceFactory func(source ports.RecordSource, location *time.Location) ports.DailyFrequencyService

// ConfigProviderFactory builds a settings provider; an empty path selects the default location.
type ConfigProviderFactory func(path string) (ports.ConfigProvider, error)

// Dependencies carries the constructors the commands need once flags are known.
type Dependencies struct {
	NewRecordSource     RecordSourceFactory
	NewFrequencyService FrequencyServiceFactory
	NewConfigProvider   ConfigProviderFactory
}

func NewRootCommand(version string, deps Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mostactive",
		Short: "mostactive finds the most frequent identifiers in a log for one day.",
		Long: `mostactive reads an "identifier,timestamp" log, keeps the records that fall
on the requested day in the requested timezone and prints the identifier(s)
that occur most often, one per line. Ties are printed in order of first appearance.`,
		Example: `  mostactive -f cookie_log.csv -d 2018-12-09
  mostactive -f cookie_log.csv -d 2018-12-09 -z Australia/Sydney -o table
  mostactive tally -f cookie_log.csv -d 2018-12-09`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return bindEnvironment(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRootCmd(cmd, args, deps)
		},
	}

	rootCmd.PersistentFlags().StringP("file", "f", "", "Path to the identifier log file.")
	rootCmd.PersistentFlags().StringP("date", "d", "", "Date in YYYY-MM-DD format.")
	rootCmd.PersistentFlags().StringP("timezone", "z", "", "IANA timezone used to decide which day a timestamp falls on (default UTC).")
	rootCmd.PersistentFlags().String("config", "", "Path to the YAML config file (default $HOME/.mostactive/config.yaml).")
	_ = rootCmd.MarkPersistentFlagRequired("file")
	_ = rootCmd.MarkPersistentFlagRequired("date")

	rootCmd.Flags().StringP("output", "o", "", "Output format: plain or table (default plain).")
	rootCmd.Flags().BoolP("verbose", "v", false, "Print a summary of the run to stderr.")

	rootCmd.AddCommand(NewTallyCommand(deps))

	return rootCmd
}

func runRootCmd(cmd *cobra.Command, _ []string, deps Dependencies) error {
	opts, err := resolveRunOptions(cmd, deps)
	if err != nil {
		return err
	}

	svc, err := newFrequencyService(opts, deps)
	if err != nil {
		return err
	}

	result, err := svc.MostFrequent(opts.date)
	if err != nil {
		return wrapRunError(opts, err)
	}

	if opts.verbose {
		printRunSummary(cmd.ErrOrStderr(), result, opts.configPath)
	}
	renderWinners(cmd.OutOrStdout(), result, opts.output)
	return nil
}
