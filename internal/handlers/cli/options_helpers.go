package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/AntonioJCosta/mostactive/internal/core/domain/settings"
	"github.com/AntonioJCosta/mostactive/internal/core/ports"
	"github.com/AntonioJCosta/mostactive/internal/handlers/ui"
	"github.com/AntonioJCosta/mostactive/internal/handlers/validation"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix prefixes environment variables that stand in for flags, e.g. MOSTACTIVE_TIMEZONE.
const envPrefix = "MOSTACTIVE"

type runOptions struct {
	file       string
	date       string
	output     string
	verbose    bool
	location   *time.Location
	configPath string // empty when no config provider could be built
}

// bindEnvironment fills every flag not given on the command line from its
// MOSTACTIVE_* environment variable, if set.
func bindEnvironment(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	// Environment variables can't have dashes in them.
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if bindErr != nil || f.Changed || f.Name == "help" || f.Name == "version" {
			return
		}
		if !v.IsSet(f.Name) {
			return
		}
		if err := cmd.Flags().Set(f.Name, v.GetString(f.Name)); err != nil {
			envName := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			bindErr = fmt.Errorf("invalid value in %s: %w", envName, err)
		}
	})
	return bindErr
}

// loadSettings reads the config file and returns it with the path it was read from.
// A broken config file is reported and ignored.
func loadSettings(cmd *cobra.Command, deps Dependencies) (settings.Settings, string) {
	if deps.NewConfigProvider == nil {
		return settings.Settings{}, ""
	}
	configPath, _ := cmd.Flags().GetString("config")

	provider, err := deps.NewConfigProvider(configPath)
	if err != nil {
		ui.PrintWarning(cmd.ErrOrStderr(), fmt.Sprintf("could not locate config file: %v. Continuing with defaults.", err))
		return settings.Settings{}, ""
	}
	cfg, err := provider.GetSettings()
	if err != nil {
		ui.PrintWarning(cmd.ErrOrStderr(), fmt.Sprintf("%v. Continuing with defaults.", err))
		return settings.Settings{}, provider.GetConfigPath()
	}
	return cfg, provider.GetConfigPath()
}

// resolveRunOptions merges flags (environment already applied) over the config
// file over built-in defaults, then validates the result.
func resolveRunOptions(cmd *cobra.Command, deps Dependencies) (runOptions, error) {
	var opts runOptions
	cfg, configPath := loadSettings(cmd, deps)
	opts.configPath = configPath

	opts.file, _ = cmd.Flags().GetString("file")
	opts.date, _ = cmd.Flags().GetString("date")

	if cmd.Flags().Changed("timezone") {
		cfg.Timezone, _ = cmd.Flags().GetString("timezone")
	}
	if f := cmd.Flags().Lookup("output"); f != nil && f.Changed {
		cfg.Output = f.Value.String()
	}
	if f := cmd.Flags().Lookup("verbose"); f != nil {
		opts.verbose, _ = cmd.Flags().GetBool("verbose")
	}
	cfg = cfg.WithDefaults()
	opts.output = cfg.Output

	if err := validation.ValidateDate(opts.date); err != nil {
		return opts, err
	}
	if err := validation.ValidateFile(opts.file); err != nil {
		return opts, err
	}
	location, err := validation.ValidateTimezone(cfg.Timezone)
	if err != nil {
		return opts, err
	}
	opts.location = location
	if err := validation.ValidateOutput(opts.output); err != nil {
		return opts, err
	}
	return opts, nil
}

func newFrequencyService(opts runOptions, deps Dependencies) (ports.DailyFrequencyService, error) {
	if deps.NewRecordSource == nil || deps.NewFrequencyService == nil {
		return nil, fmt.Errorf("services not initialized")
	}
	source, err := deps.NewRecordSource(opts.file)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", opts.file, err)
	}
	return deps.NewFrequencyService(source, opts.location), nil
}

func wrapRunError(opts runOptions, err error) error {
	return fmt.Errorf("could not process %s: %w", opts.file, err)
}
