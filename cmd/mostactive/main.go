package main

import (
	"os"
	_ "time/tzdata" // resolve IANA zone names on hosts without zoneinfo

	"github.com/AntonioJCosta/mostactive/internal/adapters/yamlconfig"
	"github.com/AntonioJCosta/mostactive/internal/core/services/dailyfrequency"
	"github.com/AntonioJCosta/mostactive/internal/handlers/cli"
	"github.com/AntonioJCosta/mostactive/internal/handlers/ui"
	"github.com/AntonioJCosta/mostactive/internal/repositories/recordlog"
)

// Version is set at build time
var Version = "dev"

func main() {
	deps := cli.Dependencies{
		NewRecordSource:     recordlog.NewFileRecordSource,
		NewFrequencyService: dailyfrequency.NewService,
		NewConfigProvider:   yamlconfig.NewYAMLProvider,
	}
	rootCmd := cli.NewRootCommand(Version, deps)

	if err := rootCmd.Execute(); err != nil {
		ui.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
