/*
Package settings defines the user-adjustable defaults of a run.
*/
package settings

const (
	// OutputPlain prints one winning identifier per line.
	OutputPlain = "plain"
	// OutputTable prints winners with their counts as a table.
	OutputTable = "table"

	DefaultTimezone = "UTC"
)

// Settings holds values read from the config file. Empty fields mean "not configured".
type Settings struct {
	Timezone string `yaml:"timezone"`
	Output   string `yaml:"output"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Timezone: DefaultTimezone,
		Output:   OutputPlain,
	}
}

// WithDefaults fills empty fields from Default.
func (s Settings) WithDefaults() Settings {
	d := Default()
	if s.Timezone == "" {
		s.Timezone = d.Timezone
	}
	if s.Output == "" {
		s.Output = d.Output
	}
	return s
}

// IsValidOutput reports whether format is a known output format.
func IsValidOutput(format string) bool {
	return format == OutputPlain || format == OutputTable
}
