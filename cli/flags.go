package cli

import (
	"github.com/spf13/cobra"

	"unittest/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	ConfigFile string
	EnvFile    string
	Verbosity  int
	Color      string
	Filter     string
	Progress   bool
	LogLevel   string
	Plain      bool
}

// register adds the flags shared by every command
func (f *Flags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.ConfigFile, "config", "", "Path to a YAML configuration file")
	pf.StringVar(&f.EnvFile, "env-file", "", "Path to a dotenv file (default .env in the working directory)")
	pf.IntVarP(&f.Verbosity, "verbosity", "v", config.DefaultVerbosity, "Report detail from 0 (silent) to 4 (failure diagnostics); overrides "+config.DefaultVerbosityEnv)
	pf.StringVar(&f.Color, "color", config.DefaultColor, "Color the report: auto, always or never")
	pf.StringVarP(&f.Filter, "filter", "f", "", "Select tests by name (supports wildcards, e.g. 'user*' or '*payment*')")
	pf.StringVar(&f.LogLevel, "log-level", config.DefaultLogLevel, "Engine log level on stderr (debug, info, warn, error)")
}

// ToConfigFlags converts the flags set on cmd's command line to config
// flags. Flags left at their defaults do not override other sources.
func (f *Flags) ToConfigFlags(cmd *cobra.Command) config.Flags {
	changed := func(name string) bool {
		fl := cmd.Flags().Lookup(name)
		return fl != nil && fl.Changed
	}

	cf := config.Flags{ConfigFile: f.ConfigFile, EnvFile: f.EnvFile}
	if changed("verbosity") {
		cf.Verbosity = &f.Verbosity
	}
	if changed("color") {
		cf.Color = &f.Color
	}
	if changed("filter") {
		cf.Filter = &f.Filter
	}
	if changed("progress") {
		cf.Progress = &f.Progress
	}
	if changed("log-level") {
		cf.LogLevel = &f.LogLevel
	}
	return cf
}
