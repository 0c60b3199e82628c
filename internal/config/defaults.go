package config

const (
	// DefaultVerbosity is the verbosity when nothing sets it: silent
	DefaultVerbosity = 0
	// DefaultVerbosityEnv is the environment variable holding the verbosity
	DefaultVerbosityEnv = "TEST_VERBOSITY"
	// DefaultEnvFile is the dotenv file read from the working directory
	DefaultEnvFile = ".env"
	// DefaultColor is the default color mode
	DefaultColor = ColorAuto
	// DefaultLogLevel disables engine logging
	DefaultLogLevel = ""
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ColorModes lists the accepted color modes
var ColorModes = []string{ColorAuto, ColorAlways, ColorNever}
