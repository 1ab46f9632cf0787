package config

const (
	// DefaultLogLevel is the default diagnostic log level
	DefaultLogLevel = "info"
	// DefaultEnvFile is the optional dotenv file read at startup
	DefaultEnvFile = ".env"
	// EnvPrefix prefixes every environment variable read by LoadEnv
	EnvPrefix = "RASTY_"
)
