package cli

import "rasty/internal/config"

// Flags holds command-line flags
type Flags struct {
	NoColor    bool
	Quiet      bool
	Inspect    bool
	NameFilter string
	LogLevel   string
	ConfigFile string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		NoColor:    f.NoColor,
		Quiet:      f.Quiet,
		Inspect:    f.Inspect,
		NameFilter: f.NameFilter,
		LogLevel:   f.LogLevel,
		ConfigFile: f.ConfigFile,
	}
}
