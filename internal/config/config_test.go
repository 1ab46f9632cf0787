package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("expected LogLevel %s, got %s", DefaultLogLevel, cfg.LogLevel)
	}
	if cfg.NoColor || cfg.Quiet || cfg.Inspect {
		t.Errorf("expected output switches to be off by default, got %+v", cfg)
	}
	if cfg.Filter != "" {
		t.Errorf("expected empty filter, got %s", cfg.Filter)
	}
}

func TestConfig_ApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		flags    Flags
		expected Config
	}{
		{
			name:     "no flags keeps values",
			config:   &Config{Filter: "*add*", LogLevel: "warn"},
			flags:    Flags{},
			expected: Config{Filter: "*add*", LogLevel: "warn"},
		},
		{
			name:     "flags override values",
			config:   &Config{Filter: "*add*", LogLevel: "warn"},
			flags:    Flags{NameFilter: "*divide*", LogLevel: "debug", Quiet: true},
			expected: Config{Filter: "*divide*", LogLevel: "debug", Quiet: true},
		},
		{
			name:     "boolean flags only switch on",
			config:   &Config{NoColor: true},
			flags:    Flags{Inspect: true},
			expected: Config{NoColor: true, Inspect: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.config.ApplyFlags(tt.flags)
			tt.expected.Flags = tt.flags
			if *tt.config != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, *tt.config)
			}
		})
	}
}

func TestConfig_LoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rasty.yaml")
	content := "no_color: true\nfilter: \"Calculator/Add/*\"\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg := New()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.NoColor {
		t.Error("expected no_color to be loaded")
	}
	if cfg.Filter != "Calculator/Add/*" {
		t.Errorf("expected filter Calculator/Add/*, got %s", cfg.Filter)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.LogLevel)
	}
	if cfg.Quiet {
		t.Error("expected quiet to keep its default")
	}

	t.Run("returns error for missing file", func(t *testing.T) {
		if err := New().LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("returns error for invalid yaml", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.yaml")
		os.WriteFile(bad, []byte("quiet: [not a bool"), 0644)
		if err := New().LoadFile(bad); err == nil {
			t.Error("expected error for invalid yaml")
		}
	})
}

func TestConfig_LoadEnv(t *testing.T) {
	t.Run("environment variables", func(t *testing.T) {
		t.Setenv("RASTY_QUIET", "true")
		t.Setenv("RASTY_FILTER", "*divide*")
		t.Setenv("RASTY_LOG_LEVEL", "warn")

		cfg := New()
		if err := cfg.LoadEnv(""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cfg.Quiet || cfg.Filter != "*divide*" || cfg.LogLevel != "warn" {
			t.Errorf("environment not applied: %+v", cfg)
		}
	})

	t.Run("env file", func(t *testing.T) {
		t.Setenv("RASTY_NO_COLOR", "")
		os.Unsetenv("RASTY_NO_COLOR")
		envFile := filepath.Join(t.TempDir(), ".env")
		if err := os.WriteFile(envFile, []byte("RASTY_NO_COLOR=1\n"), 0644); err != nil {
			t.Fatalf("failed to write env file: %v", err)
		}

		cfg := New()
		if err := cfg.LoadEnv(envFile); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cfg.NoColor {
			t.Error("expected RASTY_NO_COLOR from env file to be applied")
		}
	})

	t.Run("missing env file is ignored", func(t *testing.T) {
		if err := New().LoadEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("invalid boolean", func(t *testing.T) {
		t.Setenv("RASTY_INSPECT", "sometimes")
		if err := New().LoadEnv(""); err == nil {
			t.Error("expected error for invalid boolean")
		}
	})
}

func TestConfig_GetLogLevel(t *testing.T) {
	cfg := &Config{LogLevel: "debug"}
	level, err := cfg.GetLogLevel()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if level != logrus.DebugLevel {
		t.Errorf("expected debug level, got %s", level)
	}

	cfg.LogLevel = "loud"
	if _, err := cfg.GetLogLevel(); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, err := cfg.NewLogger(); err == nil {
		t.Error("expected NewLogger to fail for unknown level")
	}
}
