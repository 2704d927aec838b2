package environment_test

import (
	"testing"
	"time"

	"github.com/mann-127/duoapi/sdk/environment"
)

type testConfig struct {
	Port        string        `env:"PORT" default:":8080"`
	ReadTimeout time.Duration `env:"READ_TIMEOUT" default:"5s"`
	MaxConns    int           `env:"MAX_CONNS" default:"25"`
	Debug       bool          `env:"DEBUG" default:"false"`
	Origins     []string      `env:"ORIGINS" default:"*" separator:","`
	Secret      string        `env:"SECRET" required:"true"`
}

func TestParseEnvTagsDefaults(t *testing.T) {
	t.Setenv("APP_SECRET", "hunter2")

	var cfg testConfig
	if err := environment.ParseEnvTags("APP", &cfg); err != nil {
		t.Fatalf("parse: %v", err)
	}

	if cfg.Port != ":8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.ReadTimeout != 5*time.Second {
		t.Errorf("ReadTimeout = %v", cfg.ReadTimeout)
	}
	if cfg.MaxConns != 25 {
		t.Errorf("MaxConns = %d", cfg.MaxConns)
	}
	if cfg.Debug {
		t.Error("Debug should default false")
	}
	if len(cfg.Origins) != 1 || cfg.Origins[0] != "*" {
		t.Errorf("Origins = %v", cfg.Origins)
	}
	if cfg.Secret != "hunter2" {
		t.Errorf("Secret = %q", cfg.Secret)
	}
}

func TestParseEnvTagsOverrides(t *testing.T) {
	t.Setenv("APP_PORT", ":9000")
	t.Setenv("APP_READ_TIMEOUT", "250ms")
	t.Setenv("APP_MAX_CONNS", "5")
	t.Setenv("APP_DEBUG", "true")
	t.Setenv("APP_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("APP_SECRET", "hunter2")

	var cfg testConfig
	if err := environment.ParseEnvTags("APP", &cfg); err != nil {
		t.Fatalf("parse: %v", err)
	}

	if cfg.Port != ":9000" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.ReadTimeout != 250*time.Millisecond {
		t.Errorf("ReadTimeout = %v", cfg.ReadTimeout)
	}
	if cfg.MaxConns != 5 {
		t.Errorf("MaxConns = %d", cfg.MaxConns)
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
	if len(cfg.Origins) != 2 || cfg.Origins[1] != "https://b.example" {
		t.Errorf("Origins = %v", cfg.Origins)
	}
}

func TestParseEnvTagsRequired(t *testing.T) {
	var cfg testConfig
	err := environment.ParseEnvTags("MISSING", &cfg)
	if err == nil {
		t.Fatal("expected error for missing required variable")
	}
}

func TestParseEnvTagsRejectsNonPointer(t *testing.T) {
	var cfg testConfig
	if err := environment.ParseEnvTags("APP", cfg); err == nil {
		t.Fatal("expected error for non-pointer argument")
	}
}
