package update

import (
	"testing"

	"github.com/sandeepkv93/daytally/internal/storage"
)

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.Year != 2025 || cfg.Target != 183 {
		t.Fatalf("unexpected year/target defaults: %+v", cfg)
	}
	if cfg.Store != storage.KindSQLite || cfg.LogLevel != "warn" {
		t.Fatalf("unexpected storage/log defaults: %+v", cfg)
	}
	if cfg.TouchThreshold != 10 || !cfg.Animate {
		t.Fatalf("unexpected input defaults: %+v", cfg)
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("DAYTALLY_YEAR", "2024")
	t.Setenv("DAYTALLY_TARGET", "90")
	t.Setenv("DAYTALLY_STORE", "FILE")
	t.Setenv("DAYTALLY_DATA_DIR", "/tmp/daytally")
	t.Setenv("DAYTALLY_LOG_FILE", "/tmp/daytally.log")
	t.Setenv("DAYTALLY_LOG_LEVEL", "debug")
	t.Setenv("DAYTALLY_TOUCH_THRESHOLD", "14.5")
	t.Setenv("DAYTALLY_ANIMATE", "off")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.Year != 2024 || cfg.Target != 90 {
		t.Fatalf("unexpected year/target: %+v", cfg)
	}
	if cfg.Store != storage.KindFile || cfg.DataDir != "/tmp/daytally" {
		t.Fatalf("unexpected storage config: %+v", cfg)
	}
	if cfg.LogFile != "/tmp/daytally.log" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected log config: %+v", cfg)
	}
	if cfg.TouchThreshold != 14.5 || cfg.Animate {
		t.Fatalf("unexpected input config: %+v", cfg)
	}

	opts := cfg.TrackerOptions()
	if opts.Year != 2024 || opts.Target != 90 || opts.TouchThreshold != 14.5 {
		t.Fatalf("unexpected tracker options: %+v", opts)
	}
}

func TestRuntimeConfigIgnoresInvalidEnv(t *testing.T) {
	t.Setenv("DAYTALLY_YEAR", "soon")
	t.Setenv("DAYTALLY_TARGET", "-4")
	t.Setenv("DAYTALLY_TOUCH_THRESHOLD", "far")
	t.Setenv("DAYTALLY_ANIMATE", "maybe")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg != DefaultRuntimeConfig() {
		t.Fatalf("invalid values should keep defaults, got %+v", cfg)
	}
}
