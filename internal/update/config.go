package update

import (
	"os"
	"strconv"
	"strings"

	"github.com/sandeepkv93/daytally/internal/selection"
	"github.com/sandeepkv93/daytally/internal/storage"
	"github.com/sandeepkv93/daytally/internal/tracker"
)

const DefaultYear = 2025

type RuntimeConfig struct {
	Year           int
	Target         int
	Store          storage.Kind
	DataDir        string
	LogFile        string
	LogLevel       string
	TouchThreshold float64
	Animate        bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Year:           DefaultYear,
		Target:         selection.DefaultTarget,
		Store:          storage.KindSQLite,
		LogLevel:       "warn",
		TouchThreshold: tracker.DefaultTouchThreshold,
		Animate:        true,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvInt("DAYTALLY_YEAR"); ok && v > 0 {
		cfg.Year = v
	}
	if v, ok := getEnvInt("DAYTALLY_TARGET"); ok && v > 0 {
		cfg.Target = v
	}
	if v, ok := getEnvString("DAYTALLY_STORE"); ok {
		cfg.Store = storage.Kind(strings.ToLower(v))
	}
	if v, ok := getEnvString("DAYTALLY_DATA_DIR"); ok {
		cfg.DataDir = v
	}
	if v, ok := getEnvString("DAYTALLY_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := getEnvString("DAYTALLY_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := getEnvFloat("DAYTALLY_TOUCH_THRESHOLD"); ok && v > 0 {
		cfg.TouchThreshold = v
	}
	if v, ok := getEnvBool("DAYTALLY_ANIMATE"); ok {
		cfg.Animate = v
	}
	return cfg
}

// TrackerOptions maps the config onto the engine's options.
func (c RuntimeConfig) TrackerOptions() tracker.Options {
	return tracker.Options{
		Year:           c.Year,
		Target:         c.Target,
		TouchThreshold: c.TouchThreshold,
	}
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	return raw, raw != ""
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvFloat(name string) (float64, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
