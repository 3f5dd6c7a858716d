package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix namespaces environment overrides, e.g. LUNCHLY_DB_DSN -> db.dsn.
const EnvPrefix = "LUNCHLY_"

var defaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"config/config.yaml",
	"config/config.yml",
}

var defaults = map[string]interface{}{
	"app.env":       "development",
	"server.port":   "8080",
	"server.mode":   "debug",
	"server.origin": "*",
	"db.driver":     "sqlite",
	"db.dsn":        "lunchly.db",
	"db.pool":       10,
	"db.lifetime":   "30m",
	"log.level":     "info",
	"rate.requests": 50,
	"rate.window":   "1s",
}

type Config struct {
	App    AppConfig      `koanf:"app" validate:"required"`
	Server ServerConfig   `koanf:"server" validate:"required"`
	DB     DatabaseConfig `koanf:"db" validate:"required"`
	Log    LogConfig      `koanf:"log"`
	Rate   RateConfig     `koanf:"rate"`
}

type AppConfig struct {
	Env string `koanf:"env" validate:"required,oneof=development production test"`
}

type ServerConfig struct {
	Port   string `koanf:"port" validate:"required,numeric"`
	Mode   string `koanf:"mode" validate:"required,oneof=debug release test"`
	Origin string `koanf:"origin" validate:"required"`
}

type DatabaseConfig struct {
	Driver   string        `koanf:"driver" validate:"required,oneof=mysql postgres sqlite"`
	DSN      string        `koanf:"dsn" validate:"required"`
	Pool     int           `koanf:"pool" validate:"gte=1"`
	Lifetime time.Duration `koanf:"lifetime" validate:"gte=0"`
	// Seed is an optional SQL script executed once at startup.
	Seed string `koanf:"seed"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

type RateConfig struct {
	Requests int           `koanf:"requests" validate:"gte=1"`
	Window   time.Duration `koanf:"window" validate:"gt=0"`
}

// Load merges, in increasing priority: built-in defaults, the first config
// file found in the working directory, and LUNCHLY_* environment variables.
// A .env file, when present, is loaded into the environment first.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(defaultConfigPaths)
}

func load(paths []string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("config: loading defaults: %w", err)
	}

	if path, ok := findConfigFile(paths); ok {
		if err := k.Load(file.Provider(path), koanfyaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: loading %s: %w", path, err)
		}
	}

	transform := func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		s = strings.ReplaceAll(s, "_", ".")
		return strings.ToLower(s)
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", transform), nil); err != nil {
		return nil, fmt.Errorf("config: loading env: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile(paths []string) (string, bool) {
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}
