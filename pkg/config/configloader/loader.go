// Package configloader loads service configuration from a YAML file, a .env file and the environment.
package configloader

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Validator interface {
	Validate() error
}

type options struct {
	configFile string
	envFile    string
}

// Option overrides a loader default.
type Option func(*options)

// WithConfigFile sets the YAML file to read. Defaults to config.yaml.
func WithConfigFile(path string) Option {
	return func(o *options) { o.configFile = path }
}

// WithEnvFile sets the dotenv file to read. Defaults to .env.
func WithEnvFile(path string) Option {
	return func(o *options) { o.envFile = path }
}

// Load builds a T from, in increasing priority, the YAML file, the dotenv file and
// environment variables prefixed with <SERVICENAME>_. Nested keys use "_" as separator,
// so INVENTORY_CATALOG_SOURCE sets catalog.source. Missing files are not an error.
func Load[T Validator](serviceName string, opts ...Option) (T, error) {
	o := options{configFile: "config.yaml", envFile: ".env"}
	for _, opt := range opts {
		opt(&o)
	}

	var cfg T
	k := koanf.New(".")
	keys := envKeys{prefix: strings.ToUpper(serviceName) + "_"}

	if err := loadYAML(k, o.configFile); err != nil {
		return cfg, err
	}
	loadDotEnv(k, o.envFile, keys)
	if err := k.Load(env.Provider(keys.prefix, ".", keys.path), nil); err != nil {
		slog.Warn("Ignoring environment variables", "error", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// envKeys maps SERVICE_SECTION_KEY variables to section.key paths.
type envKeys struct {
	prefix string
}

func (e envKeys) owns(name string) bool {
	return strings.HasPrefix(strings.ToUpper(name), e.prefix)
}

func (e envKeys) path(name string) string {
	name = strings.ToLower(name[len(e.prefix):])
	return strings.ReplaceAll(name, "_", ".")
}

func loadYAML(k *koanf.Koanf, path string) error {
	err := k.Load(file.Provider(path), yaml.Parser())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error loading YAML config file '%s': %w", path, err)
	}
	return nil
}

// loadDotEnv applies the service's variables from a dotenv file. A broken file is logged and skipped.
func loadDotEnv(k *koanf.Koanf, path string, keys envKeys) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("Ignoring unreadable env file", "path", path, "error", err)
		}
		return
	}
	values := make(map[string]any, len(vars))
	for name, value := range vars {
		if keys.owns(name) {
			values[keys.path(name)] = value
		}
	}
	if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
		slog.Warn("Ignoring env file", "path", path, "error", err)
	}
}
