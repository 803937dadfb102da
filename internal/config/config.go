package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/routewalk/routewalk/internal/errors"
)

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "routewalk.yaml"

	// DefaultRoutesDir is the default routes directory, relative to the
	// project root.
	DefaultRoutesDir = "app/routes"

	// DefaultIndexMarker is the filename that collapses to its parent path.
	DefaultIndexMarker = "index"

	// DefaultExtension is the file extension route files must carry.
	DefaultExtension = ".go"

	// DefaultDebounce is the delay between a filesystem event and a rescan
	// in watch mode.
	DefaultDebounce = 100 * time.Millisecond
)

// Config represents the complete routewalk.yaml configuration.
type Config struct {
	// Routes is the path to the routes directory.
	Routes string `yaml:"routes,omitempty" env:"ROUTEWALK_ROUTES"`

	// IndexMarker is the filename (without extension) that maps to its
	// parent directory's path.
	IndexMarker string `yaml:"indexMarker,omitempty" env:"ROUTEWALK_INDEX_MARKER"`

	// Extension is the file extension of route files.
	Extension string `yaml:"extension,omitempty" env:"ROUTEWALK_EXTENSION"`

	// Exclude contains glob patterns for files the scanner skips.
	Exclude []string `yaml:"exclude,omitempty" env:"ROUTEWALK_EXCLUDE" envSeparator:","`

	// Watch contains settings for the development watcher.
	Watch WatchConfig `yaml:"watch,omitempty"`

	// configPath stores the path the config was loaded from.
	configPath string
}

// WatchConfig contains development watcher settings.
type WatchConfig struct {
	// Debounce is the delay between a filesystem event and a rescan,
	// as a duration string (e.g. "100ms").
	Debounce string `yaml:"debounce,omitempty" env:"ROUTEWALK_WATCH_DEBOUNCE"`

	// Ignore contains glob patterns the watcher does not react to.
	Ignore []string `yaml:"ignore,omitempty" env:"ROUTEWALK_WATCH_IGNORE" envSeparator:","`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Routes:      DefaultRoutesDir,
		IndexMarker: DefaultIndexMarker,
		Extension:   DefaultExtension,
	}
}

// Load reads configuration from the specified directory. It looks for
// routewalk.yaml in the directory, then applies environment overrides.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.CodeConfigNotFound).
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path))
		}
		return nil, errors.New(errors.CodeConfigInvalid).Wrap(err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New(errors.CodeConfigInvalid).
			WithFile(path).
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid YAML")
	}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.New(errors.CodeConfigInvalid).
			WithDetail("Failed to read environment overrides: " + err.Error())
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads configuration from the given directory, falling back
// to the defaults (still honoring environment overrides) when no
// routewalk.yaml exists. Any other error is returned as-is.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if err == nil {
		return cfg, nil
	}
	if !errors.IsCode(err, errors.CodeConfigNotFound) {
		return nil, err
	}

	cfg = New()
	if perr := env.Parse(cfg); perr != nil {
		return nil, errors.New(errors.CodeConfigInvalid).
			WithDetail("Failed to read environment overrides: " + perr.Error())
	}
	cfg.configPath = filepath.Join(dir, ConfigFileName)
	cfg.applyDefaults()

	if verr := cfg.Validate(); verr != nil {
		return nil, verr
	}
	return cfg, nil
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Routes == "" {
		c.Routes = DefaultRoutesDir
	}
	if c.IndexMarker == "" {
		c.IndexMarker = DefaultIndexMarker
	}
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Extension != "" && c.Extension[0] != '.' {
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("extension must start with a dot, got " + c.Extension)
	}
	if c.Watch.Debounce != "" {
		d, err := time.ParseDuration(c.Watch.Debounce)
		if err != nil {
			return errors.New(errors.CodeConfigInvalid).
				WithDetail("watch.debounce is not a valid duration: " + c.Watch.Debounce)
		}
		if d < 0 {
			return errors.New(errors.CodeConfigInvalid).
				WithDetail("watch.debounce must not be negative")
		}
	}
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// RoutesPath returns the absolute path to the routes directory.
func (c *Config) RoutesPath() string {
	if filepath.IsAbs(c.Routes) {
		return c.Routes
	}
	return filepath.Join(c.Dir(), c.Routes)
}

// Debounce returns the watcher debounce interval.
func (c *Config) Debounce() time.Duration {
	if c.Watch.Debounce == "" {
		return DefaultDebounce
	}
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil || d <= 0 {
		return DefaultDebounce
	}
	return d
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing routewalk.yaml, or an error if
// none is found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New(errors.CodeConfigNotFound).
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working
// directory, walking upward to the project root.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}
	return Load(root)
}
