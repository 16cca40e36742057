package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the mossy API configuration.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	IC       ICConfig       `yaml:"ic"`
	Comparer ComparerConfig `yaml:"comparer"`
	Auth     AuthConfig     `yaml:"auth"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// DatabaseConfig holds closure-store settings.
type DatabaseConfig struct {
	Driver string `yaml:"driver"` // sqlite (default)
	Path   string `yaml:"path"`
}

// ICConfig holds information-content source settings.
type ICConfig struct {
	Source           string   `yaml:"source"` // none (default), redis
	Addrs            []string `yaml:"addrs"`
	Password         string   `yaml:"password"`
	KeyPrefix        string   `yaml:"key_prefix"`
	Cache            bool     `yaml:"cache"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// ComparerConfig holds the similarity comparer parameters.
type ComparerConfig struct {
	DistanceThreshold  *int               `yaml:"distance_threshold"` // default 3
	WeightThreshold    *float64           `yaml:"weight_threshold"`   // default 0.3
	DefaultWeight      *float64           `yaml:"default_weight"`     // default 0.7, ignored with log_scale
	HierarchyWeight    *float64           `yaml:"hierarchy_weight"`   // default 0.8
	DiscoverSubclasses bool               `yaml:"discover_subclasses"`
	PropertyWeights    map[string]float64 `yaml:"property_weights"` // property IRI -> weight
	LogScale           LogScaleConfig     `yaml:"log_scale"`
}

// LogScaleConfig directs frequency-based property weighting.
type LogScaleConfig struct {
	Enabled  bool    `yaml:"enabled"`
	ScaleMin float64 `yaml:"scale_min"`
	ScaleMax float64 `yaml:"scale_max"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.IC.Source == "" {
		c.IC.Source = "none"
	}
	if c.IC.KeyPrefix == "" {
		c.IC.KeyPrefix = "mossy:"
	}
	if c.IC.ReadinessTimeout <= 0 {
		c.IC.ReadinessTimeout = 10
	}

	if c.Comparer.DistanceThreshold == nil {
		c.Comparer.DistanceThreshold = intPtr(3)
	}
	if c.Comparer.WeightThreshold == nil {
		c.Comparer.WeightThreshold = floatPtr(0.3)
	}
	if c.Comparer.DefaultWeight == nil {
		c.Comparer.DefaultWeight = floatPtr(0.7)
	}
	if c.Comparer.HierarchyWeight == nil {
		c.Comparer.HierarchyWeight = floatPtr(0.8)
	}
	if c.Comparer.LogScale.Enabled && c.Comparer.LogScale.ScaleMax == 0 {
		c.Comparer.LogScale.ScaleMax = 1
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.Database.Driver != "sqlite" {
		return fmt.Errorf("database.driver must be \"sqlite\", got %q", c.Database.Driver)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}

	switch c.IC.Source {
	case "none":
	case "redis":
		if len(c.IC.Addrs) == 0 {
			return fmt.Errorf("ic.addrs is required when ic.source is \"redis\"")
		}
	default:
		return fmt.Errorf("ic.source must be \"none\" or \"redis\", got %q", c.IC.Source)
	}

	if *c.Comparer.DistanceThreshold < 0 {
		return fmt.Errorf("comparer.distance_threshold must be non-negative, got %d", *c.Comparer.DistanceThreshold)
	}
	if err := checkUnit("comparer.weight_threshold", *c.Comparer.WeightThreshold); err != nil {
		return err
	}
	if err := checkUnit("comparer.default_weight", *c.Comparer.DefaultWeight); err != nil {
		return err
	}
	if err := checkUnit("comparer.hierarchy_weight", *c.Comparer.HierarchyWeight); err != nil {
		return err
	}
	for iri, w := range c.Comparer.PropertyWeights {
		if err := checkUnit(fmt.Sprintf("comparer.property_weights[%s]", iri), w); err != nil {
			return err
		}
	}
	if ls := c.Comparer.LogScale; ls.Enabled && ls.ScaleMin > ls.ScaleMax {
		return fmt.Errorf("comparer.log_scale: scale_min %v exceeds scale_max %v", ls.ScaleMin, ls.ScaleMax)
	}
	return nil
}

// checkUnit validates that a decay weight lies in [0,1]; out-of-range
// weights would break the similarity-in-[0,1] invariant.
func checkUnit(name string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%s must be in [0,1], got %v", name, v)
	}
	return nil
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
