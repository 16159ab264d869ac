package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

const (
	defaultRoundPrecision = 2
	defaultDistanceMetric = "euclidean"
)

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn("error reading geometry config file, falling back to defaults and environment", "path", configPath, "err", err)
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

func (c *Config) GetRoundPrecision() int {
	if c.config.IsSet("ROUND_PRECISION") {
		return c.config.GetInt("ROUND_PRECISION")
	}
	if c.config.IsSet("geometry.roundprecision") {
		return c.config.GetInt("geometry.roundprecision")
	}

	return defaultRoundPrecision
}

func (c *Config) GetDistanceMetric() string {
	metric := c.config.GetString("DISTANCE_METRIC")
	if len(metric) == 0 {
		metric = c.config.GetString("geometry.metric")
	}
	if len(metric) == 0 {
		metric = defaultDistanceMetric
	}

	return metric
}

// GetRandomSeed returns the configured seed and whether one was set.
func (c *Config) GetRandomSeed() (int64, bool) {
	if c.config.IsSet("RANDOM_SEED") {
		return c.config.GetInt64("RANDOM_SEED"), true
	}
	if c.config.IsSet("random.seed") {
		return c.config.GetInt64("random.seed"), true
	}

	return 0, false
}

func (c *Config) GetScatterCount() int {
	scatterCount := c.config.GetInt("SCATTER_COUNT")
	if scatterCount == 0 {
		scatterCount = c.config.GetInt("scatter.count")
	}

	return scatterCount
}

// GetScatterArea returns the corners of the box random points are drawn from.
func (c *Config) GetScatterArea() (xmin, ymin, xmax, ymax float64) {
	return c.getFloat("SCATTER_AREA_XMIN", "scatter.area.xmin"),
		c.getFloat("SCATTER_AREA_YMIN", "scatter.area.ymin"),
		c.getFloat("SCATTER_AREA_XMAX", "scatter.area.xmax"),
		c.getFloat("SCATTER_AREA_YMAX", "scatter.area.ymax")
}

func (c *Config) GetLogLevel() string {
	logLevel := c.config.GetString("LOG_LEVEL")
	if len(logLevel) == 0 {
		logLevel = c.config.GetString("log.level")
	}

	return logLevel
}

func (c *Config) getFloat(envKey, fileKey string) float64 {
	if c.config.IsSet(envKey) {
		return c.config.GetFloat64(envKey)
	}

	return c.config.GetFloat64(fileKey)
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("no config directory above the working directory, geometry settings come from the environment", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("no config file for this environment, geometry settings come from the environment", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
