package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the generation and runtime configuration.
type Config struct {
	AppName     string
	ConfigFile  string
	LogLevel    string
	LogFormat   string
	Debug       bool
	Verbose     bool
	WorkerCount int
	Rows        int
	Seed        uint64
	PageSize    int
	Categories  []string
	Statuses    []string
	ValueMin    float64
	ValueMax    float64
}

// Default returns a Config populated from DATAFORGE_* environment variables
// with built-in fallbacks.
func Default() Config {
	return Config{
		AppName:     envString("DATAFORGE_APP_NAME", "dataforge"),
		LogLevel:    envString("DATAFORGE_LOG_LEVEL", "info"),
		LogFormat:   envString("DATAFORGE_LOG_FORMAT", "text"),
		WorkerCount: envInt("DATAFORGE_WORKERS", 4),
		Rows:        envInt("DATAFORGE_ROWS", 100),
		PageSize:    envInt("DATAFORGE_PAGE_SIZE", 20),
		Categories:  []string{"A", "B", "C", "D"},
		Statuses:    []string{"active", "inactive"},
		ValueMin:    0,
		ValueMax:    100,
	}
}

// LoadConfig reads and parses the configuration file, overriding fields of
// cfg. Lines have the form "key: value"; blank lines and # comments are
// skipped.
func LoadConfig(cfg *Config, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue // Skip empty lines and comments
		}

		// Split on first colon
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid config line format (expected 'key: value'): %s", line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if err := cfg.set(key, value); err != nil {
			return fmt.Errorf("invalid config line %q: %w", line, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

func (cfg *Config) set(key, value string) error {
	switch key {
	case "app_name":
		cfg.AppName = value
	case "log_level":
		cfg.LogLevel = value
	case "log_format":
		cfg.LogFormat = value
	case "workers":
		return setInt(&cfg.WorkerCount, value)
	case "rows":
		return setInt(&cfg.Rows, value)
	case "page_size":
		return setInt(&cfg.PageSize, value)
	case "seed":
		seed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("bad unsigned integer: %w", err)
		}
		cfg.Seed = seed
	case "categories":
		cfg.Categories = splitList(value)
	case "statuses":
		cfg.Statuses = splitList(value)
	case "value_min":
		return setFloat(&cfg.ValueMin, value)
	case "value_max":
		return setFloat(&cfg.ValueMax, value)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// Validate checks the structural settings. Label sets must be non-empty, the
// value range ordered, and counts positive.
func (cfg *Config) Validate() error {
	if cfg.WorkerCount <= 0 {
		return fmt.Errorf("workers must be positive, got %d", cfg.WorkerCount)
	}
	if cfg.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive, got %d", cfg.PageSize)
	}
	if cfg.Rows < 0 {
		return fmt.Errorf("rows must not be negative, got %d", cfg.Rows)
	}
	if cfg.ValueMin >= cfg.ValueMax {
		return fmt.Errorf("value range must be ordered, got [%v, %v]", cfg.ValueMin, cfg.ValueMax)
	}
	if len(cfg.Categories) == 0 {
		return fmt.Errorf("at least one category is required")
	}
	if len(cfg.Statuses) == 0 {
		return fmt.Errorf("at least one status is required")
	}
	return nil
}

// splitList splits a comma-separated value and trims whitespace, dropping
// empty entries.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			list = append(list, part)
		}
	}
	return list
}

func setInt(dst *int, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("bad integer: %w", err)
	}
	*dst = n
	return nil
}

func setFloat(dst *float64, value string) error {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("bad number: %w", err)
	}
	*dst = f
	return nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
