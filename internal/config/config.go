package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultEndpoint   = "https://pokeapi.co/api/v2/pokemon"
	DefaultPokemon    = "1"
	DefaultTimeout    = 10 * time.Second
	DefaultDebounce   = 300 * time.Millisecond
	DefaultPageSize   = 6
	DefaultLogFile    = "lazypokemon.log"
	DefaultLogLevel   = "info"
	DefaultConfigFile = "lazypokemon.yaml"
)

type Config struct {
	Endpoint string        `yaml:"endpoint"`
	Pokemon  string        `yaml:"pokemon"`
	Timeout  time.Duration `yaml:"timeout"`
	Debounce time.Duration `yaml:"debounce"`
	PageSize int           `yaml:"moves_page_size"`
	LogFile  string        `yaml:"log_file"`
	LogLevel string        `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Endpoint: DefaultEndpoint,
		Pokemon:  DefaultPokemon,
		Timeout:  DefaultTimeout,
		Debounce: DefaultDebounce,
		PageSize: DefaultPageSize,
		LogFile:  DefaultLogFile,
		LogLevel: DefaultLogLevel,
	}
}

// Load applies defaults, then the YAML file at path (a missing file is not an
// error), then environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := cfg.mergeFile(path); err != nil {
		return Config{}, err
	}
	if err := cfg.mergeEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if v := strings.TrimSpace(file.Endpoint); v != "" {
		c.Endpoint = v
	}
	if v := strings.TrimSpace(file.Pokemon); v != "" {
		c.Pokemon = v
	}
	if file.Timeout != 0 {
		c.Timeout = file.Timeout
	}
	if file.Debounce != 0 {
		c.Debounce = file.Debounce
	}
	if file.PageSize != 0 {
		c.PageSize = file.PageSize
	}
	if file.LogFile != "" {
		c.LogFile = strings.TrimSpace(file.LogFile)
	}
	if v := strings.TrimSpace(file.LogLevel); v != "" {
		c.LogLevel = v
	}
	return nil
}

func (c *Config) mergeEnv() error {
	if v := strings.TrimSpace(os.Getenv("POKEAPI_ENDPOINT")); v != "" {
		c.Endpoint = v
	}
	if v := strings.TrimSpace(os.Getenv("POKEMON_ID")); v != "" {
		c.Pokemon = v
	}
	if v := strings.TrimSpace(os.Getenv("FETCH_TIMEOUT_IN_SECONDS")); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid env FETCH_TIMEOUT_IN_SECONDS: %w", err)
		}
		c.Timeout = time.Duration(parsed) * time.Second
	}
	if v := strings.TrimSpace(os.Getenv("DEBOUNCE_IN_MS")); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid env DEBOUNCE_IN_MS: %w", err)
		}
		c.Debounce = time.Duration(parsed) * time.Millisecond
	}
	if v := strings.TrimSpace(os.Getenv("MOVES_PAGE_SIZE")); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid env MOVES_PAGE_SIZE: %w", err)
		}
		c.PageSize = parsed
	}
	if v, ok := os.LookupEnv("LOG_FILE"); ok {
		c.LogFile = strings.TrimSpace(v)
	}
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		c.LogLevel = v
	}
	return nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Endpoint) == "" {
		return errors.New("endpoint must not be empty")
	}
	if strings.TrimSpace(c.Pokemon) == "" {
		return errors.New("pokemon must not be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive, got %s", c.Debounce)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("moves page size must be positive, got %d", c.PageSize)
	}
	return nil
}
