package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

const insecureJWTSecret = "supersecretkey"

type Config struct {
	Addr          string          `yaml:"addr"`
	JWTSecret     string          `yaml:"jwt_secret"`
	APITimeout    time.Duration   `yaml:"timeout"`
	TokenDuration time.Duration   `yaml:"token_duration"`
	StoreBackend  string          `yaml:"store_backend"`
	DatabasePath  string          `yaml:"database_path"`
	MaxBodyBytes  int64           `yaml:"max_body_bytes"`
	Ollama        OllamaConfig    `yaml:"ollama"`
	Generator     GeneratorConfig `yaml:"generator"`
}

type GeneratorConfig struct {
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

type OllamaConfig struct {
	BaseURL                 string        `yaml:"base_url"`
	Timeout                 time.Duration `yaml:"timeout"`
	Retries                 int           `yaml:"retries"`
	Backoff                 time.Duration `yaml:"backoff"`
	CircuitFailureThreshold int           `yaml:"circuit_failure_threshold"`
	CircuitReset            time.Duration `yaml:"circuit_reset"`
}

func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:          getEnv("JOBBOARD_ADDR", ":8080"),
		JWTSecret:     getEnv("JOBBOARD_JWT_SECRET", insecureJWTSecret),
		APITimeout:    15 * time.Second,
		TokenDuration: 1 * time.Hour,
		StoreBackend:  getEnv("JOBBOARD_STORE", BackendMemory),
		DatabasePath:  getEnv("JOBBOARD_DATABASE_PATH", "jobboard.db"),
		// embedded photos in generation requests make bodies large
		MaxBodyBytes: 10 << 20,
		Ollama: OllamaConfig{
			BaseURL:                 getEnv("JOBBOARD_OLLAMA_URL", "http://localhost:11434"),
			Timeout:                 30 * time.Second,
			Retries:                 2,
			Backoff:                 500 * time.Millisecond,
			CircuitFailureThreshold: 5,
			CircuitReset:            30 * time.Second,
		},
		Generator: GeneratorConfig{
			Model:   getEnv("JOBBOARD_GENERATOR_MODEL", "llama3"),
			Timeout: 60 * time.Second,
		},
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate rejects configurations that cannot serve: unknown store backend,
// sqlite without a database path, non-positive body ceiling, and the insecure
// default JWT secret outside development.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	switch c.StoreBackend {
	case BackendMemory:
	case BackendSQLite:
		if c.DatabasePath == "" {
			return fmt.Errorf("database_path is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("unknown store backend %q", c.StoreBackend)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be positive")
	}
	if c.JWTSecret == insecureJWTSecret && os.Getenv("JOBBOARD_ENV") != "development" {
		return fmt.Errorf("insecure default jwt_secret outside development")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
