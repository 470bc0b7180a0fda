package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr          string        `yaml:"addr"`
	JWTSecret     string        `yaml:"jwt_secret"`
	APITimeout    time.Duration `yaml:"timeout"`
	DatabasePath  string        `yaml:"database_path"`
	TokenDuration time.Duration `yaml:"token_duration"`

	// RemoteBaseURL is where the client core reaches the remote store
	// (the /api action endpoint served by cmd/server).
	RemoteBaseURL string `yaml:"remote_base_url"`

	// MirrorWorkers is the number of goroutines draining the outbound
	// mirror queue on the client side.
	MirrorWorkers int `yaml:"mirror_workers"`

	Match MatchConfig `yaml:"match"`
}

// MatchConfig configures the generative ranking oracle. An empty BaseURL
// disables the model entirely and the heuristic ranker is used alone.
type MatchConfig struct {
	BaseURL string        `yaml:"base_url"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:          getEnv("SWAP_ADDR", ":8080"),
		JWTSecret:     getEnv("SWAP_JWT_SECRET", "supersecretkey"),
		APITimeout:    15 * time.Second,
		DatabasePath:  getEnv("SWAP_DATABASE_PATH", "skillswap.db"),
		TokenDuration: 1 * time.Hour,
		RemoteBaseURL: getEnv("SWAP_REMOTE_URL", "http://localhost:8080"),
		MirrorWorkers: 2,
		Match: MatchConfig{
			BaseURL: getEnv("SWAP_OLLAMA_URL", ""),
			Model:   getEnv("SWAP_OLLAMA_MODEL", "llama3.2"),
			Timeout: 20 * time.Second,
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

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
