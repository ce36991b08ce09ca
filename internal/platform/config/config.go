package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is used when no deployment address is configured, matching
// a service running next to the client.
const DefaultBaseURL = "http://localhost:8000"

// RequestTimeout is the fixed timeout applied to every gateway call.
const RequestTimeout = 30 * time.Second

type Config struct {
	BaseURL string
	DataDir string
	Timeout time.Duration
}

type fileConfig struct {
	BaseURL string `yaml:"base_url"`
}

// New resolves configuration for a run. Precedence for the base URL:
// explicit flag, AIACT_API_BASE_URL, config.yaml in the data dir, default.
func New(dataDir, baseURL string) (Config, error) {
	_ = godotenv.Load()

	if dataDir == "" {
		dataDir = os.Getenv("AIACT_DATA_DIR")
	}
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		dataDir = filepath.Join(home, ".aiact")
	}

	if baseURL == "" {
		baseURL = os.Getenv("AIACT_API_BASE_URL")
	}
	if baseURL == "" {
		fromFile, err := readFileConfig(filepath.Join(dataDir, "config.yaml"))
		if err != nil {
			return Config{}, err
		}
		baseURL = fromFile
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return Config{
		BaseURL: strings.TrimRight(baseURL, "/"),
		DataDir: dataDir,
		Timeout: RequestTimeout,
	}, nil
}

func readFileConfig(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return "", fmt.Errorf("decode config file: %w", err)
	}
	return fc.BaseURL, nil
}

// DBPath locates the sqlite database holding the durable session pair.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "aiact.db")
}

// DownloadDir is where fetched compliance reports are saved.
func (c Config) DownloadDir() string {
	return filepath.Join(c.DataDir, "reports")
}
