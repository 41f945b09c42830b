package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/trebuchet-org/relayer-registry/internal/domain/config"
)

// ConfigFileName is the project configuration file looked up from the project root
const ConfigFileName = "relayreg.toml"

// DefaultDataDir is where state lives when no data_dir is configured
const DefaultDataDir = ".relayreg"

// loadEnvFiles loads .env and .env.local from the project root.
// Variables already set in the environment are left untouched.
func loadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// loadRelayregFile parses relayreg.toml. A missing file yields an empty config
// and an empty source path.
func loadRelayregFile(projectRoot string) (*config.RelayregFileConfig, string, error) {
	path := filepath.Join(projectRoot, ConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &config.RelayregFileConfig{}, "", nil
	}

	var cfg config.RelayregFileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, "", fmt.Errorf("unknown keys in %s: %v", ConfigFileName, undecoded)
	}

	if cfg.Storage != nil {
		cfg.Storage.DataDir = os.ExpandEnv(cfg.Storage.DataDir)
	}

	return &cfg, path, nil
}

// resolveLimits overlays the file limits on the defaults and validates them
func resolveLimits(file *config.RelayregFileConfig) (config.Limits, error) {
	limits := file.Limits.Apply(config.DefaultLimits())
	if err := limits.Validate(); err != nil {
		return config.Limits{}, fmt.Errorf("invalid [limits] in %s: %w", ConfigFileName, err)
	}
	return limits, nil
}
