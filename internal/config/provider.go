package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/relayer-registry/internal/domain/config"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	// .env must be loaded before env-backed keys are read
	loadEnvFiles(projectRoot)

	file, source, err := loadRelayregFile(projectRoot)
	if err != nil {
		return nil, err
	}

	limits, err := resolveLimits(file)
	if err != nil {
		return nil, err
	}

	output, ok := config.ParseOutputFormat(strings.ToLower(v.GetString("output")))
	if !ok {
		return nil, fmt.Errorf("unsupported output format %q (expected table, json or yaml)", v.GetString("output"))
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        resolveDataDir(projectRoot, v.GetString("data_dir"), file),
		Limits:         limits,
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Output:         output,
		Timeout:        v.GetDuration("timeout"),
		PrivateKey:     v.GetString("private_key"),
		ConfigSource:   source,
	}

	return cfg, nil
}

// resolveDataDir picks the flag/env value, then relayreg.toml, then the default.
// Relative paths are taken from the project root.
func resolveDataDir(projectRoot, override string, file *config.RelayregFileConfig) string {
	dataDir := override
	if dataDir == "" && file.Storage != nil {
		dataDir = file.Storage.DataDir
	}
	if dataDir == "" {
		dataDir = DefaultDataDir
	}
	if !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(projectRoot, dataDir)
	}
	return dataDir
}

// FindProjectRoot walks up from current directory to find relayreg.toml.
// Without one, the current directory is the project root.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, ConfigFileName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("RELAYREG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", "1m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("output", string(config.OutputTable))
	v.SetDefault("project_root", projectRoot)

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	})

	return v
}
