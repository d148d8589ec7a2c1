package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/resproj/resproj/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyDefaultLanguage = "default_language"
	KeyCondaExecutable = "conda_executable"
	KeyProjectVersion  = "project_version"
)

// DefaultCondaExecutable is used when conda_executable is not configured.
const DefaultCondaExecutable = "conda"

// Dir returns the path to the config directory (~/.resproj/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the default config file (~/.resproj/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// PathEnvVar names the environment variable that selects a config file when
// no path is passed to Load.
func PathEnvVar() string {
	return branding.EnvVar("config")
}

// Load initializes Viper to read from the config file and environment.
// An empty path falls back to $RESPROJ_CONFIG, then to FilePath(). Only a
// missing default file is tolerated; a missing explicit file or one that
// does not parse is an error.
func Load(path string) error {
	explicit := true
	if path == "" {
		path = os.Getenv(PathEnvVar())
	}
	if path == "" {
		path = FilePath()
		explicit = false
	}
	viper.SetConfigFile(path)
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	viper.SetDefault(KeyCondaExecutable, DefaultCondaExecutable)

	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if !explicit && (errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)) {
		return nil
	}
	return fmt.Errorf("reading config %s: %w", path, err)
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// DefaultLanguage returns the language applied when none is given on the
// command line. Empty means no language.
func DefaultLanguage() string {
	return Get(KeyDefaultLanguage)
}

// CondaExecutable returns the conda binary to invoke.
func CondaExecutable() string {
	if v := Get(KeyCondaExecutable); v != "" {
		return v
	}
	return DefaultCondaExecutable
}

// ProjectVersion returns the version written to new Julia projects. Empty
// means the built-in default.
func ProjectVersion() string {
	return Get(KeyProjectVersion)
}
