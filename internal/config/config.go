package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/dsatrack/dsatrack/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyRoot       = "root"
	KeyTemplate   = "template"
	KeyTopicsFile = "topics_file"
	KeyReadme     = "readme"
	KeyDifficulty = "difficulty"
)

var defaults = map[string]string{
	KeyRoot:       ".",
	KeyTemplate:   "templates/solution_template.md",
	KeyTopicsFile: "",
	KeyReadme:     "README.md",
	KeyDifficulty: "Easy",
}

// Settings is the resolved configuration for one invocation.
type Settings struct {
	Root       string
	Template   string
	TopicsFile string
	Readme     string
	Difficulty string
}

// Keys returns the known setting keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsKnownKey reports whether key is a recognised setting.
func IsKnownKey(key string) bool {
	_, ok := defaults[key]
	return ok
}

// Dir returns the path to the config directory (~/.dsatrack/). The
// DSA_HOME environment variable overrides it.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("home")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Current returns the resolved settings.
func Current() Settings {
	return Settings{
		Root:       viper.GetString(KeyRoot),
		Template:   viper.GetString(KeyTemplate),
		TopicsFile: viper.GetString(KeyTopicsFile),
		Readme:     viper.GetString(KeyReadme),
		Difficulty: viper.GetString(KeyDifficulty),
	}
}

// Set writes a config key-value pair and saves the config file. Only keys
// already in the file and key itself are written; flag, environment and
// default values of the running process are not persisted.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q (known: %v)", key, Keys())
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()
	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)

	if _, err := os.Stat(configFile); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking config file %s: %w", configFile, err)
	}

	file.Set(key, value)
	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, value)
	return nil
}

// Resolve joins p onto root unless p is empty or absolute.
func (s Settings) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.Root, p)
}
