package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/ergolog/errors"
)

// EnvPrefix is the prefix of environment variables read by the loader.
const EnvPrefix = "ERGOLOG"

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// Resolver handles finding config and env files.
type Resolver struct {
	FileSystem FileSystem
}

// ResolvedFiles contains the resolved config and env file paths.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles returns explicit paths if provided, otherwise the first
// existing file from the search paths.
func (cr *Resolver) ResolveFiles(opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	}
	if resolved.ConfigFile == "" {
		resolved.ConfigFile = cr.first(configSearchPaths())
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = cr.first([]string{"./.env", "../.env"})
	}
	return resolved
}

func (cr *Resolver) first(paths []string) string {
	for _, path := range paths {
		if cr.FileSystem.Exists(path) {
			return path
		}
	}
	return ""
}

func configSearchPaths() []string {
	paths := []string{
		"./ergolog.yml",
		"./ergolog.yaml",
		"./config/ergolog.yml",
		"../config/ergolog.yml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, fmt.Sprintf("%s/.config/ergolog/config.yml", home))
	}
	return paths
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct env file path (optional)
}

// LoaderOption is a functional option for LoadInto and Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// LoadInto reads the resolved config file, the .env file and ERGOLOG_*
// variables into cfg. Missing files are not an error.
func LoadInto(cfg interface{}, opts ...LoaderOption) error {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	resolver := &Resolver{FileSystem: lc.FileSystem}
	files := resolver.ResolveFiles(lc)

	v := viper.New()
	v.RegisterAlias("default_logger", "root")

	if files.ConfigFile != "" && lc.FileSystem.Exists(files.ConfigFile) {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.ConfigLoad(files.ConfigFile, err)
		}
	}

	if files.EnvFile != "" && lc.FileSystem.Exists(files.EnvFile) {
		if err := lc.FileSystem.LoadEnv(files.EnvFile); err != nil {
			return errors.ConfigLoad(files.EnvFile, err)
		}
	}
	bindPrefixedEnv(v, os.Environ())

	if err := v.Unmarshal(cfg, viper.DecodeHook(flagHook())); err != nil {
		return errors.ConfigLoad("environment", err)
	}
	return nil
}

// bindPrefixedEnv sets every ERGOLOG_<KEY> variable as key <key>.
// Nested keys use a double underscore: ERGOLOG_A__B sets a.b.
func bindPrefixedEnv(v *viper.Viper, environ []string) {
	prefix := EnvPrefix + "_"
	for _, env := range environ {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 || !strings.HasPrefix(pair[0], prefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(pair[0], prefix))
		if key == "" {
			continue
		}
		v.Set(strings.ReplaceAll(key, "__", "."), pair[1])
	}
}

// flagHook decodes strings into bools: any non-empty value is true, matching
// logger.ConfigFromEnv. Booleans from the config file pass through.
func flagHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to.Kind() != reflect.Bool {
			return data, nil
		}
		return strings.TrimSpace(data.(string)) != "", nil
	}
}
