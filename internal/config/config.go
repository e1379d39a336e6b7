/*
Package config holds the runtime settings of the interpreter.
*/
package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// DirName is the per-user directory under $HOME.
	DirName = ".minish"
	// AliasFileName is the default predefined alias file inside DirName.
	AliasFileName = "aliases.yaml"
	// AliasFileEnv overrides the default alias file location.
	AliasFileEnv = "MINISH_ALIASES"
	// DefaultMaxLineLength matches the input buffer of the classic interpreter.
	DefaultMaxLineLength = 1024
)

// Config is assembled from command-line flags.
type Config struct {
	AliasFile     string `yaml:"alias_file"`
	MaxLineLength int    `yaml:"max_line" validate:"gte=2"`
	LogFile       string `yaml:"log_file"`
	NoColor       bool   `yaml:"no_color"`
}

// Default returns the configuration used when no flag overrides it.
func Default() *Config {
	return &Config{
		AliasFile:     DefaultAliasFile(),
		MaxLineLength: DefaultMaxLineLength,
	}
}

/*
DefaultAliasFile returns $MINISH_ALIASES when set and $HOME/.minish/aliases.yaml
otherwise. Without a resolvable home directory it returns "", which disables
predefined aliases.
*/
func DefaultAliasFile() string {
	if path := os.Getenv(AliasFileEnv); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DirName, AliasFileName)
}

// Validate the configuration for basic semantic errors.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
	})
	return validate.Struct(c)
}
