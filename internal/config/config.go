// Package config provides configuration management for the nextline
// commands and library defaults. It merges configuration from multiple
// sources with proper precedence.
//
// Configuration precedence (highest to lowest):
// 1. Command-line arguments
// 2. Environment variables (NEXTLINE_ prefix)
// 3. YAML configuration file
// 4. Default values
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/linecast/nextline/internal/constants"
	"github.com/linecast/nextline/internal/errors"
)

const (
	// DefaultLogLevel specifies the default log level (obviously)
	DefaultLogLevel string = "info"
	// NoConfigFile disables config file loading when passed as -cfg value.
	NoConfigFile string = "none"
)

// CommonConfig holds the settings shared by all nextline commands.
type CommonConfig struct {
	// ChunkSize is the size of one bounded read from a descriptor.
	ChunkSize int `yaml:"chunkSize"`
	// MaxDescriptors is the highest accepted descriptor number.
	MaxDescriptors int `yaml:"maxDescriptors"`
	// LogLevel is the logrus level name.
	LogLevel string `yaml:"logLevel"`
	// TermColorsEnable turns ANSI colors on terminal output on or off.
	TermColorsEnable bool `yaml:"termColors"`
}

// Common holds the active configuration. This global variable provides
// access to the settings after Setup ran.
var Common *CommonConfig

func newDefaultCommonConfig() *CommonConfig {
	return &CommonConfig{
		ChunkSize:        constants.DefaultChunkSize,
		MaxDescriptors:   constants.DefaultMaxDescriptors,
		LogLevel:         DefaultLogLevel,
		TermColorsEnable: true,
	}
}

// Setup initializes the nextline configuration from all sources and makes
// the result available via the Common global. It panics on configuration
// errors so that a command cannot start with invalid configuration.
func Setup(args *Args) {
	initializer := initializer{Common: newDefaultCommonConfig()}
	if err := initializer.parseConfig(args); err != nil {
		panic(err)
	}
	if err := initializer.transformConfig(args); err != nil {
		panic(err)
	}

	// Make config accessible globally
	Common = initializer.Common
}

type initializer struct {
	Common *CommonConfig
}

// parseConfig reads the YAML configuration file, if one is configured.
func (i *initializer) parseConfig(args *Args) error {
	path := args.ConfigFile
	if path == "" {
		path = os.Getenv("NEXTLINE_CONFIG")
	}
	if path == "" || path == NoConfigFile {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "unable to read config file %s", path)
	}
	if err := yaml.Unmarshal(data, i.Common); err != nil {
		return errors.Wrapf(err, "unable to parse config file %s", path)
	}
	return nil
}

// transformConfig applies environment variables and command line arguments
// on top of the file configuration and validates the result.
func (i *initializer) transformConfig(args *Args) error {
	if s := os.Getenv("NEXTLINE_LOG_LEVEL"); s != "" {
		i.Common.LogLevel = s
	}
	if n, ok := EnvInt("NEXTLINE_CHUNK_SIZE"); ok {
		i.Common.ChunkSize = n
	}
	if n, ok := EnvInt("NEXTLINE_MAX_DESCRIPTORS"); ok {
		i.Common.MaxDescriptors = n
	}
	if Env("NEXTLINE_NO_COLOR") {
		i.Common.TermColorsEnable = false
	}

	if args.LogLevel != "" {
		i.Common.LogLevel = args.LogLevel
	}
	if args.ChunkSize > 0 {
		i.Common.ChunkSize = args.ChunkSize
	}
	if args.NoColor {
		i.Common.TermColorsEnable = false
	}

	return i.validate()
}

func (i *initializer) validate() error {
	if i.Common.ChunkSize < constants.MinChunkSize ||
		i.Common.ChunkSize > constants.MaxChunkSize {
		return errors.Wrapf(errors.ErrInvalidConfig,
			"chunk size %d out of range [%d,%d]", i.Common.ChunkSize,
			constants.MinChunkSize, constants.MaxChunkSize)
	}
	if i.Common.MaxDescriptors <= 0 {
		return errors.Wrapf(errors.ErrInvalidConfig,
			"max descriptors must be positive, got %d", i.Common.MaxDescriptors)
	}
	return nil
}
