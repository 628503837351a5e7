package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by the CLI
const EnvPrefix = "VIDEOSAVER"

// CLI flag and config keys
const (
	FlagConfig       = "config"
	FlagStateFile    = "state-file"
	FlagLogLevel     = "log-level"
	FlagLogFile      = "log"
	FlagFetchLatency = "fetch-latency"
	FlagProgressTick = "progress-tick"
	FlagHistoryLimit = "history-limit"
	FlagHeadless     = "headless"
)

// CLIConfig holds the settings of the command line tool
type CLIConfig struct {
	ConfigFile   string
	StateFile    string
	LogLevel     string
	LogFile      string
	FetchLatency time.Duration
	ProgressTick time.Duration
	HistoryLimit int
	Headless     bool
}

// DefaultStateFile returns the state file location under the user config dir
func DefaultStateFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".video-saver-state.yaml"
	}
	return filepath.Join(dir, "video-saver", "state.yaml")
}

// RegisterCLIFlags adds the common CLI flags to fs
func RegisterCLIFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "Configuration file (default ./video-saver.yaml when present).")
	fs.String(FlagStateFile, DefaultStateFile(), "File keeping the download history.")
	fs.StringP(FlagLogLevel, "l", "warn", "Log level (debug, info, warn, error).")
	fs.String(FlagLogFile, "", "Give the log file name.")
	fs.Duration(FlagFetchLatency, DefaultFetchLatencyMS*time.Millisecond, "Simulated metadata fetch delay.")
	fs.Duration(FlagProgressTick, DefaultProgressTickMS*time.Millisecond, "Interval between simulated progress steps.")
	fs.Int(FlagHistoryLimit, DefaultHistoryLimit, "Number of history records kept.")
	fs.Bool(FlagHeadless, false, "Headless mode. Progression bars are not displayed.")
}

// LoadCLI merges flags, VIDEOSAVER_* environment variables and the optional
// YAML config file, in that order of precedence.
func LoadCLI(fs *pflag.FlagSet) (*CLIConfig, error) {
	v := viper.New()
	setCLIDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if file := v.GetString(FlagConfig); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("video-saver")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "video-saver"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use defaults and env vars
	}

	cfg := &CLIConfig{
		ConfigFile:   v.ConfigFileUsed(),
		StateFile:    v.GetString(FlagStateFile),
		LogLevel:     v.GetString(FlagLogLevel),
		LogFile:      v.GetString(FlagLogFile),
		FetchLatency: v.GetDuration(FlagFetchLatency),
		ProgressTick: v.GetDuration(FlagProgressTick),
		HistoryLimit: v.GetInt(FlagHistoryLimit),
		Headless:     v.GetBool(FlagHeadless),
	}
	cfg.normalize()
	return cfg, nil
}

func setCLIDefaults(v *viper.Viper) {
	v.SetDefault(FlagStateFile, DefaultStateFile())
	v.SetDefault(FlagLogLevel, "warn")
	v.SetDefault(FlagLogFile, "")
	v.SetDefault(FlagFetchLatency, DefaultFetchLatencyMS*time.Millisecond)
	v.SetDefault(FlagProgressTick, DefaultProgressTickMS*time.Millisecond)
	v.SetDefault(FlagHistoryLimit, DefaultHistoryLimit)
	v.SetDefault(FlagHeadless, false)
}

// normalize applies the same limits as the app settings
func (c *CLIConfig) normalize() {
	if c.StateFile == "" {
		c.StateFile = DefaultStateFile()
	}
	if c.FetchLatency < 0 {
		c.FetchLatency = 0
	}
	if c.FetchLatency > MaxFetchLatencyMS*time.Millisecond {
		c.FetchLatency = MaxFetchLatencyMS * time.Millisecond
	}
	c.ProgressTick = time.Duration(clamp(int(c.ProgressTick/time.Millisecond), MinProgressTickMS, MaxProgressTickMS)) * time.Millisecond
	c.HistoryLimit = clamp(c.HistoryLimit, MinHistoryLimit, MaxHistoryLimit)
}
