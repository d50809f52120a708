package config

import (
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/mosaicnetworks/fairshow/src/common"
	"github.com/mosaicnetworks/fairshow/src/page"
	"github.com/mosaicnetworks/fairshow/src/progress"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// Default filenames.
const (
	// DefaultConfigName is the name, without extension, of the optional
	// configuration file read from the data directory
	DefaultConfigName = "fairshow"

	// DefaultInfoLogFile receives info-level logs when LogDir is set
	DefaultInfoLogFile = "fairshow_info.log"

	// DefaultDebugLogFile receives debug-level logs when LogDir is set
	DefaultDebugLogFile = "fairshow_debug.log"
)

// Default configuration values.
const (
	DefaultLogLevel     = "info"
	DefaultServiceAddr  = "127.0.0.1:8000"
	DefaultStepInterval = progress.DefaultStepInterval
	DefaultSteps        = progress.DefaultSteps
	DefaultMaxSessions  = page.DefaultMaxSessions
)

// Config contains all the configuration properties of a fairshow server.
type Config struct {
	// DataDir is the directory searched for fairshow.toml (.yaml, .json)
	DataDir string `mapstructure:"datadir"`

	// LogLevel determines the chattiness of the log output.
	LogLevel string `mapstructure:"log"`

	// LogDir, when set, makes an lfshook copy info and debug logs into files
	// under that directory.
	LogDir string `mapstructure:"log-dir"`

	// ServiceAddr is the address:port of the HTTP service.
	ServiceAddr string `mapstructure:"listen"`

	// StepInterval is the pause between two steps of the VDF progress
	// animation.
	StepInterval time.Duration `mapstructure:"step-interval"`

	// Steps is the number of steps of the VDF progress animation.
	Steps int `mapstructure:"steps"`

	// MaxSessions bounds the in-memory session store. The least recently used
	// session is evicted when it is full.
	MaxSessions int `mapstructure:"max-sessions"`

	logger *logrus.Logger
}

// NewDefaultConfig returns a config object with default values.
func NewDefaultConfig() *Config {
	config := &Config{
		DataDir:      DefaultDataDir(),
		LogLevel:     DefaultLogLevel,
		ServiceAddr:  DefaultServiceAddr,
		StepInterval: DefaultStepInterval,
		Steps:        DefaultSteps,
		MaxSessions:  DefaultMaxSessions,
	}

	return config
}

// NewTestConfig returns a config object with default values and a special
// logger for debugging tests.
func NewTestConfig(t testing.TB, level logrus.Level) *Config {
	config := NewDefaultConfig()
	config.logger = common.NewTestLogger(t, level)
	return config
}

// Logger returns a formatted logrus Entry, with prefix set to "fairshow".
func (c *Config) Logger() *logrus.Entry {
	if c.logger == nil {
		c.logger = logrus.New()
		c.logger.Level = LogLevel(c.LogLevel)
		c.logger.Formatter = new(prefixed.TextFormatter)
		if c.LogDir != "" {
			c.addFileHook()
		}
	}
	return c.logger.WithField("prefix", "fairshow")
}

func (c *Config) addFileHook() {
	pathMap := lfshook.PathMap{}

	if err := os.MkdirAll(c.LogDir, 0755); err != nil {
		c.logger.WithError(err).Warn("Cannot create log directory, logging to stderr only")
		return
	}

	for level, name := range map[logrus.Level]string{
		logrus.InfoLevel:  DefaultInfoLogFile,
		logrus.DebugLevel: DefaultDebugLogFile,
	} {
		path := filepath.Join(c.LogDir, name)
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0666)
		if err != nil {
			c.logger.WithError(err).Infof("Failed to open %s file, using default stderr", path)
			continue
		}
		f.Close()
		pathMap[level] = path
	}

	c.logger.Hooks.Add(lfshook.NewHook(
		pathMap,
		&logrus.TextFormatter{},
	))
}

// DefaultDataDir return the default directory name for top-level fairshow
// config based on the underlying OS, attempting to respect conventions.
func DefaultDataDir() string {
	// Try to place the data folder in the user's home dir
	home := HomeDir()
	if home != "" {
		if runtime.GOOS == "darwin" {
			return filepath.Join(home, ".Fairshow")
		} else if runtime.GOOS == "windows" {
			return filepath.Join(home, "AppData", "Roaming", "Fairshow")
		} else {
			return filepath.Join(home, ".fairshow")
		}
	}
	// As we cannot guess a stable location, return empty and handle later
	return ""
}

// HomeDir returns the user's home directory.
func HomeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}

// LogLevel parses a string into a Logrus log level.
func LogLevel(l string) logrus.Level {
	switch l {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "panic":
		return logrus.PanicLevel
	default:
		return logrus.DebugLevel
	}
}
