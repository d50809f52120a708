package commands

import (
	"github.com/mosaicnetworks/fairshow/src/config"
	"github.com/mosaicnetworks/fairshow/src/fairshow"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

//NewRunCmd returns the command that starts the presentation server
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run",
		Short:   "Run presentation server",
		PreRunE: loadConfig,
		RunE:    runFairshow,
	}
	AddRunFlags(cmd)
	return cmd
}

/*******************************************************************************
* RUN
*******************************************************************************/

func runFairshow(cmd *cobra.Command, args []string) error {
	engine := fairshow.NewFairshow(&_config.Fairshow)

	if err := engine.Init(); err != nil {
		_config.Fairshow.Logger().Error("Cannot initialize engine:", err)
		return err
	}

	return engine.Run()
}

/*******************************************************************************
* CONFIG
*******************************************************************************/

//AddRunFlags adds flags to the Run command
func AddRunFlags(cmd *cobra.Command) {
	cmd.Flags().String("datadir", _config.Fairshow.DataDir, "Top-level directory for configuration")
	cmd.Flags().String("log", _config.Fairshow.LogLevel, "debug, info, warn, error, fatal, panic")
	cmd.Flags().String("log-dir", _config.Fairshow.LogDir, "Optional directory for info and debug log files")

	// Service
	cmd.Flags().StringP("listen", "l", _config.Fairshow.ServiceAddr, "Listen IP:Port for HTTP service")

	// Sessions
	cmd.Flags().Int("max-sessions", _config.Fairshow.MaxSessions, "Number of viewer sessions kept in the LRU session store")

	// Simulation
	cmd.Flags().Duration("step-interval", _config.Fairshow.StepInterval, "Time between two steps of the VDF progress animation")
	cmd.Flags().Int("steps", _config.Fairshow.Steps, "Number of steps of the VDF progress animation")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	if err := bindFlagsLoadViper(cmd); err != nil {
		return err
	}

	_config.Fairshow.Logger().WithFields(logrus.Fields{
		"fairshow.DataDir":      _config.Fairshow.DataDir,
		"fairshow.LogLevel":     _config.Fairshow.LogLevel,
		"fairshow.LogDir":       _config.Fairshow.LogDir,
		"fairshow.ServiceAddr":  _config.Fairshow.ServiceAddr,
		"fairshow.StepInterval": _config.Fairshow.StepInterval,
		"fairshow.Steps":        _config.Fairshow.Steps,
		"fairshow.MaxSessions":  _config.Fairshow.MaxSessions,
	}).Debug("RUN")

	return nil
}

// Bind all flags and read the config into viper
func bindFlagsLoadViper(cmd *cobra.Command) error {
	// Register flags with viper. Include flags from this command and all other
	// persistent flags from the parent
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// first unmarshal to read from CLI flags
	if err := viper.Unmarshal(_config); err != nil {
		return err
	}

	// look for config file in [datadir]/fairshow.toml (.json, .yaml also work)
	viper.SetConfigName(config.DefaultConfigName)
	viper.AddConfigPath(_config.Fairshow.DataDir)

	// If a config file is found, read it in. The logger is only built after
	// the second unmarshal so that a log level from the file takes effect.
	var found bool
	if err := viper.ReadInConfig(); err == nil {
		found = true
	} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		return errors.Wrap(err, "reading config file")
	}

	// second unmarshal to read from config file
	if err := viper.Unmarshal(_config); err != nil {
		return err
	}

	if found {
		_config.Fairshow.Logger().Debugf("Using config file: %s", viper.ConfigFileUsed())
	} else {
		_config.Fairshow.Logger().Debugf("No config file found in: %s", _config.Fairshow.DataDir)
	}

	return nil
}
