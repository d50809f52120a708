package commands

import (
	"github.com/mosaicnetworks/fairshow/src/config"
)

//CLIConfig contains configuration for the Run command
type CLIConfig struct {
	Fairshow config.Config `mapstructure:",squash"`
}

//NewDefaultCLIConfig creates a CLIConfig with default values
func NewDefaultCLIConfig() *CLIConfig {
	return &CLIConfig{
		Fairshow: *config.NewDefaultConfig(),
	}
}
