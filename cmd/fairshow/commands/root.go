package commands

import (
	"github.com/spf13/cobra"
)

var (
	_config = NewDefaultCLIConfig()
)

//RootCmd is the root command for fairshow
var RootCmd = &cobra.Command{
	Use:              "fairshow",
	Short:            "Verifiable Fairness in PoS Consensus presentation server",
	TraverseChildren: true,
}
