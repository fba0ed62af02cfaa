package movetx

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose bool
}

func BuildMoveTxCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := cobra.Command{
		Use:          "movetx",
		Short:        "Encode Move type tags and build entry function payloads",
		Long:         ``,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Log debug output to stderr")

	cmd.AddCommand(buildParseTypeTagCmd())
	cmd.AddCommand(buildBuildCmd(opts))
	cmd.AddCommand(buildBuildRemoteCmd(opts))

	return &cmd
}
