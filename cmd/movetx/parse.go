package movetx

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/movetx/types"
)

func buildParseTypeTagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse-type-tag <type>...",
		Short: "Prints the canonical form and the encoding of type tags",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				tag, err := types.ParseTypeTag(arg)
				if err != nil {
					return err
				}

				data, err := types.Serialize(&tag)
				if err != nil {
					return fmt.Errorf("failed to encode %s: %w", tag, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", tag, hexutil.Encode(data))
			}

			return nil
		},
	}
}
