package movetx

import (
	"fmt"

	aptoslib "github.com/aptos-labs/aptos-go-sdk"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/movetx"
	"github.com/smartcontractkit/movetx/sdk/aptos"
)

type buildFlags struct {
	function    string
	typeArgs    []string
	args        string
	transaction bool
}

func (f *buildFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.function, "function", "", "Function to call, address::module::function or a script name")
	cmd.Flags().StringArrayVar(&f.typeArgs, "type-arg", nil, "Type argument, repeated in order, e.g. 0x1::aptos_coin::AptosCoin")
	cmd.Flags().StringVar(&f.args, "args", "", "Call arguments as a JSON array")
	cmd.Flags().BoolVar(&f.transaction, "transaction", false, "Wrap the payload into a version 1 transaction")
	_ = cmd.MarkFlagRequired("function")
}

func buildBuildCmd(opts *rootOptions) *cobra.Command {
	var (
		flags    buildFlags
		abiFiles []string
	)

	cmd := cobra.Command{
		Use:   "build",
		Short: "Builds a call payload from serialized ABI files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			documents, err := readABIDocuments(abiFiles)
			if err != nil {
				return err
			}

			builder, err := movetx.NewBuilder(documents, movetx.WithLogger(opts.logger()))
			if err != nil {
				return err
			}

			rawArgs, err := decodeArgs(flags.args)
			if err != nil {
				return err
			}

			tx, err := builder.BuildCall(flags.function, flags.typeArgs, rawArgs)
			if err != nil {
				return err
			}

			payload, err := encodePayload(tx, flags.transaction)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), payload)

			return nil
		},
	}

	flags.register(&cmd)
	cmd.Flags().StringArrayVar(&abiFiles, "abi", nil, "File holding a serialized ScriptABI, raw or 0x prefixed hex, repeated")
	_ = cmd.MarkFlagRequired("abi")

	return &cmd
}

func buildBuildRemoteCmd(opts *rootOptions) *cobra.Command {
	var (
		flags   buildFlags
		nodeURL string
	)

	cmd := cobra.Command{
		Use:   "build-remote",
		Short: "Builds an entry function payload from the ABI published on chain",
		RunE: func(cmd *cobra.Command, _ []string) error {
			url, err := loadNodeURL(nodeURL)
			if err != nil {
				return err
			}

			rawArgs, err := decodeArgs(flags.args)
			if err != nil {
				return err
			}

			// Reading modules does not need the chain id.
			client, err := aptoslib.NewNodeClient(url, 0)
			if err != nil {
				return err
			}

			logger := opts.logger()
			fetcher := aptos.NewABIFetcher(client, aptos.WithLogger(logger))
			builder := movetx.NewRemoteBuilder(fetcher, movetx.WithLogger(logger))

			tx, err := builder.BuildCall(cmd.Context(), flags.function, flags.typeArgs, rawArgs)
			if err != nil {
				return err
			}

			payload, err := encodePayload(tx, flags.transaction)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), payload)

			return nil
		},
	}

	flags.register(&cmd)
	cmd.Flags().StringVar(&nodeURL, "node-url", "", "REST API of the fullnode, defaults to $"+nodeURLEnv)

	return &cmd
}
