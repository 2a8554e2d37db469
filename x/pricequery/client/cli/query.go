package cli

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/spf13/cobra"

	"github.com/GPTx-global/pricefeed/x/pricequery/types"
)

// GetQueryCmd returns the cli query commands for the pricequery module.
func GetQueryCmd() *cobra.Command {
	pricequeryQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the pricequery module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	pricequeryQueryCmd.AddCommand(
		newSymbolQueryCmd("price [symbol]", "Query the latest rate answered for a symbol", types.QueryPrice),
		newSymbolQueryCmd("median [symbol]", "Query the latest median rates answered for a symbol", types.QueryMedian),
		newSymbolQueryCmd("deviation [symbol]", "Query the latest deviation answered for a symbol", types.QueryDeviation),
		newSymbolQueryCmd("rate-request-id [symbol]", "Query the pending rate request id of a symbol", types.QueryRateRequestID),
		newSymbolQueryCmd("median-request-id [symbol]", "Query the pending median request id of a symbol", types.QueryMedianRequestID),
		newSymbolQueryCmd("deviation-request-id [symbol]", "Query the pending deviation request id of a symbol", types.QueryDeviationRequestID),
	)

	return pricequeryQueryCmd
}

func newSymbolQueryCmd(use, short, path string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			bz, err := types.ModuleCdc.MarshalJSON(types.QuerySymbolParams{Symbol: args[0]})
			if err != nil {
				return err
			}

			route := fmt.Sprintf("custom/%s/%s", types.QuerierRoute, path)
			res, _, err := clientCtx.QueryWithData(route, bz)
			if err != nil {
				return err
			}

			return clientCtx.PrintBytes(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
