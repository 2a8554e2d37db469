package cli

import (
	"fmt"
	"strings"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/spf13/cobra"

	"github.com/GPTx-global/pricefeed/x/pricefeed/types"
)

// GetQueryCmd returns the cli query commands for the pricefeed module.
func GetQueryCmd() *cobra.Command {
	pricefeedQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the pricefeed module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	pricefeedQueryCmd.AddCommand(
		GetCmdQueryAdmin(),
		GetCmdQueryParams(),
		GetCmdQueryIsRelayer(),
		GetCmdQueryRelayers(),
		GetCmdQueryLastPing(),
		GetCmdQueryRef(),
		GetCmdQueryMedianRef(),
		GetCmdQueryDeviationRef(),
		GetCmdQueryReferenceData(),
		GetCmdQueryReferenceDataBulk(),
		GetCmdQueryTotalRequests(),
		GetCmdQueryContractInfo(),
	)

	return pricefeedQueryCmd
}

// query runs a legacy query against the pricefeed querier and prints the raw JSON answer.
func query(cmd *cobra.Command, path string, params interface{}) error {
	clientCtx, err := client.GetClientQueryContext(cmd)
	if err != nil {
		return err
	}

	var bz []byte
	if params != nil {
		bz, err = types.ModuleCdc.MarshalJSON(params)
		if err != nil {
			return err
		}
	}

	route := fmt.Sprintf("custom/%s/%s", types.QuerierRoute, path)
	res, _, err := clientCtx.QueryWithData(route, bz)
	if err != nil {
		return err
	}

	return clientCtx.PrintBytes(res)
}

func GetCmdQueryAdmin() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Query the current admin address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return query(cmd, types.QueryAdmin, nil)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the ping threshold and median status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return query(cmd, types.QueryParams, nil)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func GetCmdQueryIsRelayer() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "is-relayer [address]",
		Short: "Query whether an address is a registered relayer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return query(cmd, types.QueryIsRelayer, types.QueryAddressParams{Address: args[0]})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func GetCmdQueryRelayers() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relayers",
		Short: "Query the registered relayers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pageReq, err := client.ReadPageRequest(cmd.Flags())
			if err != nil {
				return err
			}
			return query(cmd, types.QueryRelayers, types.QueryRelayersParams{Pagination: pageReq})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	flags.AddPaginationFlagsToCmd(cmd, "relayers")
	return cmd
}

func GetCmdQueryLastPing() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "last-ping [address]",
		Short: "Query the last ping of a relayer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return query(cmd, types.QueryLastPing, types.QueryAddressParams{Address: args[0]})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func GetCmdQueryRef() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ref [symbol]",
		Short: "Query the latest rate of a symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return query(cmd, types.QueryRef, types.QuerySymbolParams{Symbol: args[0]})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func GetCmdQueryMedianRef() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "median-ref [symbol]...",
		Short: "Query the latest median rates of one or more symbols",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return query(cmd, types.QueryMedianRef, types.QuerySymbolParams{Symbol: args[0]})
			}
			return query(cmd, types.QueryMedianRefBulk, types.QuerySymbolsParams{Symbols: args})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func GetCmdQueryDeviationRef() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deviation-ref [symbol]...",
		Short: "Query the latest deviations of one or more symbols",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return query(cmd, types.QueryDeviationRef, types.QuerySymbolParams{Symbol: args[0]})
			}
			return query(cmd, types.QueryDeviationRefBulk, types.QuerySymbolsParams{Symbols: args})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func GetCmdQueryReferenceData() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reference-data [base] [quote]",
		Short:   "Query the rate of base in units of quote, scaled by 1e18",
		Example: fmt.Sprintf("$ query %s reference-data BTC USD", types.ModuleName),
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return query(cmd, types.QueryReferenceData, types.QueryPairParams{Base: args[0], Quote: args[1]})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func GetCmdQueryReferenceDataBulk() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reference-data-bulk [base/quote]...",
		Short:   "Query the rates of several pairs at once",
		Example: fmt.Sprintf("$ query %s reference-data-bulk BTC/USD ETH/BTC", types.ModuleName),
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := ParsePairs(args)
			if err != nil {
				return err
			}
			return query(cmd, types.QueryReferenceDataBulk, types.QueryPairsParams{Pairs: pairs})
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func GetCmdQueryTotalRequests() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "total-requests",
		Short: "Query the number of oracle requests received",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return query(cmd, types.QueryTotalRequests, nil)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

func GetCmdQueryContractInfo() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contract-info",
		Short: "Query the contract name and version of the stored state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return query(cmd, types.QueryContractInfo, nil)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// ParsePairs parses "BASE/QUOTE" arguments.
func ParsePairs(args []string) ([]types.SymbolPair, error) {
	pairs := make([]types.SymbolPair, 0, len(args))
	for _, arg := range args {
		parts := strings.Split(arg, "/")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid pair %q, expected BASE/QUOTE", arg)
		}
		pairs = append(pairs, types.SymbolPair{Base: parts[0], Quote: parts[1]})
	}
	return pairs, nil
}
