package pricefeed

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/GPTx-global/pricefeed/x/pricefeed/keeper"
	"github.com/GPTx-global/pricefeed/x/pricefeed/types"
)

// InitGenesis initializes the pricefeed module's state from a genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, data types.GenesisState) {
	if err := data.Validate(); err != nil {
		panic(errorsmod.Wrapf(err, "invalid %s genesis state", types.ModuleName))
	}

	k.SetParams(ctx, data.Params)

	// the admin is the deployer of the price feed
	if data.Admin == "" {
		panic(errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "%s: admin address cannot be empty", types.ModuleName))
	}
	k.SetAdmin(ctx, data.Admin)

	for _, relayer := range data.Relayers {
		if err := k.AddRelayers(ctx, data.Admin, []sdk.AccAddress{sdk.MustAccAddressFromBech32(relayer)}); err != nil {
			panic(errorsmod.Wrapf(err, "error adding relayer %s", relayer))
		}
	}
	for _, ping := range data.Pings {
		k.SetLastPing(ctx, sdk.MustAccAddressFromBech32(ping.Relayer), ping.LastPing)
	}
	if data.LastRelayer != "" {
		k.SetLastRelayer(ctx, sdk.MustAccAddressFromBech32(data.LastRelayer))
	}

	k.SetContractInfo(ctx, data.ContractInfo)
	k.SetTotalRequests(ctx, data.TotalRequests)

	for _, d := range data.RefData {
		k.SetRefData(ctx, d.Symbol, d.RefData)
	}
	for _, d := range data.MedianRefData {
		k.SetMedianRefData(ctx, d.Symbol, d.MedianData)
	}
	for _, d := range data.DeviationData {
		k.SetDeviationData(ctx, d.Symbol, d.RefData)
	}
}

// ExportGenesis returns a GenesisState for a given context and keeper.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	relayers := []string{}
	for _, relayer := range k.GetRelayers(ctx) {
		relayers = append(relayers, relayer.String())
	}

	gs := types.NewGenesisState(k.GetParams(ctx), k.GetAdmin(ctx), relayers)
	gs.Pings = k.GetAllPings(ctx)
	if last, found := k.GetLastRelayer(ctx); found {
		gs.LastRelayer = last.String()
	}
	if info, found := k.GetContractInfo(ctx); found {
		gs.ContractInfo = info
	}
	gs.TotalRequests = k.GetTotalRequests(ctx)

	k.IterateRefData(ctx, func(symbol string, data types.RefData) bool {
		gs.RefData = append(gs.RefData, types.SymbolRefData{Symbol: symbol, RefData: data})
		return false
	})
	k.IterateMedianRefData(ctx, func(symbol string, data types.RefMedianData) bool {
		gs.MedianRefData = append(gs.MedianRefData, types.SymbolMedianData{Symbol: symbol, MedianData: data})
		return false
	})
	k.IterateDeviationData(ctx, func(symbol string, data types.RefData) bool {
		gs.DeviationData = append(gs.DeviationData, types.SymbolRefData{Symbol: symbol, RefData: data})
		return false
	})
	return gs
}
