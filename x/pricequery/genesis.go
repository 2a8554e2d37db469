package pricequery

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GPTx-global/pricefeed/x/pricequery/keeper"
	"github.com/GPTx-global/pricefeed/x/pricequery/types"
)

// InitGenesis initializes the pricequery module's state from a genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, data types.GenesisState) {
	if err := data.Validate(); err != nil {
		panic(errorsmod.Wrapf(err, "invalid %s genesis state", types.ModuleName))
	}

	for _, p := range data.PendingRequests {
		kind, _ := types.KindByName(p.Kind)
		k.SetPendingRequest(ctx, kind, p.Symbol, p.RequestID)
	}
	for _, c := range data.Callbacks {
		kind, _ := types.KindByName(c.Kind)
		k.SetCallbackData(ctx, kind, c.Symbol, c.Data)
	}
}

// ExportGenesis returns a GenesisState for a given context and keeper.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	gs := types.DefaultGenesisState()
	for _, kind := range types.Kinds {
		kind := kind
		k.IteratePendingRequests(ctx, kind, func(symbol, requestID string) bool {
			gs.PendingRequests = append(gs.PendingRequests, types.PendingRequest{Kind: kind.Name, Symbol: symbol, RequestID: requestID})
			return false
		})
		k.IterateCallbackData(ctx, kind, func(symbol string, data types.CallbackData) bool {
			gs.Callbacks = append(gs.Callbacks, types.StoredCallback{Kind: kind.Name, Symbol: symbol, Data: data})
			return false
		})
	}
	return gs
}
