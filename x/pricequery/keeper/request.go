package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	abci "github.com/tendermint/tendermint/abci/types"

	pricefeedtypes "github.com/GPTx-global/pricefeed/x/pricefeed/types"
	"github.com/GPTx-global/pricefeed/x/pricequery/types"
)

// RequestPrice sends an oracle request of kind for symbol from the module
// account and feeds the oracle's events back into Reply, which records the
// correlation id the relayer has to answer with.
func (k Keeper) RequestPrice(ctx sdk.Context, kind types.Kind, requester, symbol string, callbackData []byte) error {
	req := pricefeedtypes.OracleRequest{
		Type:         kind.RequestType,
		Symbol:       symbol,
		ResolveTime:  uint64(ctx.BlockTime().Unix()),
		CallbackSig:  kind.CallbackSig,
		CallbackData: callbackData,
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRelayMessage,
			sdk.NewAttribute(types.AttributeKeyRequester, requester),
			sdk.NewAttribute(types.AttributeKeyKind, kind.Name),
			sdk.NewAttribute(types.AttributeKeySymbol, symbol),
		),
	)

	events, err := k.dispatch(ctx, req)
	if err != nil {
		return errorsmod.Wrapf(err, "%s request for %s", kind.Name, symbol)
	}

	return k.Reply(ctx, types.Reply{ID: kind.ReplyID, Events: events})
}

// dispatch runs the oracle request as a sub-message: its state changes and
// events are only kept when it succeeds.
func (k Keeper) dispatch(ctx sdk.Context, req pricefeedtypes.OracleRequest) ([]abci.Event, error) {
	subCtx, write := ctx.CacheContext()
	subCtx = subCtx.WithEventManager(sdk.NewEventManager())

	if err := k.oracleKeeper.HandleOracleRequest(subCtx, k.ModuleAddress(), req); err != nil {
		return nil, err
	}

	write()
	events := subCtx.EventManager().Events()
	ctx.EventManager().EmitEvents(events)
	return events.ToABCIEvents(), nil
}
