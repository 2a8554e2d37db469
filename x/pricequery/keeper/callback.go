package keeper

import (
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GPTx-global/pricefeed/x/pricequery/types"
)

// Callback stores a relayer's answer to the pending request of kind. The
// answer must carry the pending correlation id and come from a relayer of
// the oracle.
func (k Keeper) Callback(ctx sdk.Context, kind types.Kind, cb types.Callback) error {
	expected, err := k.GetPendingRequest(ctx, kind, cb.Symbol)
	if err != nil {
		return err
	}
	if expected != cb.RequestID {
		return errorsmod.Wrapf(types.ErrRequestIDMismatch, "expected: %s, got: %s", expected, cb.RequestID)
	}

	relayer, err := sdk.AccAddressFromBech32(cb.Relayer)
	if err != nil {
		return err
	}
	if !k.oracleKeeper.IsRelayer(ctx, relayer) {
		return errorsmod.Wrapf(types.ErrInvalidRelayer, "%s", cb.Relayer)
	}

	k.SetCallbackData(ctx, kind, cb.Symbol, types.NewCallbackData(cb.Rates, cb.LastUpdated, cb.RequestID))

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			kind.CallbackEvent(),
			sdk.NewAttribute(types.AttributeKeyRelayer, cb.Relayer),
			sdk.NewAttribute(types.AttributeKeySymbol, cb.Symbol),
			sdk.NewAttribute(types.AttributeKeyRequestID, cb.RequestID),
			sdk.NewAttribute(types.AttributeKeyLastUpdated, strconv.FormatUint(cb.LastUpdated, 10)),
			sdk.NewAttribute(types.AttributeKeyIsVerified, strconv.FormatBool(true)),
		),
	)

	k.Logger(ctx).Info("callback stored", "kind", kind.Name, "symbol", cb.Symbol, "request_id", cb.RequestID)
	return nil
}
