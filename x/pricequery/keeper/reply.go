package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GPTx-global/pricefeed/x/pricequery/types"
)

// Reply continues a request once the oracle answered. It stores the
// correlation id announced by the oracle as the pending request of the kind
// the reply is routed to.
func (k Keeper) Reply(ctx sdk.Context, reply types.Reply) error {
	kind, found := types.KindByReplyID(reply.ID)
	if !found {
		return errorsmod.Wrapf(types.ErrUnknownReply, "%d", reply.ID)
	}

	requestID, symbol, err := types.RequestFromEvents(reply.Events)
	if err != nil {
		return err
	}

	k.SetPendingRequest(ctx, kind, symbol, requestID)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			kind.RequestIDReturnedEvent(),
			sdk.NewAttribute(types.AttributeKeyRequestID, requestID),
			sdk.NewAttribute(types.AttributeKeySymbol, symbol),
		),
	)

	k.Logger(ctx).Info("request id returned", "kind", kind.Name, "symbol", symbol, "request_id", requestID)
	return nil
}
