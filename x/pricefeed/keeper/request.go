package keeper

import (
	"encoding/base64"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/GPTx-global/pricefeed/x/pricefeed/types"
)

// ModuleAddress is the address the price feed emits its request events from.
func ModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// RequestPrice assigns req to the next live relayer and announces it with a
// price_feed event carrying the correlation id. The id is returned together
// with the selected relayer.
func (k Keeper) RequestPrice(ctx sdk.Context, requester sdk.AccAddress, req types.OracleRequest) (string, sdk.AccAddress, error) {
	if err := req.ValidateBasic(); err != nil {
		return "", nil, err
	}
	if req.Type == types.RequestTypeMedian && !k.GetParams(ctx).MedianStatus {
		return "", nil, types.ErrMedianDisabled
	}

	now := blockTime(ctx)
	relayer, err := k.SelectRelayer(ctx, now)
	if err != nil {
		return "", nil, errorsmod.Wrapf(err, "request %s for %s", req.Type, req.Symbol)
	}

	k.SetTotalRequests(ctx, k.GetTotalRequests(ctx)+1)

	requestID := types.RequestID(requester.String(), now)
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePriceFeed,
			sdk.NewAttribute(types.AttributeKeyAction, types.ActionRequestPrice),
			sdk.NewAttribute(types.AttributeKeyRequestID, requestID),
			sdk.NewAttribute(types.AttributeKeySymbol, req.Symbol),
			sdk.NewAttribute(types.AttributeKeyRequestType, req.Type.String()),
			sdk.NewAttribute(types.AttributeKeyRelayerAddress, relayer.String()),
			sdk.NewAttribute(types.AttributeKeyEventContractAddress, ModuleAddress().String()),
			sdk.NewAttribute(types.AttributeKeyResolveTime, strconv.FormatUint(req.ResolveTime, 10)),
			sdk.NewAttribute(types.AttributeKeyCallbackSignature, req.CallbackSig),
			sdk.NewAttribute(types.AttributeKeyCallbackData, base64.StdEncoding.EncodeToString(req.CallbackData)),
		),
	)

	k.Logger(ctx).Info("price requested",
		"request_id", requestID,
		"symbol", req.Symbol,
		"type", req.Type.String(),
		"relayer", relayer.String(),
	)
	return requestID, relayer, nil
}

// HandleOracleRequest is the entry point used by consumer modules.
func (k Keeper) HandleOracleRequest(ctx sdk.Context, requester sdk.AccAddress, req types.OracleRequest) error {
	_, _, err := k.RequestPrice(ctx, requester, req)
	return err
}
