package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GPTx-global/pricefeed/x/pricequery/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// RequestRate implements types.MsgServer.
func (k msgServer) RequestRate(goCtx context.Context, msg *types.MsgRequestRate) (*types.MsgRequestResponse, error) {
	return k.request(goCtx, msg)
}

// RequestMedian implements types.MsgServer.
func (k msgServer) RequestMedian(goCtx context.Context, msg *types.MsgRequestMedian) (*types.MsgRequestResponse, error) {
	return k.request(goCtx, msg)
}

// RequestDeviation implements types.MsgServer.
func (k msgServer) RequestDeviation(goCtx context.Context, msg *types.MsgRequestDeviation) (*types.MsgRequestResponse, error) {
	return k.request(goCtx, msg)
}

// CallbackRate implements types.MsgServer.
func (k msgServer) CallbackRate(goCtx context.Context, msg *types.MsgCallbackRate) (*types.MsgCallbackResponse, error) {
	return k.callback(goCtx, msg)
}

// CallbackMedian implements types.MsgServer.
func (k msgServer) CallbackMedian(goCtx context.Context, msg *types.MsgCallbackMedian) (*types.MsgCallbackResponse, error) {
	return k.callback(goCtx, msg)
}

// CallbackDeviation implements types.MsgServer.
func (k msgServer) CallbackDeviation(goCtx context.Context, msg *types.MsgCallbackDeviation) (*types.MsgCallbackResponse, error) {
	return k.callback(goCtx, msg)
}

func (k msgServer) request(goCtx context.Context, msg types.RequestMsg) (*types.MsgRequestResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.RequestPrice(ctx, msg.Kind(), msg.GetRequester(), msg.GetSymbol(), msg.GetCallbackData()); err != nil {
		return nil, err
	}
	return &types.MsgRequestResponse{}, nil
}

func (k msgServer) callback(goCtx context.Context, msg types.CallbackMsg) (*types.MsgCallbackResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Callback(ctx, msg.Kind(), msg.Callback()); err != nil {
		return nil, err
	}
	return &types.MsgCallbackResponse{}, nil
}
