package pricequery

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/GPTx-global/pricefeed/x/pricequery/types"
)

// Handler executes a single pricequery message.
type Handler func(ctx sdk.Context, msg types.Msg) (*sdk.Result, error)

// NewHandler creates a new handler for pricequery messages. Each message runs
// in a cached context that is only written back when it succeeds, so a failed
// oracle dispatch also drops the request.
func NewHandler(msgServer types.MsgServer) Handler {
	return func(ctx sdk.Context, msg types.Msg) (*sdk.Result, error) {
		if err := msg.ValidateBasic(); err != nil {
			return nil, err
		}

		ctx = ctx.WithEventManager(sdk.NewEventManager())
		cacheCtx, write := ctx.CacheContext()
		goCtx := sdk.WrapSDKContext(cacheCtx)

		var (
			res interface{}
			err error
		)
		switch msg := msg.(type) {
		case *types.MsgRequestRate:
			res, err = msgServer.RequestRate(goCtx, msg)
		case *types.MsgRequestMedian:
			res, err = msgServer.RequestMedian(goCtx, msg)
		case *types.MsgRequestDeviation:
			res, err = msgServer.RequestDeviation(goCtx, msg)
		case *types.MsgCallbackRate:
			res, err = msgServer.CallbackRate(goCtx, msg)
		case *types.MsgCallbackMedian:
			res, err = msgServer.CallbackMedian(goCtx, msg)
		case *types.MsgCallbackDeviation:
			res, err = msgServer.CallbackDeviation(goCtx, msg)
		default:
			return nil, errorsmod.Wrapf(sdkerrors.ErrUnknownRequest, "unrecognized %s message type: %T", types.ModuleName, msg)
		}
		if err != nil {
			return nil, err
		}

		data, err := types.ModuleCdc.MarshalJSON(res)
		if err != nil {
			return nil, errorsmod.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
		}

		write()
		return &sdk.Result{Data: data, Events: cacheCtx.EventManager().ABCIEvents()}, nil
	}
}
