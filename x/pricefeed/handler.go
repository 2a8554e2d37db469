package pricefeed

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/GPTx-global/pricefeed/x/pricefeed/types"
)

// Handler executes a single pricefeed message.
type Handler func(ctx sdk.Context, msg types.Msg) (*sdk.Result, error)

// NewHandler creates a new handler for pricefeed messages. Each message runs
// in a cached context that is only written back when it succeeds.
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
		case *types.MsgUpdateAdmin:
			res, err = msgServer.UpdateAdmin(goCtx, msg)
		case *types.MsgAddRelayers:
			res, err = msgServer.AddRelayers(goCtx, msg)
		case *types.MsgRemoveRelayers:
			res, err = msgServer.RemoveRelayers(goCtx, msg)
		case *types.MsgPing:
			res, err = msgServer.RelayerPing(goCtx, msg)
		case *types.MsgRelay:
			res, err = msgServer.Relay(goCtx, msg)
		case *types.MsgRelayHistoricalMedian:
			res, err = msgServer.RelayHistoricalMedian(goCtx, msg)
		case *types.MsgRelayHistoricalDeviation:
			res, err = msgServer.RelayHistoricalDeviation(goCtx, msg)
		case *types.MsgRequestPrice:
			res, err = msgServer.RequestPrice(goCtx, msg)
		case *types.MsgUpdatePingThreshold:
			res, err = msgServer.UpdatePingThreshold(goCtx, msg)
		case *types.MsgUpdateMedianStatus:
			res, err = msgServer.UpdateMedianStatus(goCtx, msg)
		case *types.MsgMigrateContract:
			res, err = msgServer.MigrateContract(goCtx, msg)
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
