package keeper

import (
	"context"
	"strconv"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GPTx-global/pricefeed/x/pricefeed/types"
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

// UpdateAdmin implements types.MsgServer.
func (k msgServer) UpdateAdmin(goCtx context.Context, msg *types.MsgUpdateAdmin) (*types.MsgUpdateAdminResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.Keeper.UpdateAdmin(ctx, msg.Admin, msg.NewAdmin); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUpdateAdmin,
			sdk.NewAttribute(types.AttributeKeyAdmin, msg.Admin),
			sdk.NewAttribute(types.AttributeKeyAddress, msg.NewAdmin),
		),
	)

	return &types.MsgUpdateAdminResponse{}, nil
}

// AddRelayers implements types.MsgServer.
func (k msgServer) AddRelayers(goCtx context.Context, msg *types.MsgAddRelayers) (*types.MsgAddRelayersResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	relayers, err := parseAddresses(msg.Relayers)
	if err != nil {
		return nil, err
	}
	if err := k.Keeper.AddRelayers(ctx, msg.Admin, relayers); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAddRelayers,
			sdk.NewAttribute(types.AttributeKeyAdmin, msg.Admin),
			sdk.NewAttribute(types.AttributeKeyAddress, strings.Join(msg.Relayers, ",")),
		),
	)

	return &types.MsgAddRelayersResponse{}, nil
}

// RemoveRelayers implements types.MsgServer.
func (k msgServer) RemoveRelayers(goCtx context.Context, msg *types.MsgRemoveRelayers) (*types.MsgRemoveRelayersResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	relayers, err := parseAddresses(msg.Relayers)
	if err != nil {
		return nil, err
	}
	if err := k.Keeper.RemoveRelayers(ctx, msg.Admin, relayers); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRemoveRelayers,
			sdk.NewAttribute(types.AttributeKeyAdmin, msg.Admin),
			sdk.NewAttribute(types.AttributeKeyAddress, strings.Join(msg.Relayers, ",")),
		),
	)

	return &types.MsgRemoveRelayersResponse{}, nil
}

// RelayerPing implements types.MsgServer.
func (k msgServer) RelayerPing(goCtx context.Context, msg *types.MsgPing) (*types.MsgPingResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	relayer, err := sdk.AccAddressFromBech32(msg.Relayer)
	if err != nil {
		return nil, err
	}
	ts, err := k.Keeper.Ping(ctx, relayer)
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePing,
			sdk.NewAttribute(types.AttributeKeyRelayer, msg.Relayer),
			sdk.NewAttribute(types.AttributeKeyTimestamp, strconv.FormatUint(ts, 10)),
		),
	)

	return &types.MsgPingResponse{Timestamp: ts}, nil
}

// Relay implements types.MsgServer.
func (k msgServer) Relay(goCtx context.Context, msg *types.MsgRelay) (*types.MsgRelayResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	relayer, err := sdk.AccAddressFromBech32(msg.Relayer)
	if err != nil {
		return nil, err
	}
	res, err := k.RelayRates(ctx, relayer, msg.SymbolRates, msg.ResolveTime, msg.RequestID, msg.Force)
	if err != nil {
		return nil, err
	}

	action := types.ActionRelay
	if msg.Force {
		action = types.ActionForceRelay
	}
	emitRelayEvent(ctx, action, msg.Relayer, msg.Force, res)

	return &types.MsgRelayResponse{Applied: res.Applied, Skipped: res.Skipped}, nil
}

// RelayHistoricalMedian implements types.MsgServer.
func (k msgServer) RelayHistoricalMedian(goCtx context.Context, msg *types.MsgRelayHistoricalMedian) (*types.MsgRelayResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	relayer, err := sdk.AccAddressFromBech32(msg.Relayer)
	if err != nil {
		return nil, err
	}
	res, err := k.RelayMedianRates(ctx, relayer, msg.SymbolRates, msg.ResolveTime, msg.RequestID, msg.Force)
	if err != nil {
		return nil, err
	}

	action := types.ActionRelayHistoricalMedian
	if msg.Force {
		action = types.ActionForceRelayHistoricalMedian
	}
	emitRelayEvent(ctx, action, msg.Relayer, msg.Force, res)

	return &types.MsgRelayResponse{Applied: res.Applied, Skipped: res.Skipped}, nil
}

// RelayHistoricalDeviation implements types.MsgServer.
func (k msgServer) RelayHistoricalDeviation(goCtx context.Context, msg *types.MsgRelayHistoricalDeviation) (*types.MsgRelayResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	relayer, err := sdk.AccAddressFromBech32(msg.Relayer)
	if err != nil {
		return nil, err
	}
	res, err := k.RelayDeviations(ctx, relayer, msg.SymbolRates, msg.ResolveTime, msg.RequestID, msg.Force)
	if err != nil {
		return nil, err
	}

	action := types.ActionRelayHistoricalDeviation
	if msg.Force {
		action = types.ActionForceRelayHistoricalDeviation
	}
	emitRelayEvent(ctx, action, msg.Relayer, msg.Force, res)

	return &types.MsgRelayResponse{Applied: res.Applied, Skipped: res.Skipped}, nil
}

// RequestPrice implements types.MsgServer.
func (k msgServer) RequestPrice(goCtx context.Context, msg *types.MsgRequestPrice) (*types.MsgRequestPriceResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	requester, err := sdk.AccAddressFromBech32(msg.Requester)
	if err != nil {
		return nil, err
	}
	requestID, relayer, err := k.Keeper.RequestPrice(ctx, requester, msg.Request)
	if err != nil {
		return nil, err
	}

	return &types.MsgRequestPriceResponse{RequestID: requestID, Relayer: relayer.String()}, nil
}

// UpdatePingThreshold implements types.MsgServer.
func (k msgServer) UpdatePingThreshold(goCtx context.Context, msg *types.MsgUpdatePingThreshold) (*types.MsgUpdateParamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.assertAdmin(ctx, msg.Admin); err != nil {
		return nil, err
	}

	params := k.GetParams(ctx)
	params.PingThreshold = msg.PingThreshold
	if err := params.Validate(); err != nil {
		return nil, err
	}
	k.SetParams(ctx, params)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUpdateParams,
			sdk.NewAttribute(types.AttributeKeyAdmin, msg.Admin),
			sdk.NewAttribute(types.AttributeKeyPingThreshold, strconv.FormatUint(msg.PingThreshold, 10)),
		),
	)

	return &types.MsgUpdateParamsResponse{}, nil
}

// UpdateMedianStatus implements types.MsgServer.
func (k msgServer) UpdateMedianStatus(goCtx context.Context, msg *types.MsgUpdateMedianStatus) (*types.MsgUpdateParamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.assertAdmin(ctx, msg.Admin); err != nil {
		return nil, err
	}

	params := k.GetParams(ctx)
	params.MedianStatus = msg.Status
	k.SetParams(ctx, params)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUpdateParams,
			sdk.NewAttribute(types.AttributeKeyAdmin, msg.Admin),
			sdk.NewAttribute(types.AttributeKeyMedianStatus, strconv.FormatBool(msg.Status)),
		),
	)

	return &types.MsgUpdateParamsResponse{}, nil
}

// MigrateContract implements types.MsgServer.
func (k msgServer) MigrateContract(goCtx context.Context, msg *types.MsgMigrateContract) (*types.MsgMigrateContractResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := k.assertAdmin(ctx, msg.Admin); err != nil {
		return nil, err
	}
	if err := k.Migrate(ctx, types.NewContractInfo(msg.Contract, msg.Version)); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMigrateContract,
			sdk.NewAttribute(types.AttributeKeyContract, msg.Contract),
			sdk.NewAttribute(types.AttributeKeyVersion, msg.Version),
		),
	)

	return &types.MsgMigrateContractResponse{}, nil
}

func emitRelayEvent(ctx sdk.Context, action, relayer string, force bool, res RelayResult) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRelay,
			sdk.NewAttribute(types.AttributeKeyAction, action),
			sdk.NewAttribute(types.AttributeKeyRelayer, relayer),
			sdk.NewAttribute(types.AttributeKeyForce, strconv.FormatBool(force)),
			sdk.NewAttribute(types.AttributeKeyApplied, strings.Join(res.Applied, ",")),
			sdk.NewAttribute(types.AttributeKeySkipped, strings.Join(res.Skipped, ",")),
		),
	)
}

func parseAddresses(addrs []string) ([]sdk.AccAddress, error) {
	res := make([]sdk.AccAddress, 0, len(addrs))
	for _, addr := range addrs {
		acc, err := sdk.AccAddressFromBech32(addr)
		if err != nil {
			return nil, err
		}
		res = append(res, acc)
	}
	return res, nil
}
