package pricefeed

import (
	"bytes"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	"github.com/GPTx-global/pricefeed/x/pricefeed/keeper"
	"github.com/GPTx-global/pricefeed/x/pricefeed/types"
)

var (
	admin   = sdk.AccAddress(bytes.Repeat([]byte{0xaa}, 20)).String()
	relayer = sdk.AccAddress(bytes.Repeat([]byte{0x01}, 20)).String()
	other   = sdk.AccAddress(bytes.Repeat([]byte{0x02}, 20)).String()
)

type unknownMsg struct{ types.MsgPing }

func setupHandlerTest(t *testing.T) (sdk.Context, *keeper.Keeper) {
	ctx, k := setupTest(t)
	InitGenesis(ctx, *k, *types.NewGenesisState(types.DefaultParams(), admin, []string{relayer}))
	return ctx, k
}

func TestNewHandler(t *testing.T) {
	ctx, k := setupHandlerTest(t)
	handler := NewHandler(keeper.NewMsgServerImpl(*k))

	tests := []struct {
		name    string
		msg     types.Msg
		wantErr error
	}{
		{
			name:    "ping",
			msg:     types.NewMsgPing(relayer),
			wantErr: nil,
		},
		{
			name:    "ping from non relayer",
			msg:     types.NewMsgPing(other),
			wantErr: types.ErrUnauthorizedRelayer,
		},
		{
			name:    "relay",
			msg:     types.NewMsgRelay(relayer, []types.SymbolRate{{Symbol: "BTC", Rate: 100}}, 10, 1, false),
			wantErr: nil,
		},
		{
			name:    "relay historical median",
			msg:     types.NewMsgRelayHistoricalMedian(relayer, []types.SymbolRates{{Symbol: "BTC", Rates: []uint64{1, 2}}}, 10, 1, false),
			wantErr: nil,
		},
		{
			name:    "relay historical deviation",
			msg:     types.NewMsgRelayHistoricalDeviation(relayer, []types.SymbolRate{{Symbol: "BTC", Rate: 3}}, 10, 1, true),
			wantErr: nil,
		},
		{
			name: "request price",
			msg: types.NewMsgRequestPrice(other, types.OracleRequest{
				Type:        types.RequestTypeRate,
				Symbol:      "BTC",
				CallbackSig: "callback_rate",
			}),
			wantErr: nil,
		},
		{
			name:    "add relayers by non admin",
			msg:     types.NewMsgAddRelayers(other, []string{other}),
			wantErr: types.ErrUnauthorizedAdmin,
		},
		{
			name:    "add relayers",
			msg:     types.NewMsgAddRelayers(admin, []string{other}),
			wantErr: nil,
		},
		{
			name:    "remove relayers",
			msg:     types.NewMsgRemoveRelayers(admin, []string{other}),
			wantErr: nil,
		},
		{
			name:    "update ping threshold",
			msg:     types.NewMsgUpdatePingThreshold(admin, 120),
			wantErr: nil,
		},
		{
			name:    "update median status by non admin",
			msg:     types.NewMsgUpdateMedianStatus(other, false),
			wantErr: types.ErrUnauthorizedAdmin,
		},
		{
			name:    "migrate to older version",
			msg:     types.NewMsgMigrateContract(admin, types.ContractName, "0.0.1"),
			wantErr: types.ErrVersionConflict,
		},
		{
			name:    "migrate",
			msg:     types.NewMsgMigrateContract(admin, types.ContractName, "0.2.0"),
			wantErr: nil,
		},
		{
			name:    "invalid message",
			msg:     types.NewMsgPing("invalid"),
			wantErr: sdkerrors.ErrInvalidAddress,
		},
		{
			name:    "unknown message",
			msg:     &unknownMsg{MsgPing: *types.NewMsgPing(relayer)},
			wantErr: sdkerrors.ErrUnknownRequest,
		},
		{
			name:    "update admin",
			msg:     types.NewMsgUpdateAdmin(admin, other),
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := handler(ctx, tt.msg)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, res)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, res)
		})
	}

	require.Equal(t, other, k.GetAdmin(ctx))
	require.Equal(t, uint64(120), k.GetParams(ctx).PingThreshold)
	require.Equal(t, uint64(1), k.GetTotalRequests(ctx))
}

func TestHandlerRelayIsAtomic(t *testing.T) {
	ctx, k := setupHandlerTest(t)
	handler := NewHandler(keeper.NewMsgServerImpl(*k))

	// median relaying fails as a whole once disabled
	_, err := handler(ctx, types.NewMsgUpdateMedianStatus(admin, false))
	require.NoError(t, err)

	_, err = handler(ctx, types.NewMsgRelayHistoricalMedian(relayer, []types.SymbolRates{
		{Symbol: "BTC", Rates: []uint64{1}},
		{Symbol: "ETH", Rates: []uint64{2}},
	}, 10, 1, true))
	require.ErrorIs(t, err, types.ErrMedianDisabled)

	_, err = k.GetMedianRefData(ctx, "BTC")
	require.ErrorIs(t, err, types.ErrRefDataNotFound)
}

func TestHandlerRelayEvents(t *testing.T) {
	ctx, k := setupHandlerTest(t)
	handler := NewHandler(keeper.NewMsgServerImpl(*k))

	_, err := handler(ctx, types.NewMsgRelay(relayer, []types.SymbolRate{{Symbol: "BTC", Rate: 5}}, 10, 1, false))
	require.NoError(t, err)

	res, err := handler(ctx, types.NewMsgRelay(relayer, []types.SymbolRate{
		{Symbol: "BTC", Rate: 9},
		{Symbol: "ETH", Rate: 2},
	}, 5, 2, false))
	require.NoError(t, err)

	var relayRes types.MsgRelayResponse
	require.NoError(t, types.ModuleCdc.UnmarshalJSON(res.Data, &relayRes))
	require.Equal(t, []string{"ETH"}, relayRes.Applied)
	require.Equal(t, []string{"BTC"}, relayRes.Skipped)

	require.Len(t, res.Events, 1)
	require.Equal(t, types.EventTypeRelay, res.Events[0].Type)

	data, err := k.GetRefData(ctx, "BTC")
	require.NoError(t, err)
	require.Equal(t, uint64(5), data.Rate)
}
