package types_test

import (
	"bytes"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"

	pricefeedtypes "github.com/GPTx-global/pricefeed/x/pricefeed/types"
	"github.com/GPTx-global/pricefeed/x/pricequery/types"
)

var relayer = sdk.AccAddress(bytes.Repeat([]byte{0x01}, 20)).String()

func event(typ string, kv ...string) abci.Event {
	e := abci.Event{Type: typ}
	for i := 0; i+1 < len(kv); i += 2 {
		e.Attributes = append(e.Attributes, abci.EventAttribute{Key: []byte(kv[i]), Value: []byte(kv[i+1])})
	}
	return e
}

func TestRequestFromEvents(t *testing.T) {
	testCases := []struct {
		name      string
		events    []abci.Event
		expErr    error
		requestID string
		symbol    string
	}{
		{
			name: "found among other events",
			events: []abci.Event{
				event("message", "action", "other"),
				event(pricefeedtypes.EventTypePriceFeed, "action", "request_price", "request_id", "addr_10", "symbol", "BTC"),
			},
			requestID: "addr_10",
			symbol:    "BTC",
		},
		{
			name:   "no events",
			expErr: types.ErrEventNotFound,
		},
		{
			name:   "no request price action",
			events: []abci.Event{event(pricefeedtypes.EventTypePriceFeed, "action", "execute_relay", "request_id", "x")},
			expErr: types.ErrEventNotFound,
		},
		{
			name:   "missing request id",
			events: []abci.Event{event(pricefeedtypes.EventTypePriceFeed, "action", "request_price", "symbol", "BTC")},
			expErr: types.ErrAttributeNotFound,
		},
		{
			name:   "missing symbol",
			events: []abci.Event{event(pricefeedtypes.EventTypePriceFeed, "action", "request_price", "request_id", "addr_10")},
			expErr: types.ErrAttributeNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			requestID, symbol, err := types.RequestFromEvents(tc.events)
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.requestID, requestID)
			require.Equal(t, tc.symbol, symbol)
		})
	}
}

func TestMissingAttributeIsNamed(t *testing.T) {
	_, _, err := types.RequestFromEvents([]abci.Event{event("wasm", "action", "request_price", "symbol", "BTC")})
	require.ErrorContains(t, err, "`request_id`")
}

func TestKinds(t *testing.T) {
	for _, kind := range types.Kinds {
		byID, ok := types.KindByReplyID(kind.ReplyID)
		require.True(t, ok)
		require.Equal(t, kind, byID)

		byName, ok := types.KindByName(kind.Name)
		require.True(t, ok)
		require.Equal(t, kind, byName)

		bySig, ok := types.KindByCallbackSig(kind.CallbackSig)
		require.True(t, ok)
		require.Equal(t, kind, bySig)
	}

	_, ok := types.KindByCallbackSig("callback_unknown")
	require.False(t, ok)

	_, ok = types.KindByReplyID(4)
	require.False(t, ok)

	require.Equal(t, "median_request_id_returned", types.KindMedian.RequestIDReturnedEvent())
	require.Equal(t, "deviation_callback", types.KindDeviation.CallbackEvent())
	require.NotEqual(t, types.PendingRequestPrefix(types.KindRate), types.CallbackDataPrefix(types.KindRate))
}

func TestMsgValidateBasic(t *testing.T) {
	testCases := []struct {
		name   string
		msg    types.Msg
		expErr error
	}{
		{"request rate", types.NewMsgRequestRate(relayer, "BTC", nil), nil},
		{"request median empty symbol", types.NewMsgRequestMedian(relayer, "", nil), pricefeedtypes.ErrInvalidSymbol},
		{"request deviation bad requester", types.NewMsgRequestDeviation("x", "BTC", nil), sdkerrors.ErrInvalidAddress},
		{"callback rate", types.NewMsgCallbackRate(relayer, "addr_1", "BTC", 1, 2, nil), nil},
		{"callback rate empty id", types.NewMsgCallbackRate(relayer, "", "BTC", 1, 2, nil), types.ErrInvalidCallback},
		{"callback median", types.NewMsgCallbackMedian(relayer, "addr_1", "BTC", []uint64{1, 2}, 2, nil), nil},
		{"callback deviation no rates", types.NewMsgCallbackDeviation(relayer, "addr_1", "BTC", nil, 2, nil), types.ErrInvalidCallback},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.expErr != nil {
				require.ErrorIs(t, err, tc.expErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, types.RouterKey, tc.msg.Route())
		})
	}
}

func TestCallbackShapes(t *testing.T) {
	rate := types.NewMsgCallbackRate(relayer, "addr_1", "BTC", 7, 2, []byte("x")).Callback()
	require.Equal(t, []uint64{7}, rate.Rates)
	require.Equal(t, "addr_1", rate.RequestID)

	median := types.NewMsgCallbackMedian(relayer, "addr_1", "BTC", []uint64{1, 2}, 2, nil)
	require.Equal(t, types.KindMedian, median.Kind())
	require.Equal(t, []uint64{1, 2}, median.Callback().Rates)
	require.Equal(t, "callback_median", median.Type())
}

func TestGenesisStateValidate(t *testing.T) {
	require.NoError(t, types.DefaultGenesisState().Validate())

	gs := types.GenesisState{
		PendingRequests: []types.PendingRequest{{Kind: "rate", Symbol: "BTC", RequestID: "a_1"}},
		Callbacks:       []types.StoredCallback{{Kind: "median", Symbol: "BTC"}},
	}
	require.NoError(t, gs.Validate())

	gs.PendingRequests = append(gs.PendingRequests, types.PendingRequest{Kind: "rate", Symbol: "BTC", RequestID: "a_2"})
	require.Error(t, gs.Validate())

	gs = types.GenesisState{PendingRequests: []types.PendingRequest{{Kind: "spot", Symbol: "BTC", RequestID: "a_1"}}}
	require.ErrorIs(t, gs.Validate(), types.ErrUnknownKind)
}
