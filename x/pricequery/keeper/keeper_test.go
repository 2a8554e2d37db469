package keeper

import (
	"bytes"
	"testing"
	"time"

	"github.com/cosmos/cosmos-sdk/store"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	tmdb "github.com/tendermint/tm-db"

	pricefeedkeeper "github.com/GPTx-global/pricefeed/x/pricefeed/keeper"
	pricefeedtypes "github.com/GPTx-global/pricefeed/x/pricefeed/types"
	"github.com/GPTx-global/pricefeed/x/pricequery/types"
)

const blockTime = 1_000

var (
	adminAddr = sdk.AccAddress(bytes.Repeat([]byte{0xaa}, 20))
	relayerA  = sdk.AccAddress(bytes.Repeat([]byte{0x01}, 20))
	relayerB  = sdk.AccAddress(bytes.Repeat([]byte{0x02}, 20))
	requester = sdk.AccAddress(bytes.Repeat([]byte{0x05}, 20))
	stranger  = sdk.AccAddress(bytes.Repeat([]byte{0x09}, 20))
)

type KeeperTestSuite struct {
	suite.Suite

	ctx       sdk.Context
	keeper    *Keeper
	oracle    *pricefeedkeeper.Keeper
	requestID string
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

// SetupTest mounts both modules on one multistore, as they are in an app,
// with relayers A and B alive at the block time.
func (suite *KeeperTestSuite) SetupTest() {
	feedKey := sdk.NewKVStoreKey(pricefeedtypes.StoreKey)
	queryKey := sdk.NewKVStoreKey(types.StoreKey)

	db := tmdb.NewMemDB()
	stateStore := store.NewCommitMultiStore(db)
	stateStore.MountStoreWithDB(feedKey, storetypes.StoreTypeIAVL, nil)
	stateStore.MountStoreWithDB(queryKey, storetypes.StoreTypeIAVL, nil)
	suite.Require().NoError(stateStore.LoadLatestVersion())

	header := tmproto.Header{Time: time.Unix(blockTime, 0).UTC()}
	suite.ctx = sdk.NewContext(stateStore, header, false, log.NewNopLogger())

	suite.oracle = pricefeedkeeper.NewKeeper(pricefeedtypes.ModuleCdc, feedKey)
	suite.oracle.SetParams(suite.ctx, pricefeedtypes.DefaultParams())
	suite.oracle.SetAdmin(suite.ctx, adminAddr.String())
	suite.Require().NoError(suite.oracle.AddRelayers(suite.ctx, adminAddr.String(), []sdk.AccAddress{relayerA, relayerB}))
	suite.oracle.SetLastPing(suite.ctx, relayerA, blockTime)
	suite.oracle.SetLastPing(suite.ctx, relayerB, blockTime)

	suite.keeper = NewKeeper(types.ModuleCdc, queryKey, suite.oracle)
	suite.requestID = pricefeedtypes.RequestID(suite.keeper.ModuleAddress().String(), blockTime)
}

func (suite *KeeperTestSuite) eventTypes() []string {
	var res []string
	for _, e := range suite.ctx.EventManager().Events() {
		res = append(res, e.Type)
	}
	return res
}

func (suite *KeeperTestSuite) TestRequestPrice() {
	err := suite.keeper.RequestPrice(suite.ctx, types.KindRate, requester.String(), "BTC", []byte("data"))
	suite.Require().NoError(err)

	pending, err := suite.keeper.GetPendingRequest(suite.ctx, types.KindRate, "BTC")
	suite.Require().NoError(err)
	suite.Require().Equal(suite.requestID, pending)

	// pending requests are kept per kind
	_, err = suite.keeper.GetPendingRequest(suite.ctx, types.KindMedian, "BTC")
	suite.Require().ErrorIs(err, types.ErrPendingNotFound)

	suite.Require().Equal(uint64(1), suite.oracle.GetTotalRequests(suite.ctx))
	suite.Require().Equal([]string{
		types.EventTypeRelayMessage,
		pricefeedtypes.EventTypePriceFeed,
		types.KindRate.RequestIDReturnedEvent(),
	}, suite.eventTypes())
}

func (suite *KeeperTestSuite) TestRequestPriceNoRelayer() {
	suite.oracle.SetLastPing(suite.ctx, relayerA, 0)
	suite.oracle.SetLastPing(suite.ctx, relayerB, 0)

	err := suite.keeper.RequestPrice(suite.ctx, types.KindDeviation, requester.String(), "BTC", nil)
	suite.Require().ErrorIs(err, pricefeedtypes.ErrNoRelayerAvailable)

	_, err = suite.keeper.GetPendingRequest(suite.ctx, types.KindDeviation, "BTC")
	suite.Require().ErrorIs(err, types.ErrPendingNotFound)
	suite.Require().Zero(suite.oracle.GetTotalRequests(suite.ctx))
}

func (suite *KeeperTestSuite) TestRequestMedianDisabled() {
	suite.oracle.SetParams(suite.ctx, pricefeedtypes.NewParams(pricefeedtypes.DefaultPingThreshold, false))

	err := suite.keeper.RequestPrice(suite.ctx, types.KindMedian, requester.String(), "BTC", nil)
	suite.Require().ErrorIs(err, pricefeedtypes.ErrMedianDisabled)
}

func (suite *KeeperTestSuite) TestFullCycle() {
	for _, kind := range types.Kinds {
		suite.Require().NoError(suite.keeper.RequestPrice(suite.ctx, kind, requester.String(), "ETH", nil))

		cb := types.Callback{
			Relayer:     relayerA.String(),
			RequestID:   suite.requestID,
			Symbol:      "ETH",
			Rates:       []uint64{1, 2, 3},
			LastUpdated: 999,
		}
		suite.Require().NoError(suite.keeper.Callback(suite.ctx, kind, cb))

		data, err := suite.keeper.GetCallbackData(suite.ctx, kind, "ETH")
		suite.Require().NoError(err)
		suite.Require().Equal(types.NewCallbackData([]uint64{1, 2, 3}, 999, suite.requestID), data)
	}
}

func (suite *KeeperTestSuite) TestCallbackRequestIDMismatch() {
	suite.keeper.SetPendingRequest(suite.ctx, types.KindRate, "BTC", "X")

	err := suite.keeper.Callback(suite.ctx, types.KindRate, types.Callback{
		Relayer:   relayerA.String(),
		RequestID: "Y",
		Symbol:    "BTC",
		Rates:     []uint64{1},
	})
	suite.Require().ErrorIs(err, types.ErrRequestIDMismatch)
	suite.Require().ErrorContains(err, "expected: X, got: Y")

	_, err = suite.keeper.GetCallbackData(suite.ctx, types.KindRate, "BTC")
	suite.Require().ErrorIs(err, types.ErrCallbackNotFound)
}

func (suite *KeeperTestSuite) TestCallbackInvalidRelayer() {
	suite.keeper.SetPendingRequest(suite.ctx, types.KindRate, "BTC", "X")

	err := suite.keeper.Callback(suite.ctx, types.KindRate, types.Callback{
		Relayer:   stranger.String(),
		RequestID: "X",
		Symbol:    "BTC",
		Rates:     []uint64{1},
	})
	suite.Require().ErrorIs(err, types.ErrInvalidRelayer)
	suite.Require().ErrorContains(err, stranger.String())

	_, err = suite.keeper.GetCallbackData(suite.ctx, types.KindRate, "BTC")
	suite.Require().ErrorIs(err, types.ErrCallbackNotFound)
}

func (suite *KeeperTestSuite) TestCallbackWithoutRequest() {
	err := suite.keeper.Callback(suite.ctx, types.KindMedian, types.Callback{
		Relayer:   relayerA.String(),
		RequestID: "X",
		Symbol:    "BTC",
	})
	suite.Require().ErrorIs(err, types.ErrPendingNotFound)
}

func (suite *KeeperTestSuite) TestNewRequestOverwritesPending() {
	suite.Require().NoError(suite.keeper.RequestPrice(suite.ctx, types.KindRate, requester.String(), "BTC", nil))
	first := suite.requestID

	later := suite.ctx.WithBlockTime(time.Unix(blockTime+30, 0))
	suite.Require().NoError(suite.keeper.RequestPrice(later, types.KindRate, requester.String(), "BTC", nil))

	cb := types.Callback{Relayer: relayerA.String(), RequestID: first, Symbol: "BTC", Rates: []uint64{1}}
	suite.Require().ErrorIs(suite.keeper.Callback(later, types.KindRate, cb), types.ErrRequestIDMismatch)

	cb.RequestID = pricefeedtypes.RequestID(suite.keeper.ModuleAddress().String(), blockTime+30)
	suite.Require().NoError(suite.keeper.Callback(later, types.KindRate, cb))
}

func (suite *KeeperTestSuite) TestReply() {
	priceFeedEvent := abci.Event{
		Type: pricefeedtypes.EventTypePriceFeed,
		Attributes: []abci.EventAttribute{
			{Key: []byte(pricefeedtypes.AttributeKeyAction), Value: []byte(pricefeedtypes.ActionRequestPrice)},
			{Key: []byte(pricefeedtypes.AttributeKeyRequestID), Value: []byte("addr_5")},
			{Key: []byte(pricefeedtypes.AttributeKeySymbol), Value: []byte("ATOM")},
		},
	}

	err := suite.keeper.Reply(suite.ctx, types.Reply{ID: 9, Events: []abci.Event{priceFeedEvent}})
	suite.Require().ErrorIs(err, types.ErrUnknownReply)

	err = suite.keeper.Reply(suite.ctx, types.Reply{ID: types.KindMedian.ReplyID})
	suite.Require().ErrorIs(err, types.ErrEventNotFound)

	suite.Require().NoError(suite.keeper.Reply(suite.ctx, types.Reply{ID: types.KindMedian.ReplyID, Events: []abci.Event{priceFeedEvent}}))
	pending, err := suite.keeper.GetPendingRequest(suite.ctx, types.KindMedian, "ATOM")
	suite.Require().NoError(err)
	suite.Require().Equal("addr_5", pending)
}

func (suite *KeeperTestSuite) TestQuerier() {
	suite.Require().NoError(suite.keeper.RequestPrice(suite.ctx, types.KindRate, requester.String(), "BTC", nil))
	suite.Require().NoError(suite.keeper.Callback(suite.ctx, types.KindRate, types.Callback{
		Relayer:     relayerB.String(),
		RequestID:   suite.requestID,
		Symbol:      "BTC",
		Rates:       []uint64{19343340000000},
		LastUpdated: 990,
	}))

	querier := NewQuerier(*suite.keeper, types.ModuleCdc)
	req := abci.RequestQuery{Data: types.ModuleCdc.MustMarshalJSON(types.QuerySymbolParams{Symbol: "BTC"})}

	bz, err := querier(suite.ctx, []string{types.QueryPrice}, req)
	suite.Require().NoError(err)
	var data types.CallbackData
	suite.Require().NoError(types.ModuleCdc.UnmarshalJSON(bz, &data))
	suite.Require().Equal(types.NewCallbackData([]uint64{19343340000000}, 990, suite.requestID), data)

	bz, err = querier(suite.ctx, []string{types.QueryRateRequestID}, req)
	suite.Require().NoError(err)
	var idRes types.QueryRequestIDResponse
	suite.Require().NoError(types.ModuleCdc.UnmarshalJSON(bz, &idRes))
	suite.Require().Equal(suite.requestID, idRes.RequestID)

	_, err = querier(suite.ctx, []string{types.QueryMedian}, req)
	suite.Require().ErrorIs(err, types.ErrCallbackNotFound)

	_, err = querier(suite.ctx, []string{types.QueryDeviationRequestID}, req)
	suite.Require().ErrorIs(err, types.ErrPendingNotFound)
}
