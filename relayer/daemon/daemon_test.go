package daemon

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"
	coretypes "github.com/tendermint/tendermint/rpc/core/types"

	"github.com/GPTx-global/pricefeed/relayer/config"
	"github.com/GPTx-global/pricefeed/relayer/submitter"
	pricefeedtypes "github.com/GPTx-global/pricefeed/x/pricefeed/types"
	pricequerytypes "github.com/GPTx-global/pricefeed/x/pricequery/types"
)

type fakeChain struct {
	events    chan coretypes.ResultEvent
	blockTime time.Time
	statusErr error
}

func (c *fakeChain) Subscribe(context.Context, string, string, ...int) (<-chan coretypes.ResultEvent, error) {
	return c.events, nil
}

func (c *fakeChain) Unsubscribe(context.Context, string, string) error { return nil }
func (c *fakeChain) UnsubscribeAll(context.Context, string) error      { return nil }

func (c *fakeChain) Status(context.Context) (*coretypes.ResultStatus, error) {
	if c.statusErr != nil {
		return nil, c.statusErr
	}
	return &coretypes.ResultStatus{SyncInfo: coretypes.SyncInfo{LatestBlockTime: c.blockTime}}, nil
}

type fixedSource struct {
	rates map[string]uint64
}

func (s fixedSource) Fetch(_ context.Context, symbol string) (uint64, error) {
	rate, ok := s.rates[symbol]
	if !ok {
		return 0, errors.New("no price")
	}
	return rate, nil
}

type recordingBroadcaster struct {
	mu      sync.Mutex
	batches [][]submitter.Msg
}

func (b *recordingBroadcaster) Broadcast(_ context.Context, msgs ...submitter.Msg) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.batches = append(b.batches, msgs)
	return nil
}

func (b *recordingBroadcaster) all() [][]submitter.Msg {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([][]submitter.Msg(nil), b.batches...)
}

type DaemonSuite struct {
	suite.Suite
	cfg         config.Config
	chain       *fakeChain
	source      fixedSource
	broadcaster *recordingBroadcaster
	daemon      *Daemon
}

func TestDaemonSuite(t *testing.T) {
	suite.Run(t, new(DaemonSuite))
}

func (s *DaemonSuite) SetupTest() {
	s.cfg = config.Default()
	s.cfg.Relayer.Address = sdk.AccAddress([]byte("relayer_address_____")).String()
	s.cfg.Relayer.PingInterval = 3600
	s.cfg.Relayer.RelayInterval = 3600
	s.cfg.Relayer.MedianDuration = 2
	s.cfg.Relayer.DeviationDuration = 0
	s.cfg.Relayer.Workers = 1
	s.cfg.Sources = []config.SourceConfig{
		{Symbol: "BTC", URL: "http://prices/btc", Path: "price"},
		{Symbol: "ETH", URL: "http://prices/eth", Path: "price"},
	}
	s.Require().NoError(s.cfg.Validate())

	s.chain = &fakeChain{
		events:    make(chan coretypes.ResultEvent, 4),
		blockTime: time.Unix(1_700_000_000, 0),
	}
	s.source = fixedSource{rates: map[string]uint64{"BTC": 30_000_000_000_000, "ETH": 2_000_000_000_000}}
	s.broadcaster = &recordingBroadcaster{}
	s.daemon = New(s.cfg, s.chain, s.source, s.broadcaster)
}

func (s *DaemonSuite) TestTick() {
	ctx := context.Background()

	s.Require().NoError(s.daemon.Tick(ctx))
	batches := s.broadcaster.all()
	s.Require().Len(batches, 1)
	s.Require().Len(batches[0], 1)

	relay := batches[0][0].(*pricefeedtypes.MsgRelay)
	s.Equal([]pricefeedtypes.SymbolRate{
		{Symbol: "BTC", Rate: 30_000_000_000_000},
		{Symbol: "ETH", Rate: 2_000_000_000_000},
	}, relay.SymbolRates)
	s.Equal(uint64(1_700_000_010), relay.ResolveTime)
	s.Equal(uint64(1), relay.RequestID)

	// the second relay carries the median history
	s.Require().NoError(s.daemon.Tick(ctx))
	batches = s.broadcaster.all()
	s.Require().Len(batches[1], 2)
	median := batches[1][1].(*pricefeedtypes.MsgRelayHistoricalMedian)
	s.Equal([]uint64{30_000_000_000_000, 30_000_000_000_000}, median.SymbolRates[0].Rates)
}

func (s *DaemonSuite) TestTickFailures() {
	s.chain.statusErr = errors.New("node down")
	s.ErrorContains(s.daemon.Tick(context.Background()), "node down")

	s.chain.statusErr = nil
	s.chain.blockTime = time.Unix(0, 0)
	s.ErrorContains(s.daemon.Tick(context.Background()), "expected positive block time")

	s.chain.blockTime = time.Unix(1_700_000_000, 0)
	delete(s.source.rates, "ETH")
	s.ErrorContains(s.daemon.Tick(context.Background()), "no price")
	s.Empty(s.broadcaster.all())
}

func (s *DaemonSuite) TestAnswersAssignedRequests() {
	ctx, cancel := context.WithCancel(context.Background())
	s.Require().NoError(s.daemon.Start(ctx))

	key := func(attribute string) string { return pricefeedtypes.EventTypePriceFeed + "." + attribute }
	s.chain.events <- coretypes.ResultEvent{Events: map[string][]string{
		key(pricefeedtypes.AttributeKeyAction):            {pricefeedtypes.ActionRequestPrice},
		key(pricefeedtypes.AttributeKeyRequestID):         {"cosmos1requester_1700000000"},
		key(pricefeedtypes.AttributeKeySymbol):            {"ETH"},
		key(pricefeedtypes.AttributeKeyRequestType):       {"request_rate"},
		key(pricefeedtypes.AttributeKeyRelayerAddress):    {s.cfg.Relayer.Address},
		key(pricefeedtypes.AttributeKeyResolveTime):       {"0"},
		key(pricefeedtypes.AttributeKeyCallbackSignature): {"callback_rate"},
		key(pricefeedtypes.AttributeKeyCallbackData):      {"aGk="},
	}}

	s.Eventually(func() bool { return len(s.broadcaster.all()) == 1 }, 2*time.Second, 5*time.Millisecond)

	callback := s.broadcaster.all()[0][0].(*pricequerytypes.MsgCallbackRate)
	s.Equal(s.cfg.Relayer.Address, callback.Relayer)
	s.Equal("cosmos1requester_1700000000", callback.RequestID)
	s.Equal("ETH", callback.Symbol)
	s.Equal(uint64(2_000_000_000_000), callback.SymbolRate)
	s.Equal([]byte("hi"), callback.CallbackData)
	s.True(s.daemon.Healthy())

	cancel()
	s.daemon.Stop(context.Background())
}
