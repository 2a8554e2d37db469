package submitter

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	"github.com/GPTx-global/pricefeed/relayer/retry"
	"github.com/GPTx-global/pricefeed/relayer/types"
	pricefeedtypes "github.com/GPTx-global/pricefeed/x/pricefeed/types"
	pricequerytypes "github.com/GPTx-global/pricefeed/x/pricequery/types"
)

type recordingBroadcaster struct {
	mu      sync.Mutex
	batches [][]Msg
	err     error
}

func (b *recordingBroadcaster) Broadcast(_ context.Context, msgs ...Msg) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.err != nil {
		return b.err
	}
	b.batches = append(b.batches, msgs)
	return nil
}

func (b *recordingBroadcaster) last() []Msg {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.batches[len(b.batches)-1]
}

type SubmitterSuite struct {
	suite.Suite
	relayer     string
	broadcaster *recordingBroadcaster
	submitter   *Submitter
	blockTime   time.Time
}

func TestSubmitterSuite(t *testing.T) {
	suite.Run(t, new(SubmitterSuite))
}

func (s *SubmitterSuite) SetupTest() {
	s.relayer = sdk.AccAddress([]byte("relayer_address_____")).String()
	s.broadcaster = &recordingBroadcaster{}
	s.submitter = New(Config{
		Relayer:           s.relayer,
		MissedThreshold:   2,
		StartRequestID:    1,
		MedianDuration:    2,
		DeviationDuration: 3,
		Retry:             retry.Config{MaxAttempts: 1},
	}, s.broadcaster)
	s.blockTime = time.Unix(1_700_000_000, 0)
}

func (s *SubmitterSuite) prices() Prices {
	return Prices{
		Rates:      []pricefeedtypes.SymbolRate{{Symbol: "BTC", Rate: 5}},
		Medians:    []pricefeedtypes.SymbolRates{{Symbol: "BTC", Rates: []uint64{4, 5}}},
		Deviations: []pricefeedtypes.SymbolRate{{Symbol: "BTC", Rate: 1}},
	}
}

func (s *SubmitterSuite) TestRelay() {
	s.Require().NoError(s.submitter.Relay(context.Background(), s.blockTime, 10*time.Second, s.prices()))

	msgs := s.broadcaster.last()
	s.Require().Len(msgs, 3)

	relay := msgs[0].(*pricefeedtypes.MsgRelay)
	s.Equal(s.relayer, relay.Relayer)
	s.Equal(uint64(1_700_000_010), relay.ResolveTime)
	s.Equal(uint64(1), relay.RequestID)
	s.False(relay.Force)

	deviation := msgs[1].(*pricefeedtypes.MsgRelayHistoricalDeviation)
	s.Equal(uint64(1_700_000_030), deviation.ResolveTime)

	median := msgs[2].(*pricefeedtypes.MsgRelayHistoricalMedian)
	s.Equal(uint64(1_700_000_020), median.ResolveTime)
	s.Equal([]uint64{4, 5}, median.SymbolRates[0].Rates)

	s.Equal(uint64(2), s.submitter.RequestID())
}

func (s *SubmitterSuite) TestPostSchedule() {
	// request ids 1, 2, 3, 4, 5, 6
	var median, deviation []bool
	for i := 0; i < 6; i++ {
		median = append(median, s.submitter.PostMedian())
		deviation = append(deviation, s.submitter.PostDeviation())
		s.Require().NoError(s.submitter.Relay(context.Background(), s.blockTime, time.Second, Prices{
			Rates: []pricefeedtypes.SymbolRate{{Symbol: "BTC", Rate: 5}},
		}))
	}

	s.Equal([]bool{false, true, false, true, false, true}, median)
	s.Equal([]bool{false, false, true, false, false, true}, deviation)
}

func (s *SubmitterSuite) TestForceAfterMissedRelays() {
	ctx := context.Background()
	prices := Prices{Rates: []pricefeedtypes.SymbolRate{{Symbol: "BTC", Rate: 5}}}

	s.broadcaster.err = errors.New("rejected")
	s.Error(s.submitter.Relay(ctx, s.blockTime, time.Second, prices))
	s.Error(s.submitter.Relay(ctx, s.blockTime, time.Second, prices))
	s.Equal(uint64(2), s.submitter.Missed())
	// failed relays keep the request id
	s.Equal(uint64(1), s.submitter.RequestID())

	s.broadcaster.err = nil
	s.Require().NoError(s.submitter.Relay(ctx, s.blockTime, time.Second, prices))
	s.True(s.broadcaster.last()[0].(*pricefeedtypes.MsgRelay).Force)
	s.Equal(uint64(0), s.submitter.Missed())

	s.Require().NoError(s.submitter.Relay(ctx, s.blockTime, time.Second, prices))
	s.False(s.broadcaster.last()[0].(*pricefeedtypes.MsgRelay).Force)
}

func (s *SubmitterSuite) TestRelayRejectsInvalidMessages() {
	err := s.submitter.Relay(context.Background(), s.blockTime, time.Second, Prices{})
	s.ErrorContains(err, "no rates to relay")

	err = s.submitter.Relay(context.Background(), s.blockTime, time.Second, Prices{
		Rates: []pricefeedtypes.SymbolRate{{Symbol: " BTC", Rate: 5}},
	})
	s.ErrorIs(err, pricefeedtypes.ErrInvalidSymbol)
	s.Empty(s.broadcaster.batches)
}

func (s *SubmitterSuite) TestPing() {
	s.Require().NoError(s.submitter.Ping(context.Background()))
	ping := s.broadcaster.last()[0].(*pricefeedtypes.MsgPing)
	s.Equal(s.relayer, ping.Relayer)
}

func (s *SubmitterSuite) TestCallback() {
	testCases := []struct {
		name        string
		sig         string
		requestType pricefeedtypes.RequestType
		rates       []uint64
		expMsg      Msg
		errMsg      string
	}{
		{
			"rate", "callback_rate", pricefeedtypes.RequestTypeRate, []uint64{7},
			pricequerytypes.NewMsgCallbackRate(s.relayerAddr(), "req_1", "BTC", 7, 100, []byte("hi")), "",
		},
		{
			"median", "callback_median", pricefeedtypes.RequestTypeMedian, []uint64{6, 7},
			pricequerytypes.NewMsgCallbackMedian(s.relayerAddr(), "req_1", "BTC", []uint64{6, 7}, 100, []byte("hi")), "",
		},
		{
			"deviation", "callback_deviation", pricefeedtypes.RequestTypeDeviation, []uint64{1},
			pricequerytypes.NewMsgCallbackDeviation(s.relayerAddr(), "req_1", "BTC", []uint64{1}, 100, []byte("hi")), "",
		},
		{"unknown callback", "callback_price", pricefeedtypes.RequestTypeRate, []uint64{7}, nil, "unknown callback"},
		{"type mismatch", "callback_rate", pricefeedtypes.RequestTypeMedian, []uint64{7}, nil, "cannot answer request_median"},
		{"no rates", "callback_rate", pricefeedtypes.RequestTypeRate, nil, nil, "no rates for request req_1"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			jr := types.JobResult{
				Job: types.Job{
					ID:           "req_1",
					Symbol:       "BTC",
					RequestType:  tc.requestType,
					CallbackSig:  tc.sig,
					CallbackData: []byte("hi"),
				},
				Rates:       tc.rates,
				LastUpdated: 100,
			}

			err := s.submitter.Callback(context.Background(), jr)
			if tc.errMsg != "" {
				s.ErrorContains(err, tc.errMsg)
				return
			}
			s.Require().NoError(err)
			s.Equal([]Msg{tc.expMsg}, s.broadcaster.last())
		})
	}
}

func (s *SubmitterSuite) relayerAddr() string {
	return sdk.AccAddress([]byte("relayer_address_____")).String()
}

func (s *SubmitterSuite) TestGenerateOnly() {
	var buf bytes.Buffer
	broadcaster := NewGenerateOnly(&buf, "pricefeed-test")

	err := broadcaster.Broadcast(context.Background(),
		pricefeedtypes.NewMsgPing(s.relayer),
		pricequerytypes.NewMsgCallbackRate(s.relayer, "req_1", "BTC", 7, 100, nil),
	)
	s.Require().NoError(err)

	line := buf.String()
	s.True(strings.HasSuffix(line, "\n"))
	s.Contains(line, `"chain_id":"pricefeed-test"`)
	s.Contains(line, `"type":"pricefeed/MsgPing"`)
	s.Contains(line, `"type":"pricequery/MsgCallbackRate"`)
	s.Equal(1, strings.Count(line, "\n"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.ErrorIs(broadcaster.Broadcast(ctx, pricefeedtypes.NewMsgPing(s.relayer)), context.Canceled)
}
