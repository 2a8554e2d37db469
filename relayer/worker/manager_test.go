package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/GPTx-global/pricefeed/relayer/history"
	"github.com/GPTx-global/pricefeed/relayer/types"
	pricefeedtypes "github.com/GPTx-global/pricefeed/x/pricefeed/types"
)

type fakeSource struct {
	mu    sync.Mutex
	rates map[string][]uint64
}

func (f *fakeSource) Fetch(_ context.Context, symbol string) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rates := f.rates[symbol]
	if len(rates) == 0 {
		return 0, errors.New("no price")
	}
	f.rates[symbol] = rates[1:]
	return rates[0], nil
}

type ManagerSuite struct {
	suite.Suite
	source  *fakeSource
	store   *history.Store
	manager *JobManager
	results chan types.JobResult
	cancel  context.CancelFunc
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerSuite))
}

func (s *ManagerSuite) SetupTest() {
	s.source = &fakeSource{rates: map[string][]uint64{
		"BTC": {100, 300, 200},
	}}
	s.store = history.New(10)
	s.manager = NewJobManager(s.source, s.store, 1, 8)
	s.manager.now = func() time.Time { return time.Unix(1_700_000_000, 0) }
	s.results = make(chan types.JobResult, 8)
}

func (s *ManagerSuite) start() {
	var ctx context.Context
	ctx, s.cancel = context.WithCancel(context.Background())
	s.manager.Start(ctx, s.results)
}

func (s *ManagerSuite) TearDownTest() {
	if s.cancel != nil {
		s.cancel()
		s.manager.Stop()
		s.cancel = nil
	}
}

func (s *ManagerSuite) next() types.JobResult {
	select {
	case jr := <-s.results:
		return jr
	case <-time.After(2 * time.Second):
		s.FailNow("no job result")
		return types.JobResult{}
	}
}

func (s *ManagerSuite) TestAnswersEveryRequestType() {
	s.start()

	s.True(s.manager.SubmitJob(types.Job{ID: "r1", Symbol: "BTC", RequestType: pricefeedtypes.RequestTypeRate}))
	jr := s.next()
	s.Equal("r1", jr.Job.ID)
	s.Equal(uint64(1), jr.Job.Nonce)
	s.Equal([]uint64{100}, jr.Rates)
	s.Equal(uint64(1_700_000_000), jr.LastUpdated)

	s.True(s.manager.SubmitJob(types.Job{ID: "r2", Symbol: "BTC", RequestType: pricefeedtypes.RequestTypeMedian}))
	jr = s.next()
	s.Equal([]uint64{100, 200}, jr.Rates)

	s.True(s.manager.SubmitJob(types.Job{ID: "r3", Symbol: "BTC", RequestType: pricefeedtypes.RequestTypeDeviation}))
	jr = s.next()
	// window 100, 300, 200
	s.Equal([]uint64{81}, jr.Rates)
}

func (s *ManagerSuite) TestFailedJobIsDropped() {
	s.start()

	s.True(s.manager.SubmitJob(types.Job{ID: "r1", Symbol: "ETH", RequestType: pricefeedtypes.RequestTypeRate}))
	s.True(s.manager.SubmitJob(types.Job{ID: "r2", Symbol: "BTC", RequestType: pricefeedtypes.RequestTypeRate}))

	jr := s.next()
	s.Equal("r2", jr.Job.ID)
}

func (s *ManagerSuite) TestSubmitJobDeduplicates() {
	// workers are not started, so the first job stays active
	s.True(s.manager.SubmitJob(types.Job{ID: "r1", Symbol: "BTC"}))
	s.False(s.manager.SubmitJob(types.Job{ID: "r1", Symbol: "BTC"}))
	s.True(s.manager.SubmitJob(types.Job{ID: "r2", Symbol: "BTC"}))
}

func (s *ManagerSuite) TestSubmitJobSameBlockRequests() {
	// requests of one requester in one block share the correlation id
	id := pricefeedtypes.RequestID("cosmos1module", 1_000)

	s.True(s.manager.SubmitJob(types.Job{ID: id, Symbol: "BTC", RequestType: pricefeedtypes.RequestTypeRate}))
	s.True(s.manager.SubmitJob(types.Job{ID: id, Symbol: "ETH", RequestType: pricefeedtypes.RequestTypeRate}))
	s.True(s.manager.SubmitJob(types.Job{ID: id, Symbol: "BTC", RequestType: pricefeedtypes.RequestTypeMedian}))
	s.False(s.manager.SubmitJob(types.Job{ID: id, Symbol: "BTC", RequestType: pricefeedtypes.RequestTypeRate}))
}

func (s *ManagerSuite) TestAnswersSameBlockRequests() {
	s.source.rates["ETH"] = []uint64{50}
	s.start()

	id := pricefeedtypes.RequestID("cosmos1module", 1_000)
	s.True(s.manager.SubmitJob(types.Job{ID: id, Symbol: "BTC", RequestType: pricefeedtypes.RequestTypeRate}))
	s.True(s.manager.SubmitJob(types.Job{ID: id, Symbol: "ETH", RequestType: pricefeedtypes.RequestTypeRate}))

	answered := map[string]uint64{}
	for i := 0; i < 2; i++ {
		jr := s.next()
		s.Equal(id, jr.Job.ID)
		answered[jr.Job.Symbol] = jr.Rates[0]
	}
	s.Equal(map[string]uint64{"BTC": 100, "ETH": 50}, answered)
}

func (s *ManagerSuite) TestSubmitJobQueueFull() {
	s.manager = NewJobManager(s.source, s.store, 1, 1)

	s.True(s.manager.SubmitJob(types.Job{ID: "r1", Symbol: "BTC"}))
	s.False(s.manager.SubmitJob(types.Job{ID: "r2", Symbol: "BTC"}))
	// the dropped job can be submitted again later
	s.False(s.manager.activeJobs.Has(types.Job{ID: "r2", Symbol: "BTC"}.Key()))
}

func (s *ManagerSuite) TestObserveRecordsHistory() {
	rate, at, err := s.manager.Observe(context.Background(), "BTC")
	s.Require().NoError(err)
	s.Equal(uint64(100), rate)
	s.Equal(uint64(1_700_000_000), at)

	latest, _, ok := s.store.Latest("BTC")
	s.True(ok)
	s.Equal(uint64(100), latest)

	_, _, err = s.manager.Observe(context.Background(), "ETH")
	s.Error(err)
}
