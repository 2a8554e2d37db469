package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/GPTx-global/pricefeed/relayer/history"
	"github.com/GPTx-global/pricefeed/relayer/log"
	"github.com/GPTx-global/pricefeed/relayer/types"
	pricefeedtypes "github.com/GPTx-global/pricefeed/x/pricefeed/types"
)

// PriceSource returns the current rate of a symbol.
type PriceSource interface {
	Fetch(ctx context.Context, symbol string) (uint64, error)
}

// JobManager answers assigned price requests with a fixed pool of workers.
type JobManager struct {
	source  PriceSource
	history *history.Store
	workers int
	now     func() time.Time

	activeJobs cmap.ConcurrentMap[string, types.Job]
	jobQueue   chan types.Job
	quit       chan struct{}
	wg         sync.WaitGroup
}

func NewJobManager(source PriceSource, store *history.Store, workers, queueSize int) *JobManager {
	return &JobManager{
		source:     source,
		history:    store,
		workers:    workers,
		now:        time.Now,
		activeJobs: cmap.New[types.Job](),
		jobQueue:   make(chan types.Job, queueSize),
		quit:       make(chan struct{}),
	}
}

// Start launches the workers. Results are sent to resultQueue.
func (jm *JobManager) Start(ctx context.Context, resultQueue chan<- types.JobResult) {
	for i := 0; i < jm.workers; i++ {
		jm.wg.Add(1)
		go jm.worker(ctx, resultQueue)
	}
}

func (jm *JobManager) Stop() {
	close(jm.quit)
	jm.wg.Wait()
}

// SubmitJob queues job unless the same request is already in flight or the
// queue is full.
func (jm *JobManager) SubmitJob(job types.Job) bool {
	if !jm.activeJobs.SetIfAbsent(job.Key(), job) {
		log.Debugf("job %s is already active", job.Key())
		return false
	}

	select {
	case jm.jobQueue <- job:
		return true
	default:
		jm.activeJobs.Remove(job.Key())
		log.Errorf("job queue is full, drop job %s", job.ID)
		return false
	}
}

// Observe fetches the current rate of symbol and records it in the history.
func (jm *JobManager) Observe(ctx context.Context, symbol string) (uint64, uint64, error) {
	rate, err := jm.source.Fetch(ctx, symbol)
	if err != nil {
		return 0, 0, err
	}

	at := uint64(jm.now().Unix())
	jm.history.Record(symbol, rate, at)
	return rate, at, nil
}

func (jm *JobManager) worker(ctx context.Context, resultQueue chan<- types.JobResult) {
	defer jm.wg.Done()

	for {
		select {
		case job := <-jm.jobQueue:
			job.Nonce++
			jr, err := jm.executeJob(ctx, job)
			jm.activeJobs.Remove(job.Key())
			if err != nil {
				log.Errorf("failed to execute job %s: %v", job.ID, err)
				continue
			}

			select {
			case resultQueue <- jr:
			case <-ctx.Done():
				return
			}
		case <-jm.quit:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (jm *JobManager) executeJob(ctx context.Context, job types.Job) (types.JobResult, error) {
	rate, at, err := jm.Observe(ctx, job.Symbol)
	if err != nil {
		return types.JobResult{}, err
	}

	jr := types.JobResult{Job: job, LastUpdated: at}
	switch job.RequestType {
	case pricefeedtypes.RequestTypeRate:
		jr.Rates = []uint64{rate}
	case pricefeedtypes.RequestTypeMedian:
		jr.Rates, _, _ = jm.history.Medians(job.Symbol)
	case pricefeedtypes.RequestTypeDeviation:
		deviation, _, _ := jm.history.Deviation(job.Symbol)
		jr.Rates = []uint64{deviation}
	default:
		return types.JobResult{}, fmt.Errorf("unknown request type %s", job.RequestType)
	}

	log.Debugf("%s/%s: %v", job.ID, job.Symbol, jr.Rates)
	return jr, nil
}
