package daemon

import (
	"context"
	"fmt"
	"sync"
	"time"

	rpcclient "github.com/tendermint/tendermint/rpc/client"
	"golang.org/x/sync/errgroup"

	"github.com/GPTx-global/pricefeed/relayer/config"
	"github.com/GPTx-global/pricefeed/relayer/health"
	"github.com/GPTx-global/pricefeed/relayer/history"
	"github.com/GPTx-global/pricefeed/relayer/log"
	"github.com/GPTx-global/pricefeed/relayer/retry"
	"github.com/GPTx-global/pricefeed/relayer/submitter"
	"github.com/GPTx-global/pricefeed/relayer/subscribe"
	"github.com/GPTx-global/pricefeed/relayer/types"
	"github.com/GPTx-global/pricefeed/relayer/worker"
	pricefeedtypes "github.com/GPTx-global/pricefeed/x/pricefeed/types"
)

// ChainClient is the part of the tendermint RPC client the daemon needs.
type ChainClient interface {
	rpcclient.EventsClient
	rpcclient.StatusClient
}

// Daemon relays prices periodically, keeps the relayer live with pings and
// answers the price requests assigned to it.
type Daemon struct {
	cfg    config.Config
	client ChainClient

	history          *history.Store
	subscribeManager *subscribe.SubscribeManager
	jobManager       *worker.JobManager
	submitter        *submitter.Submitter
	health           *health.Checker

	resultQueue chan types.JobResult
	wg          sync.WaitGroup
}

func New(cfg config.Config, client ChainClient, source worker.PriceSource, broadcaster submitter.Broadcaster) *Daemon {
	store := history.New(cfg.Relayer.HistorySize)

	d := &Daemon{
		cfg:              cfg,
		client:           client,
		history:          store,
		subscribeManager: subscribe.NewSubscribeManager(cfg.Relayer.Address, cfg.ChannelSize()),
		jobManager:       worker.NewJobManager(source, store, cfg.Relayer.Workers, cfg.ChannelSize()),
		submitter: submitter.New(submitter.Config{
			Relayer:           cfg.Relayer.Address,
			MissedThreshold:   cfg.Relayer.MissedThreshold,
			StartRequestID:    cfg.Relayer.StartRequestID,
			MedianDuration:    cfg.Relayer.MedianDuration,
			DeviationDuration: cfg.Relayer.DeviationDuration,
			Retry:             retry.BroadcastConfig(),
		}, broadcaster),
		health:      health.NewChecker(cfg.PingInterval()),
		resultQueue: make(chan types.JobResult, cfg.ChannelSize()),
	}

	d.health.AddCheck(health.NewFuncCheck("rpc", func(ctx context.Context) error {
		_, err := d.client.Status(ctx)
		return err
	}))

	return d
}

// NewFetcher builds the HTTP price source described by cfg.
func NewFetcher(cfg config.Config) *worker.Fetcher {
	return worker.NewFetcher(cfg, retry.FetchConfig())
}

// Start subscribes to assigned requests and launches every loop of the daemon.
func (d *Daemon) Start(ctx context.Context) error {
	d.jobManager.Start(ctx, d.resultQueue)

	if err := d.subscribeManager.SetSubscribe(ctx, d.client); err != nil {
		return fmt.Errorf("failed to set subscribe: %w", err)
	}

	d.run(ctx, d.Monitor)
	d.run(ctx, d.ServeCallbacks)
	d.run(ctx, d.ServeRelay)
	d.run(ctx, d.ServePing)
	d.run(ctx, d.health.Start)

	log.Infof("relayer %s started", d.cfg.Relayer.Address)
	return nil
}

// Stop waits for the loops to exit. ctx given to Start must be cancelled first.
func (d *Daemon) Stop(ctx context.Context) {
	if err := d.subscribeManager.Unsubscribe(ctx, d.client); err != nil {
		log.Errorf("failed to unsubscribe: %v", err)
	}
	d.jobManager.Stop()
	d.wg.Wait()
}

func (d *Daemon) run(ctx context.Context, loop func(ctx context.Context)) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		loop(ctx)
	}()
}

// Monitor forwards assigned requests to the job manager.
func (d *Daemon) Monitor(ctx context.Context) {
	for {
		jobs, ok := d.subscribeManager.Subscribe(ctx)
		if !ok {
			return
		}
		for _, job := range jobs {
			d.jobManager.SubmitJob(job)
		}
	}
}

// ServeCallbacks answers finished jobs on the consumer module.
func (d *Daemon) ServeCallbacks(ctx context.Context) {
	for {
		select {
		case jr := <-d.resultQueue:
			if err := d.submitter.Callback(ctx, jr); err != nil {
				log.Errorf("failed to answer request %s: %v", jr.Job.ID, err)
			}
		case <-ctx.Done():
			return
		}
	}
}

// ServeRelay relays all configured symbols every relay interval.
func (d *Daemon) ServeRelay(ctx context.Context) {
	ticker := time.NewTicker(d.cfg.RelayInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := d.Tick(ctx); err != nil {
				log.Errorf("relay tick failed: %v", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

// ServePing pings the price feed every ping interval.
func (d *Daemon) ServePing(ctx context.Context) {
	ticker := time.NewTicker(d.cfg.PingInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := d.submitter.Ping(ctx); err != nil {
				log.Errorf("ping failed: %v", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

// Tick observes every configured symbol and relays the round. Resolve times
// are derived from the latest block time.
func (d *Daemon) Tick(ctx context.Context) error {
	status, err := d.client.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to query status: %w", err)
	}
	blockTime := status.SyncInfo.LatestBlockTime
	if blockTime.Unix() < 1 {
		return fmt.Errorf("expected positive block time")
	}

	symbols := d.cfg.Symbols()
	if len(symbols) == 0 {
		log.Debugf("no sources configured, nothing to relay")
		return nil
	}
	rates := make([]pricefeedtypes.SymbolRate, len(symbols))

	g, gctx := errgroup.WithContext(ctx)
	for i, symbol := range symbols {
		i, symbol := i, symbol
		g.Go(func() error {
			rate, _, err := d.jobManager.Observe(gctx, symbol)
			if err != nil {
				return err
			}
			rates[i] = pricefeedtypes.SymbolRate{Symbol: symbol, Rate: rate}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	prices := submitter.Prices{Rates: rates}
	if d.submitter.PostMedian() {
		for _, symbol := range symbols {
			if medians, _, ok := d.history.Medians(symbol); ok {
				prices.Medians = append(prices.Medians, pricefeedtypes.SymbolRates{Symbol: symbol, Rates: medians})
			}
		}
	}
	if d.submitter.PostDeviation() {
		for _, symbol := range symbols {
			if deviation, _, ok := d.history.Deviation(symbol); ok {
				prices.Deviations = append(prices.Deviations, pricefeedtypes.SymbolRate{Symbol: symbol, Rate: deviation})
			}
		}
	}

	return d.submitter.Relay(ctx, blockTime, d.cfg.ResolveDuration(), prices)
}

func (d *Daemon) Healthy() bool {
	return d.health.IsHealthy()
}
