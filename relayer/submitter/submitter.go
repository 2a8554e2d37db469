package submitter

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/GPTx-global/pricefeed/relayer/log"
	"github.com/GPTx-global/pricefeed/relayer/retry"
	"github.com/GPTx-global/pricefeed/relayer/types"
	pricefeedtypes "github.com/GPTx-global/pricefeed/x/pricefeed/types"
	pricequerytypes "github.com/GPTx-global/pricefeed/x/pricequery/types"
)

// Prices is one round of observations to relay.
type Prices struct {
	Rates      []pricefeedtypes.SymbolRate
	Medians    []pricefeedtypes.SymbolRates
	Deviations []pricefeedtypes.SymbolRate
}

// Submitter turns observations and job results into messages signed by the
// relayer and keeps the relay counters. After MissedThreshold failed relays
// in a row the next relay is forced past the freshness check.
type Submitter struct {
	relayer     string
	broadcaster Broadcaster
	retry       retry.Config

	mu                 sync.Mutex
	missed             uint64
	missedThreshold    uint64
	requestID          uint64
	medianRequestID    uint64
	deviationRequestID uint64
	medianDuration     uint64
	deviationDuration  uint64
}

type Config struct {
	Relayer           string
	MissedThreshold   uint64
	StartRequestID    uint64
	MedianDuration    uint64
	DeviationDuration uint64
	Retry             retry.Config
}

func New(cfg Config, broadcaster Broadcaster) *Submitter {
	return &Submitter{
		relayer:            cfg.Relayer,
		broadcaster:        broadcaster,
		retry:              cfg.Retry,
		missedThreshold:    cfg.MissedThreshold,
		requestID:          cfg.StartRequestID,
		medianRequestID:    cfg.StartRequestID,
		deviationRequestID: cfg.StartRequestID,
		medianDuration:     cfg.MedianDuration,
		deviationDuration:  cfg.DeviationDuration,
	}
}

// PostMedian reports whether the next relay carries median history.
func (s *Submitter) PostMedian() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.medianDuration > 0 && s.requestID%s.medianDuration == 0
}

// PostDeviation reports whether the next relay carries deviations.
func (s *Submitter) PostDeviation() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deviationDuration > 0 && s.requestID%s.deviationDuration == 0
}

func (s *Submitter) Missed() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.missed
}

func (s *Submitter) RequestID() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requestID
}

// Relay broadcasts prices resolving resolveDuration after blockTime.
func (s *Submitter) Relay(ctx context.Context, blockTime time.Time, resolveDuration time.Duration, prices Prices) error {
	if len(prices.Rates) == 0 {
		return fmt.Errorf("no rates to relay")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	force := s.missed >= s.missedThreshold
	msgs := []Msg{
		pricefeedtypes.NewMsgRelay(s.relayer, prices.Rates, uint64(blockTime.Add(resolveDuration).Unix()), s.requestID, force),
	}

	if len(prices.Deviations) > 0 {
		resolveTime := blockTime.Add(resolveDuration * time.Duration(s.deviationDuration)).Unix()
		msgs = append(msgs, pricefeedtypes.NewMsgRelayHistoricalDeviation(s.relayer, prices.Deviations, uint64(resolveTime), s.deviationRequestID, force))
	}
	if len(prices.Medians) > 0 {
		resolveTime := blockTime.Add(resolveDuration * time.Duration(s.medianDuration)).Unix()
		msgs = append(msgs, pricefeedtypes.NewMsgRelayHistoricalMedian(s.relayer, prices.Medians, uint64(resolveTime), s.medianRequestID, force))
	}

	if err := s.broadcast(ctx, msgs...); err != nil {
		s.missed++
		return err
	}

	log.Logger().Info("relayed prices",
		"request_id", s.requestID,
		"symbols", len(prices.Rates),
		"median", len(prices.Medians) > 0,
		"deviation", len(prices.Deviations) > 0,
		"force", force,
	)

	if force {
		s.missed = 0
	}
	s.requestID++
	if len(prices.Medians) > 0 {
		s.medianRequestID++
	}
	if len(prices.Deviations) > 0 {
		s.deviationRequestID++
	}
	return nil
}

// Ping refreshes the liveness of the relayer.
func (s *Submitter) Ping(ctx context.Context) error {
	return s.broadcast(ctx, pricefeedtypes.NewMsgPing(s.relayer))
}

// Callback answers the request of jr on the consumer module.
func (s *Submitter) Callback(ctx context.Context, jr types.JobResult) error {
	msg, err := s.callbackMsg(jr)
	if err != nil {
		return err
	}
	return s.broadcast(ctx, msg)
}

func (s *Submitter) callbackMsg(jr types.JobResult) (Msg, error) {
	job := jr.Job
	kind, ok := pricequerytypes.KindByCallbackSig(job.CallbackSig)
	if !ok {
		return nil, fmt.Errorf("unknown callback %q for request %s", job.CallbackSig, job.ID)
	}
	if kind.RequestType != job.RequestType {
		return nil, fmt.Errorf("callback %s cannot answer %s", job.CallbackSig, job.RequestType)
	}
	if len(jr.Rates) == 0 {
		return nil, fmt.Errorf("no rates for request %s", job.ID)
	}

	switch kind {
	case pricequerytypes.KindRate:
		return pricequerytypes.NewMsgCallbackRate(s.relayer, job.ID, job.Symbol, jr.Rates[0], jr.LastUpdated, job.CallbackData), nil
	case pricequerytypes.KindMedian:
		return pricequerytypes.NewMsgCallbackMedian(s.relayer, job.ID, job.Symbol, jr.Rates, jr.LastUpdated, job.CallbackData), nil
	default:
		return pricequerytypes.NewMsgCallbackDeviation(s.relayer, job.ID, job.Symbol, jr.Rates, jr.LastUpdated, job.CallbackData), nil
	}
}

func (s *Submitter) broadcast(ctx context.Context, msgs ...Msg) error {
	for _, msg := range msgs {
		if err := msg.ValidateBasic(); err != nil {
			return fmt.Errorf("invalid %s: %w", msg.Type(), err)
		}
	}

	return retry.Do(ctx, s.retry, func() error {
		return s.broadcaster.Broadcast(ctx, msgs...)
	}, retry.DefaultIsRetryable)
}
