package subscribe

import (
	"context"
	"fmt"
	"sync"

	rpcclient "github.com/tendermint/tendermint/rpc/client"
	coretypes "github.com/tendermint/tendermint/rpc/core/types"

	"github.com/GPTx-global/pricefeed/relayer/log"
	"github.com/GPTx-global/pricefeed/relayer/types"
)

const subscriber = "price-relayer"

// SubscribeManager turns price_feed request events addressed to the relayer
// into jobs.
type SubscribeManager struct {
	relayer     string
	channelSize int

	mu           sync.RWMutex
	subscription <-chan coretypes.ResultEvent
}

func NewSubscribeManager(relayer string, channelSize int) *SubscribeManager {
	return &SubscribeManager{
		relayer:     relayer,
		channelSize: channelSize,
	}
}

// SetSubscribe subscribes to the transactions assigning requests to the relayer.
func (sm *SubscribeManager) SetSubscribe(ctx context.Context, client rpcclient.EventsClient) error {
	query := types.RequestQuery(sm.relayer)
	ch, err := client.Subscribe(ctx, subscriber, query, sm.channelSize)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", query, err)
	}

	sm.mu.Lock()
	sm.subscription = ch
	sm.mu.Unlock()

	log.Debugf("subscribed to %s", query)
	return nil
}

// Unsubscribe drops every subscription of the relayer.
func (sm *SubscribeManager) Unsubscribe(ctx context.Context, client rpcclient.EventsClient) error {
	sm.mu.Lock()
	sm.subscription = nil
	sm.mu.Unlock()

	return client.UnsubscribeAll(ctx, subscriber)
}

// Subscribe blocks until the next event with jobs for the relayer arrives.
// It returns false once ctx is done or the subscription is closed.
func (sm *SubscribeManager) Subscribe(ctx context.Context) ([]types.Job, bool) {
	sm.mu.RLock()
	ch := sm.subscription
	sm.mu.RUnlock()

	for {
		select {
		case event, ok := <-ch:
			if !ok {
				return nil, false
			}
			if jobs := types.MakeJobs(event, sm.relayer); jobs != nil {
				return jobs, true
			}
		case <-ctx.Done():
			return nil, false
		}
	}
}
