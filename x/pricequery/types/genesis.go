package types

import (
	"fmt"
)

// PendingRequest is the correlation id the oracle returned for the latest
// request of a kind and symbol.
type PendingRequest struct {
	Kind      string `json:"kind"`
	Symbol    string `json:"symbol"`
	RequestID string `json:"request_id"`
}

// StoredCallback is the latest callback data of a kind and symbol.
type StoredCallback struct {
	Kind   string       `json:"kind"`
	Symbol string       `json:"symbol"`
	Data   CallbackData `json:"data"`
}

// GenesisState defines the pricequery module's genesis state.
type GenesisState struct {
	PendingRequests []PendingRequest `json:"pending_requests"`
	Callbacks       []StoredCallback `json:"callbacks"`
}

// DefaultGenesisState returns the default genesis state.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		PendingRequests: []PendingRequest{},
		Callbacks:       []StoredCallback{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	seen := make(map[string]bool)
	for _, p := range gs.PendingRequests {
		if _, ok := KindByName(p.Kind); !ok {
			return fmt.Errorf("pending request: %w: %s", ErrUnknownKind, p.Kind)
		}
		if p.Symbol == "" || p.RequestID == "" {
			return fmt.Errorf("pending request %s: empty symbol or request id", p.Kind)
		}
		key := p.Kind + "/" + p.Symbol
		if seen[key] {
			return fmt.Errorf("duplicate pending request %s", key)
		}
		seen[key] = true
	}

	seen = make(map[string]bool)
	for _, c := range gs.Callbacks {
		if _, ok := KindByName(c.Kind); !ok {
			return fmt.Errorf("callback: %w: %s", ErrUnknownKind, c.Kind)
		}
		if c.Symbol == "" {
			return fmt.Errorf("callback %s: empty symbol", c.Kind)
		}
		key := c.Kind + "/" + c.Symbol
		if seen[key] {
			return fmt.Errorf("duplicate callback %s", key)
		}
		seen[key] = true
	}
	return nil
}
