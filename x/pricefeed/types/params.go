package types

import (
	errorsmod "cosmossdk.io/errors"
)

// DefaultPingThreshold is the number of seconds a relayer stays live after a ping.
const DefaultPingThreshold uint64 = 60

// Params defines the pricefeed module parameters.
type Params struct {
	// PingThreshold is the liveness window of a relayer ping, in seconds.
	PingThreshold uint64 `json:"ping_threshold" yaml:"ping_threshold"`
	// MedianStatus enables relaying of historical medians.
	MedianStatus bool `json:"median_status" yaml:"median_status"`
}

// NewParams creates a new Params instance.
func NewParams(pingThreshold uint64, medianStatus bool) Params {
	return Params{
		PingThreshold: pingThreshold,
		MedianStatus:  medianStatus,
	}
}

// DefaultParams returns default pricefeed module parameters
func DefaultParams() Params {
	return NewParams(DefaultPingThreshold, true)
}

// Validate performs basic validation on pricefeed parameters
func (p Params) Validate() error {
	if p.PingThreshold == 0 {
		return errorsmod.Wrap(ErrInvalidParams, "ping threshold cannot be zero")
	}
	return nil
}
