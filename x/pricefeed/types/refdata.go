package types

import (
	"math"

	sdkmath "cosmossdk.io/math"
)

// USD is the unit of account. Its records are never stored.
const USD = "USD"

// E9 is the fixed-point scale of relayed rates.
const E9 uint64 = 1_000_000_000

var (
	// E18 is the fixed-point scale of derived pair rates.
	E18 = sdkmath.NewUint(1_000_000_000_000_000_000)
)

// RefData is the latest scalar observation of a symbol.
type RefData struct {
	// Rate in units of 1e-9 USD
	Rate uint64 `json:"rate"`
	// ResolveTime is the unix time at which the rate was resolved
	ResolveTime uint64 `json:"resolve_time"`
	// RequestID of the observation at the data source
	RequestID uint64 `json:"request_id"`
}

func NewRefData(rate, resolveTime, requestID uint64) RefData {
	return RefData{
		Rate:        rate,
		ResolveTime: resolveTime,
		RequestID:   requestID,
	}
}

// RefMedianData is the latest vector of rates (median history) of a symbol.
type RefMedianData struct {
	Rates       []uint64 `json:"rates"`
	ResolveTime uint64   `json:"resolve_time"`
	RequestID   uint64   `json:"request_id"`
}

func NewRefMedianData(rates []uint64, resolveTime, requestID uint64) RefMedianData {
	return RefMedianData{
		Rates:       rates,
		ResolveTime: resolveTime,
		RequestID:   requestID,
	}
}

// ReferenceData is a pair rate derived from two stored rates. It is never stored.
type ReferenceData struct {
	// Rate of base in units of quote, scaled by 1e18
	Rate sdkmath.Uint `json:"rate"`
	// LastUpdatedBase is the resolve time of the base rate
	LastUpdatedBase uint64 `json:"last_updated_base"`
	// LastUpdatedQuote is the resolve time of the quote rate
	LastUpdatedQuote uint64 `json:"last_updated_quote"`
}

func NewReferenceData(rate sdkmath.Uint, lastUpdatedBase, lastUpdatedQuote uint64) ReferenceData {
	return ReferenceData{
		Rate:             rate,
		LastUpdatedBase:  lastUpdatedBase,
		LastUpdatedQuote: lastUpdatedQuote,
	}
}

// USDRefData returns the virtual rate record of USD.
func USDRefData() RefData {
	return NewRefData(E9, math.MaxUint64, 0)
}

// USDMedianRefData returns the virtual median record of USD.
func USDMedianRefData() RefMedianData {
	return NewRefMedianData([]uint64{E9}, math.MaxUint64, 0)
}

// USDDeviationData returns the virtual deviation record of USD.
func USDDeviationData() RefData {
	return NewRefData(0, math.MaxUint64, 0)
}

// SymbolRate pairs a symbol with a scalar rate.
type SymbolRate struct {
	Symbol string `json:"symbol"`
	Rate   uint64 `json:"rate"`
}

// SymbolRates pairs a symbol with a vector of rates.
type SymbolRates struct {
	Symbol string   `json:"symbol"`
	Rates  []uint64 `json:"rates"`
}

// SymbolPair is a (base, quote) pair used by reference data queries.
type SymbolPair struct {
	Base  string `json:"base"`
	Quote string `json:"quote"`
}
