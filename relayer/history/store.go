package history

import (
	"sort"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	cmap "github.com/orcaman/concurrent-map/v2"
)

// Store keeps a bounded window of observed rates per symbol together with
// the median of the window after each observation.
type Store struct {
	size   int
	series cmap.ConcurrentMap[string, series]
}

type series struct {
	rates       []uint64
	medians     []uint64
	lastUpdated uint64
}

func New(size int) *Store {
	return &Store{
		size:   size,
		series: cmap.New[series](),
	}
}

// Record appends rate observed at the given unix time.
func (s *Store) Record(symbol string, rate, at uint64) {
	s.series.Upsert(symbol, series{}, func(exist bool, old series, _ series) series {
		next := series{lastUpdated: at}
		if exist {
			next.rates = append(next.rates, old.rates...)
			next.medians = append(next.medians, old.medians...)
		}

		next.rates = truncate(append(next.rates, rate), s.size)
		next.medians = truncate(append(next.medians, median(next.rates)), s.size)
		return next
	})
}

// Latest returns the most recent rate of symbol and when it was observed.
func (s *Store) Latest(symbol string) (uint64, uint64, bool) {
	data, ok := s.series.Get(symbol)
	if !ok || len(data.rates) == 0 {
		return 0, 0, false
	}
	return data.rates[len(data.rates)-1], data.lastUpdated, true
}

// Medians returns the median history of symbol, oldest first.
func (s *Store) Medians(symbol string) ([]uint64, uint64, bool) {
	data, ok := s.series.Get(symbol)
	if !ok || len(data.medians) == 0 {
		return nil, 0, false
	}
	return append([]uint64(nil), data.medians...), data.lastUpdated, true
}

// Deviation returns the population standard deviation of the window of symbol.
func (s *Store) Deviation(symbol string) (uint64, uint64, bool) {
	data, ok := s.series.Get(symbol)
	if !ok || len(data.rates) == 0 {
		return 0, 0, false
	}
	return deviation(data.rates), data.lastUpdated, true
}

func truncate(values []uint64, size int) []uint64 {
	if len(values) <= size {
		return values
	}
	return values[len(values)-size:]
}

func median(rates []uint64) uint64 {
	sorted := append([]uint64(nil), rates...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	sum := sdkmath.NewUint(sorted[mid-1]).Add(sdkmath.NewUint(sorted[mid]))
	return sum.QuoUint64(2).Uint64()
}

func deviation(rates []uint64) uint64 {
	n := sdk.NewDec(int64(len(rates)))

	sum := sdk.ZeroDec()
	for _, rate := range rates {
		sum = sum.Add(sdk.NewDecFromInt(sdkmath.NewIntFromUint64(rate)))
	}
	mean := sum.Quo(n)

	variance := sdk.ZeroDec()
	for _, rate := range rates {
		diff := sdk.NewDecFromInt(sdkmath.NewIntFromUint64(rate)).Sub(mean)
		variance = variance.Add(diff.Mul(diff))
	}
	variance = variance.Quo(n)

	stddev, err := variance.ApproxSqrt()
	if err != nil {
		return 0
	}
	return stddev.TruncateInt().Uint64()
}
