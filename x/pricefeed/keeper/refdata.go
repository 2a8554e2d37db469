package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GPTx-global/pricefeed/x/pricefeed/types"
)

// RelayResult lists the symbols written by a relay and those skipped because
// the stored record was at least as fresh.
type RelayResult struct {
	Applied []string
	Skipped []string
}

func (r *RelayResult) add(symbol string, applied bool) {
	if applied {
		r.Applied = append(r.Applied, symbol)
	} else {
		r.Skipped = append(r.Skipped, symbol)
	}
}

// RelayRates stores scalar rates. Without force a symbol is only written when
// resolveTime is strictly newer than the stored record.
func (k Keeper) RelayRates(
	ctx sdk.Context,
	relayer sdk.AccAddress,
	symbolRates []types.SymbolRate,
	resolveTime, requestID uint64,
	force bool,
) (RelayResult, error) {
	var res RelayResult
	if !k.IsRelayer(ctx, relayer) {
		return res, errorsmod.Wrapf(types.ErrUnauthorizedRelayer, "%s", relayer)
	}

	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyRefData)
	for _, sr := range symbolRates {
		applied := force || k.isFresher(store, sr.Symbol, resolveTime)
		if applied {
			k.setRefData(store, sr.Symbol, types.NewRefData(sr.Rate, resolveTime, requestID))
		}
		res.add(sr.Symbol, applied)
	}

	k.logRelay(ctx, "rates", relayer, resolveTime, force, res)
	return res, nil
}

// RelayDeviations stores scalar deviations under the same freshness rule as RelayRates.
func (k Keeper) RelayDeviations(
	ctx sdk.Context,
	relayer sdk.AccAddress,
	symbolRates []types.SymbolRate,
	resolveTime, requestID uint64,
	force bool,
) (RelayResult, error) {
	var res RelayResult
	if !k.IsRelayer(ctx, relayer) {
		return res, errorsmod.Wrapf(types.ErrUnauthorizedRelayer, "%s", relayer)
	}

	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyDeviationData)
	for _, sr := range symbolRates {
		applied := force || k.isFresher(store, sr.Symbol, resolveTime)
		if applied {
			k.setRefData(store, sr.Symbol, types.NewRefData(sr.Rate, resolveTime, requestID))
		}
		res.add(sr.Symbol, applied)
	}

	k.logRelay(ctx, "deviations", relayer, resolveTime, force, res)
	return res, nil
}

// RelayMedianRates stores vectors of rates. It fails while median relaying is
// disabled.
func (k Keeper) RelayMedianRates(
	ctx sdk.Context,
	relayer sdk.AccAddress,
	symbolRates []types.SymbolRates,
	resolveTime, requestID uint64,
	force bool,
) (RelayResult, error) {
	var res RelayResult
	if !k.IsRelayer(ctx, relayer) {
		return res, errorsmod.Wrapf(types.ErrUnauthorizedRelayer, "%s", relayer)
	}
	if !k.GetParams(ctx).MedianStatus {
		return res, types.ErrMedianDisabled
	}

	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyMedianRefData)
	for _, sr := range symbolRates {
		applied := force
		if !applied {
			var existing types.RefMedianData
			bz := store.Get([]byte(sr.Symbol))
			if bz == nil {
				applied = true
			} else {
				k.cdc.MustUnmarshal(bz, &existing)
				applied = existing.ResolveTime < resolveTime
			}
		}
		if applied {
			data := types.NewRefMedianData(sr.Rates, resolveTime, requestID)
			store.Set([]byte(sr.Symbol), k.cdc.MustMarshal(&data))
		}
		res.add(sr.Symbol, applied)
	}

	k.logRelay(ctx, "median rates", relayer, resolveTime, force, res)
	return res, nil
}

func (k Keeper) isFresher(store prefix.Store, symbol string, resolveTime uint64) bool {
	bz := store.Get([]byte(symbol))
	if bz == nil {
		return true
	}
	var existing types.RefData
	k.cdc.MustUnmarshal(bz, &existing)
	return existing.ResolveTime < resolveTime
}

func (k Keeper) setRefData(store prefix.Store, symbol string, data types.RefData) {
	store.Set([]byte(symbol), k.cdc.MustMarshal(&data))
}

func (k Keeper) logRelay(ctx sdk.Context, what string, relayer sdk.AccAddress, resolveTime uint64, force bool, res RelayResult) {
	logger := k.Logger(ctx)
	logger.Info("relayed "+what,
		"relayer", relayer.String(),
		"resolve_time", resolveTime,
		"force", force,
		"applied", len(res.Applied),
	)
	if len(res.Skipped) > 0 {
		logger.Debug("skipped stale "+what, "symbols", res.Skipped)
	}
}

// SetRefData writes a scalar rate record without any freshness check.
func (k Keeper) SetRefData(ctx sdk.Context, symbol string, data types.RefData) {
	k.setRefData(prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyRefData), symbol, data)
}

// SetDeviationData writes a deviation record without any freshness check.
func (k Keeper) SetDeviationData(ctx sdk.Context, symbol string, data types.RefData) {
	k.setRefData(prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyDeviationData), symbol, data)
}

// SetMedianRefData writes a median record without any freshness check.
func (k Keeper) SetMedianRefData(ctx sdk.Context, symbol string, data types.RefMedianData) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyMedianRefData)
	store.Set([]byte(symbol), k.cdc.MustMarshal(&data))
}

// GetRefData returns the rate record of symbol. USD is answered without
// touching the store.
func (k Keeper) GetRefData(ctx sdk.Context, symbol string) (types.RefData, error) {
	if symbol == types.USD {
		return types.USDRefData(), nil
	}
	return k.getRefData(ctx, types.KeyRefData, symbol)
}

// GetDeviationRefData returns the deviation record of symbol.
func (k Keeper) GetDeviationRefData(ctx sdk.Context, symbol string) (types.RefData, error) {
	if symbol == types.USD {
		return types.USDDeviationData(), nil
	}
	return k.getRefData(ctx, types.KeyDeviationData, symbol)
}

func (k Keeper) getRefData(ctx sdk.Context, key []byte, symbol string) (types.RefData, error) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), key)
	bz := store.Get([]byte(symbol))
	if bz == nil {
		return types.RefData{}, errorsmod.Wrapf(types.ErrRefDataNotFound, "symbol %s", symbol)
	}

	var data types.RefData
	k.cdc.MustUnmarshal(bz, &data)
	return data, nil
}

// GetMedianRefData returns the median record of symbol.
func (k Keeper) GetMedianRefData(ctx sdk.Context, symbol string) (types.RefMedianData, error) {
	if symbol == types.USD {
		return types.USDMedianRefData(), nil
	}

	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyMedianRefData)
	bz := store.Get([]byte(symbol))
	if bz == nil {
		return types.RefMedianData{}, errorsmod.Wrapf(types.ErrRefDataNotFound, "median of symbol %s", symbol)
	}

	var data types.RefMedianData
	k.cdc.MustUnmarshal(bz, &data)
	return data, nil
}

// GetMedianRefDataBulk returns the median records of symbols in order,
// failing on the first missing one.
func (k Keeper) GetMedianRefDataBulk(ctx sdk.Context, symbols []string) ([]types.RefMedianData, error) {
	res := make([]types.RefMedianData, 0, len(symbols))
	for _, symbol := range symbols {
		data, err := k.GetMedianRefData(ctx, symbol)
		if err != nil {
			return nil, err
		}
		res = append(res, data)
	}
	return res, nil
}

// GetDeviationRefDataBulk returns the deviation records of symbols in order,
// failing on the first missing one.
func (k Keeper) GetDeviationRefDataBulk(ctx sdk.Context, symbols []string) ([]types.RefData, error) {
	res := make([]types.RefData, 0, len(symbols))
	for _, symbol := range symbols {
		data, err := k.GetDeviationRefData(ctx, symbol)
		if err != nil {
			return nil, err
		}
		res = append(res, data)
	}
	return res, nil
}

// IterateRefData calls cb for every stored rate record until cb returns true.
func (k Keeper) IterateRefData(ctx sdk.Context, cb func(symbol string, data types.RefData) (stop bool)) {
	k.iterateRefData(ctx, types.KeyRefData, cb)
}

// IterateDeviationData calls cb for every stored deviation record until cb returns true.
func (k Keeper) IterateDeviationData(ctx sdk.Context, cb func(symbol string, data types.RefData) (stop bool)) {
	k.iterateRefData(ctx, types.KeyDeviationData, cb)
}

func (k Keeper) iterateRefData(ctx sdk.Context, key []byte, cb func(symbol string, data types.RefData) (stop bool)) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), key)
	iter := store.Iterator(nil, nil)
	defer iter.Close()

	for ; iter.Valid(); iter.Next() {
		var data types.RefData
		k.cdc.MustUnmarshal(iter.Value(), &data)
		if cb(string(iter.Key()), data) {
			break
		}
	}
}

// IterateMedianRefData calls cb for every stored median record until cb returns true.
func (k Keeper) IterateMedianRefData(ctx sdk.Context, cb func(symbol string, data types.RefMedianData) (stop bool)) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyMedianRefData)
	iter := store.Iterator(nil, nil)
	defer iter.Close()

	for ; iter.Valid(); iter.Next() {
		var data types.RefMedianData
		k.cdc.MustUnmarshal(iter.Value(), &data)
		if cb(string(iter.Key()), data) {
			break
		}
	}
}
