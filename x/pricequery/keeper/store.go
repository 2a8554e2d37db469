package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GPTx-global/pricefeed/x/pricequery/types"
)

// SetPendingRequest records requestID as the only acceptable answer for the
// next callback of kind and symbol.
func (k Keeper) SetPendingRequest(ctx sdk.Context, kind types.Kind, symbol, requestID string) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.PendingRequestPrefix(kind))
	store.Set([]byte(symbol), []byte(requestID))
}

// GetPendingRequest returns the pending correlation id of kind and symbol.
func (k Keeper) GetPendingRequest(ctx sdk.Context, kind types.Kind, symbol string) (string, error) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.PendingRequestPrefix(kind))
	bz := store.Get([]byte(symbol))
	if bz == nil {
		return "", errorsmod.Wrapf(types.ErrPendingNotFound, "%s request for %s", kind.Name, symbol)
	}
	return string(bz), nil
}

func (k Keeper) SetCallbackData(ctx sdk.Context, kind types.Kind, symbol string, data types.CallbackData) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.CallbackDataPrefix(kind))
	store.Set([]byte(symbol), k.cdc.MustMarshal(&data))
}

// GetCallbackData returns the latest stored answer of kind for symbol.
func (k Keeper) GetCallbackData(ctx sdk.Context, kind types.Kind, symbol string) (types.CallbackData, error) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.CallbackDataPrefix(kind))
	bz := store.Get([]byte(symbol))
	if bz == nil {
		return types.CallbackData{}, errorsmod.Wrapf(types.ErrCallbackNotFound, "%s of %s", kind.Name, symbol)
	}

	var data types.CallbackData
	k.cdc.MustUnmarshal(bz, &data)
	return data, nil
}

// IteratePendingRequests calls cb for every pending request of kind until cb returns true.
func (k Keeper) IteratePendingRequests(ctx sdk.Context, kind types.Kind, cb func(symbol, requestID string) (stop bool)) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.PendingRequestPrefix(kind))
	iter := store.Iterator(nil, nil)
	defer iter.Close()

	for ; iter.Valid(); iter.Next() {
		if cb(string(iter.Key()), string(iter.Value())) {
			break
		}
	}
}

// IterateCallbackData calls cb for every stored answer of kind until cb returns true.
func (k Keeper) IterateCallbackData(ctx sdk.Context, kind types.Kind, cb func(symbol string, data types.CallbackData) (stop bool)) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.CallbackDataPrefix(kind))
	iter := store.Iterator(nil, nil)
	defer iter.Close()

	for ; iter.Valid(); iter.Next() {
		var data types.CallbackData
		k.cdc.MustUnmarshal(iter.Value(), &data)
		if cb(string(iter.Key()), data) {
			break
		}
	}
}
