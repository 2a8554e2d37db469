package keeper

import (
	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GPTx-global/pricefeed/x/pricefeed/types"
)

// GetLastRelayer returns the relayer chosen by the previous selection.
func (k Keeper) GetLastRelayer(ctx sdk.Context) (sdk.AccAddress, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyLastRelayer)
	if len(bz) == 0 {
		return nil, false
	}
	return sdk.AccAddress(bz), true
}

func (k Keeper) SetLastRelayer(ctx sdk.Context, relayer sdk.AccAddress) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyLastRelayer, relayer)
}

// SelectRelayer picks the next live relayer after the previous pick in
// ascending address order, wrapping around once. The pick is persisted so
// consecutive calls rotate through the live set.
func (k Keeper) SelectRelayer(ctx sdk.Context, now uint64) (sdk.AccAddress, error) {
	threshold := k.GetParams(ctx).PingThreshold

	last, hasLast := k.GetLastRelayer(ctx)

	var start []byte
	if hasLast {
		// smallest key strictly greater than last
		start = append(append([]byte{}, last...), 0x00)
	}

	relayer, found := k.firstLiveRelayer(ctx, start, now, threshold)
	if !found && hasLast {
		relayer, found = k.firstLiveRelayer(ctx, nil, now, threshold)
	}
	if !found {
		return nil, types.ErrNoRelayerAvailable
	}

	k.SetLastRelayer(ctx, relayer)
	return relayer, nil
}

func (k Keeper) firstLiveRelayer(ctx sdk.Context, start []byte, now, threshold uint64) (sdk.AccAddress, bool) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyRelayers)
	iter := store.Iterator(start, nil)
	defer iter.Close()

	for ; iter.Valid(); iter.Next() {
		relayer := sdk.AccAddress(iter.Key())
		if IsLive(k.GetLastPing(ctx, relayer), now, threshold) {
			return relayer, true
		}
	}
	return nil, false
}
