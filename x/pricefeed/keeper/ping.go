package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GPTx-global/pricefeed/x/pricefeed/types"
)

// Ping records the current block time as the last sign of life of relayer.
func (k Keeper) Ping(ctx sdk.Context, relayer sdk.AccAddress) (uint64, error) {
	if !k.IsRelayer(ctx, relayer) {
		return 0, errorsmod.Wrapf(types.ErrUnauthorizedRelayer, "%s", relayer)
	}

	now := blockTime(ctx)
	k.SetLastPing(ctx, relayer, now)
	k.Logger(ctx).Debug("relayer ping", "relayer", relayer.String(), "timestamp", now)
	return now, nil
}

func (k Keeper) SetLastPing(ctx sdk.Context, relayer sdk.AccAddress, timestamp uint64) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyPingCheck)
	store.Set(relayer, types.Uint64ToBytes(timestamp))
}

// GetLastPing returns the last ping of relayer, reading a missing entry as 0.
func (k Keeper) GetLastPing(ctx sdk.Context, relayer sdk.AccAddress) uint64 {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyPingCheck)
	bz := store.Get(relayer)
	if len(bz) == 0 {
		return 0
	}
	ts, err := types.BytesToUint64(bz)
	if err != nil {
		panic(err)
	}
	return ts
}

// GetAllPings returns every recorded ping, including those of removed relayers.
func (k Keeper) GetAllPings(ctx sdk.Context) []types.RelayerPing {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyPingCheck)
	iter := store.Iterator(nil, nil)
	defer iter.Close()

	pings := []types.RelayerPing{}
	for ; iter.Valid(); iter.Next() {
		ts, err := types.BytesToUint64(iter.Value())
		if err != nil {
			panic(err)
		}
		pings = append(pings, types.RelayerPing{
			Relayer:  sdk.AccAddress(iter.Key()).String(),
			LastPing: ts,
		})
	}
	return pings
}

// IsLive reports whether a relayer that last pinged at lastPing is live at
// now. A ping ahead of now counts as live.
func IsLive(lastPing, now, threshold uint64) bool {
	if now <= lastPing {
		return true
	}
	return now-lastPing <= threshold
}

func blockTime(ctx sdk.Context) uint64 {
	return uint64(ctx.BlockTime().Unix())
}
