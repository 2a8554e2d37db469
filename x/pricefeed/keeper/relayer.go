package keeper

import (
	"github.com/cosmos/cosmos-sdk/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/GPTx-global/pricefeed/x/pricefeed/types"
)

var relayerMarker = []byte{0x01}

// AddRelayers whitelists relayers. Adding a member twice is a no-op.
func (k Keeper) AddRelayers(ctx sdk.Context, sender string, relayers []sdk.AccAddress) error {
	if err := k.assertAdmin(ctx, sender); err != nil {
		return err
	}

	for _, relayer := range relayers {
		k.setRelayer(ctx, relayer)
	}
	k.Logger(ctx).Info("relayers added", "count", len(relayers))
	return nil
}

// RemoveRelayers revokes relayers. Removing an absent member is a no-op.
// Pings of removed relayers are kept.
func (k Keeper) RemoveRelayers(ctx sdk.Context, sender string, relayers []sdk.AccAddress) error {
	if err := k.assertAdmin(ctx, sender); err != nil {
		return err
	}

	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyRelayers)
	for _, relayer := range relayers {
		store.Delete(relayer)
	}
	k.Logger(ctx).Info("relayers removed", "count", len(relayers))
	return nil
}

func (k Keeper) setRelayer(ctx sdk.Context, relayer sdk.AccAddress) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyRelayers)
	store.Set(relayer, relayerMarker)
}

// IsRelayer reports whether addr is a registered relayer.
func (k Keeper) IsRelayer(ctx sdk.Context, addr sdk.AccAddress) bool {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyRelayers)
	return store.Has(addr)
}

// GetRelayers lists the registry in ascending byte order of the addresses.
func (k Keeper) GetRelayers(ctx sdk.Context) []sdk.AccAddress {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyRelayers)
	iter := store.Iterator(nil, nil)
	defer iter.Close()

	relayers := []sdk.AccAddress{}
	for ; iter.Valid(); iter.Next() {
		relayers = append(relayers, sdk.AccAddress(iter.Key()))
	}
	return relayers
}

func (k Keeper) GetPaginatedRelayers(ctx sdk.Context, pagination *query.PageRequest) ([]string, *query.PageResponse, error) {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyRelayers)

	relayers := []string{}
	pageRes, err := query.Paginate(store, pagination, func(key, _ []byte) error {
		relayers = append(relayers, sdk.AccAddress(key).String())
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return relayers, pageRes, nil
}
