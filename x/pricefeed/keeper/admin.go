package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GPTx-global/pricefeed/x/pricefeed/types"
)

// GetAdmin returns the current admin address, or an empty string before genesis sets one.
func (k Keeper) GetAdmin(ctx sdk.Context) string {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyAdmin)
	if len(bz) == 0 {
		return ""
	}
	return string(bz)
}

func (k Keeper) SetAdmin(ctx sdk.Context, admin string) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyAdmin, []byte(admin))
}

// IsAdmin reports whether addr is the current admin.
func (k Keeper) IsAdmin(ctx sdk.Context, addr string) bool {
	admin := k.GetAdmin(ctx)
	return admin != "" && admin == addr
}

// assertAdmin fails with ErrUnauthorizedAdmin unless sender is the admin.
func (k Keeper) assertAdmin(ctx sdk.Context, sender string) error {
	if !k.IsAdmin(ctx, sender) {
		return errorsmod.Wrapf(types.ErrUnauthorizedAdmin, "expected: %s, got: %s", k.GetAdmin(ctx), sender)
	}
	return nil
}

// UpdateAdmin hands the admin role from sender to newAdmin.
func (k Keeper) UpdateAdmin(ctx sdk.Context, sender, newAdmin string) error {
	if err := k.assertAdmin(ctx, sender); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(newAdmin); err != nil {
		return err
	}

	k.SetAdmin(ctx, newAdmin)
	k.Logger(ctx).Info("admin updated", "old", sender, "new", newAdmin)
	return nil
}
