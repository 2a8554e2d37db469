package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GPTx-global/pricefeed/x/pricefeed/types"
)

// Migrate stamps the state with target after checking that the stored
// contract name matches and the stored version is not newer.
func (k Keeper) Migrate(ctx sdk.Context, target types.ContractInfo) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if stored, found := k.GetContractInfo(ctx); found {
		if err := stored.CanMigrateTo(target); err != nil {
			return err
		}
	}

	k.SetContractInfo(ctx, target)
	k.Logger(ctx).Info("contract migrated", "contract", target.Contract, "version", target.Version)
	return nil
}
