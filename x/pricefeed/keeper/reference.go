package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/GPTx-global/pricefeed/x/pricefeed/types"
)

// GetReferenceData derives the rate of base in units of quote, scaled by 1e18.
func (k Keeper) GetReferenceData(ctx sdk.Context, base, quote string) (types.ReferenceData, error) {
	baseData, err := k.GetRefData(ctx, base)
	if err != nil {
		return types.ReferenceData{}, err
	}
	quoteData, err := k.GetRefData(ctx, quote)
	if err != nil {
		return types.ReferenceData{}, err
	}

	rate, err := pairRate(baseData.Rate, quoteData.Rate)
	if err != nil {
		return types.ReferenceData{}, errorsmod.Wrapf(err, "%s/%s", base, quote)
	}
	return types.NewReferenceData(rate, baseData.ResolveTime, quoteData.ResolveTime), nil
}

// GetReferenceDataBulk derives every pair in order, failing on the first error.
func (k Keeper) GetReferenceDataBulk(ctx sdk.Context, pairs []types.SymbolPair) ([]types.ReferenceData, error) {
	res := make([]types.ReferenceData, 0, len(pairs))
	for _, pair := range pairs {
		data, err := k.GetReferenceData(ctx, pair.Base, pair.Quote)
		if err != nil {
			return nil, err
		}
		res = append(res, data)
	}
	return res, nil
}

// pairRate computes base * 1e18 / quote. Both rates share the 1e9 scale so it
// cancels out of the quotient.
func pairRate(base, quote uint64) (sdkmath.Uint, error) {
	if quote == 0 {
		return sdkmath.Uint{}, errorsmod.Wrap(types.ErrArithmetic, "division by zero quote rate")
	}
	return sdkmath.NewUint(base).Mul(types.E18).Quo(sdkmath.NewUint(quote)), nil
}
