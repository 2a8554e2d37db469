package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RateFactor scales a decimal price into the 1e9 fixed point used on chain.
var RateFactor = sdk.NewDec(int64(E9))

// RateFromDec converts a decimal USD price into a 1e9 fixed point rate,
// truncating any precision beyond nine decimals.
func RateFromDec(price sdk.Dec) (uint64, error) {
	if price.IsNil() || price.IsNegative() {
		return 0, fmt.Errorf("invalid price: %v", price)
	}

	rate := price.Mul(RateFactor).TruncateInt()
	if !rate.IsUint64() {
		return 0, errorsmod.Wrapf(ErrArithmetic, "price %s overflows uint64 rate", price)
	}

	return rate.Uint64(), nil
}
