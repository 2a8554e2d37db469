package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	pricefeedtypes "github.com/GPTx-global/pricefeed/x/pricefeed/types"
)

// OracleKeeper defines the expected price feed keeper.
type OracleKeeper interface {
	HandleOracleRequest(ctx sdk.Context, requester sdk.AccAddress, req pricefeedtypes.OracleRequest) error
	IsRelayer(ctx sdk.Context, addr sdk.AccAddress) bool
}
