package keeper

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/codec"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/GPTx-global/pricefeed/x/pricefeed/types"
)

type Keeper struct {
	cdc      *codec.LegacyAmino
	storeKey storetypes.StoreKey
}

func NewKeeper(
	cdc *codec.LegacyAmino,
	storeKey storetypes.StoreKey,
) *Keeper {
	return &Keeper{
		cdc:      cdc,
		storeKey: storeKey,
	}
}

func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetParams returns the module parameters, falling back to the defaults when
// none were stored.
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyParams)
	if len(bz) == 0 {
		return types.DefaultParams()
	}

	var params types.Params
	k.cdc.MustUnmarshal(bz, &params)
	return params
}

func (k Keeper) SetParams(ctx sdk.Context, params types.Params) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyParams, k.cdc.MustMarshal(&params))
}

// GetTotalRequests returns the number of oracle requests received so far.
func (k Keeper) GetTotalRequests(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyTotalRequests)
	if len(bz) == 0 {
		return 0
	}
	count, err := types.BytesToUint64(bz)
	if err != nil {
		panic(err)
	}
	return count
}

func (k Keeper) SetTotalRequests(ctx sdk.Context, count uint64) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyTotalRequests, types.Uint64ToBytes(count))
}

// GetContractInfo returns the stored state layout version.
func (k Keeper) GetContractInfo(ctx sdk.Context) (types.ContractInfo, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.KeyContractInfo)
	if len(bz) == 0 {
		return types.ContractInfo{}, false
	}

	var info types.ContractInfo
	k.cdc.MustUnmarshal(bz, &info)
	return info, true
}

func (k Keeper) SetContractInfo(ctx sdk.Context, info types.ContractInfo) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.KeyContractInfo, k.cdc.MustMarshal(&info))
}
