package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/GPTx-global/pricefeed/x/pricequery/types"
)

// NewQuerier returns the legacy querier of the pricequery module.
func NewQuerier(k Keeper, legacyQuerierCdc *codec.LegacyAmino) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, error) {
		var params types.QuerySymbolParams
		if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
			return nil, errorsmod.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
		}

		var (
			res interface{}
			err error
		)
		switch path[0] {
		case types.QueryPrice:
			res, err = k.GetCallbackData(ctx, types.KindRate, params.Symbol)
		case types.QueryMedian:
			res, err = k.GetCallbackData(ctx, types.KindMedian, params.Symbol)
		case types.QueryDeviation:
			res, err = k.GetCallbackData(ctx, types.KindDeviation, params.Symbol)
		case types.QueryRateRequestID:
			res, err = queryRequestID(ctx, k, types.KindRate, params.Symbol)
		case types.QueryMedianRequestID:
			res, err = queryRequestID(ctx, k, types.KindMedian, params.Symbol)
		case types.QueryDeviationRequestID:
			res, err = queryRequestID(ctx, k, types.KindDeviation, params.Symbol)
		default:
			return nil, errorsmod.Wrapf(sdkerrors.ErrUnknownRequest, "unknown %s query endpoint: %s", types.ModuleName, path[0])
		}
		if err != nil {
			return nil, err
		}

		bz, err := codec.MarshalJSONIndent(legacyQuerierCdc, res)
		if err != nil {
			return nil, errorsmod.Wrap(sdkerrors.ErrJSONMarshal, err.Error())
		}
		return bz, nil
	}
}

func queryRequestID(ctx sdk.Context, k Keeper, kind types.Kind, symbol string) (interface{}, error) {
	requestID, err := k.GetPendingRequest(ctx, kind, symbol)
	if err != nil {
		return nil, err
	}
	return types.QueryRequestIDResponse{RequestID: requestID}, nil
}
