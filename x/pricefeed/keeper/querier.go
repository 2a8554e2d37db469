package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/GPTx-global/pricefeed/x/pricefeed/types"
)

// NewQuerier returns the legacy querier of the pricefeed module.
func NewQuerier(k Keeper, legacyQuerierCdc *codec.LegacyAmino) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, error) {
		var (
			res interface{}
			err error
		)

		switch path[0] {
		case types.QueryAdmin:
			res = k.GetAdmin(ctx)
		case types.QueryParams:
			res = k.GetParams(ctx)
		case types.QueryTotalRequests:
			res = types.QueryTotalRequestsResponse{TotalRequests: k.GetTotalRequests(ctx)}
		case types.QueryContractInfo:
			info, found := k.GetContractInfo(ctx)
			if !found {
				return nil, errorsmod.Wrap(sdkerrors.ErrNotFound, "contract info")
			}
			res = info
		case types.QueryIsRelayer:
			res, err = queryIsRelayer(ctx, req, k, legacyQuerierCdc)
		case types.QueryRelayers:
			res, err = queryRelayers(ctx, req, k, legacyQuerierCdc)
		case types.QueryLastPing:
			res, err = queryLastPing(ctx, req, k, legacyQuerierCdc)
		case types.QueryRef:
			res, err = querySymbol(req, legacyQuerierCdc, func(symbol string) (interface{}, error) {
				return k.GetRefData(ctx, symbol)
			})
		case types.QueryMedianRef:
			res, err = querySymbol(req, legacyQuerierCdc, func(symbol string) (interface{}, error) {
				return k.GetMedianRefData(ctx, symbol)
			})
		case types.QueryDeviationRef:
			res, err = querySymbol(req, legacyQuerierCdc, func(symbol string) (interface{}, error) {
				return k.GetDeviationRefData(ctx, symbol)
			})
		case types.QueryMedianRefBulk:
			res, err = querySymbols(req, legacyQuerierCdc, func(symbols []string) (interface{}, error) {
				return k.GetMedianRefDataBulk(ctx, symbols)
			})
		case types.QueryDeviationRefBulk:
			res, err = querySymbols(req, legacyQuerierCdc, func(symbols []string) (interface{}, error) {
				return k.GetDeviationRefDataBulk(ctx, symbols)
			})
		case types.QueryReferenceData:
			var params types.QueryPairParams
			if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
				return nil, errorsmod.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
			}
			res, err = k.GetReferenceData(ctx, params.Base, params.Quote)
		case types.QueryReferenceDataBulk:
			var params types.QueryPairsParams
			if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
				return nil, errorsmod.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
			}
			res, err = k.GetReferenceDataBulk(ctx, params.Pairs)
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

func queryIsRelayer(ctx sdk.Context, req abci.RequestQuery, k Keeper, cdc *codec.LegacyAmino) (interface{}, error) {
	addr, err := addressParam(req, cdc)
	if err != nil {
		return nil, err
	}
	return types.QueryIsRelayerResponse{IsRelayer: k.IsRelayer(ctx, addr)}, nil
}

func queryLastPing(ctx sdk.Context, req abci.RequestQuery, k Keeper, cdc *codec.LegacyAmino) (interface{}, error) {
	addr, err := addressParam(req, cdc)
	if err != nil {
		return nil, err
	}
	return types.QueryLastPingResponse{LastPing: k.GetLastPing(ctx, addr)}, nil
}

func queryRelayers(ctx sdk.Context, req abci.RequestQuery, k Keeper, cdc *codec.LegacyAmino) (interface{}, error) {
	var params types.QueryRelayersParams
	if len(req.Data) > 0 {
		if err := cdc.UnmarshalJSON(req.Data, &params); err != nil {
			return nil, errorsmod.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
		}
	}

	relayers, pageRes, err := k.GetPaginatedRelayers(ctx, params.Pagination)
	if err != nil {
		return nil, err
	}
	return types.QueryRelayersResponse{Relayers: relayers, Pagination: pageRes}, nil
}

func addressParam(req abci.RequestQuery, cdc *codec.LegacyAmino) (sdk.AccAddress, error) {
	var params types.QueryAddressParams
	if err := cdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
	}
	addr, err := sdk.AccAddressFromBech32(params.Address)
	if err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
	}
	return addr, nil
}

func querySymbol(req abci.RequestQuery, cdc *codec.LegacyAmino, get func(string) (interface{}, error)) (interface{}, error) {
	var params types.QuerySymbolParams
	if err := cdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
	}
	return get(params.Symbol)
}

func querySymbols(req abci.RequestQuery, cdc *codec.LegacyAmino, get func([]string) (interface{}, error)) (interface{}, error) {
	var params types.QuerySymbolsParams
	if err := cdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
	}
	return get(params.Symbols)
}
