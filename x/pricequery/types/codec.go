package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// ModuleCdc encodes store values and legacy query payloads of the pricequery module.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
	ModuleCdc.Seal()
}

// RegisterLegacyAminoCodec registers the pricequery messages on the amino codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgRequestRate{}, "pricequery/MsgRequestRate", nil)
	cdc.RegisterConcrete(&MsgRequestMedian{}, "pricequery/MsgRequestMedian", nil)
	cdc.RegisterConcrete(&MsgRequestDeviation{}, "pricequery/MsgRequestDeviation", nil)
	cdc.RegisterConcrete(&MsgCallbackRate{}, "pricequery/MsgCallbackRate", nil)
	cdc.RegisterConcrete(&MsgCallbackMedian{}, "pricequery/MsgCallbackMedian", nil)
	cdc.RegisterConcrete(&MsgCallbackDeviation{}, "pricequery/MsgCallbackDeviation", nil)
}
