package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// ModuleCdc encodes store values, sign bytes and legacy query payloads of the
// pricefeed module.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
	ModuleCdc.Seal()
}

// RegisterLegacyAminoCodec registers the pricefeed messages on the amino codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgUpdateAdmin{}, "pricefeed/MsgUpdateAdmin", nil)
	cdc.RegisterConcrete(&MsgAddRelayers{}, "pricefeed/MsgAddRelayers", nil)
	cdc.RegisterConcrete(&MsgRemoveRelayers{}, "pricefeed/MsgRemoveRelayers", nil)
	cdc.RegisterConcrete(&MsgPing{}, "pricefeed/MsgPing", nil)
	cdc.RegisterConcrete(&MsgRelay{}, "pricefeed/MsgRelay", nil)
	cdc.RegisterConcrete(&MsgRelayHistoricalMedian{}, "pricefeed/MsgRelayHistoricalMedian", nil)
	cdc.RegisterConcrete(&MsgRelayHistoricalDeviation{}, "pricefeed/MsgRelayHistoricalDeviation", nil)
	cdc.RegisterConcrete(&MsgRequestPrice{}, "pricefeed/MsgRequestPrice", nil)
	cdc.RegisterConcrete(&MsgUpdatePingThreshold{}, "pricefeed/MsgUpdatePingThreshold", nil)
	cdc.RegisterConcrete(&MsgUpdateMedianStatus{}, "pricefeed/MsgUpdateMedianStatus", nil)
	cdc.RegisterConcrete(&MsgMigrateContract{}, "pricefeed/MsgMigrateContract", nil)
}
