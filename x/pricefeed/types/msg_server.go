package types

import "context"

// MsgServer is the server API of the pricefeed messages.
type MsgServer interface {
	UpdateAdmin(context.Context, *MsgUpdateAdmin) (*MsgUpdateAdminResponse, error)
	AddRelayers(context.Context, *MsgAddRelayers) (*MsgAddRelayersResponse, error)
	RemoveRelayers(context.Context, *MsgRemoveRelayers) (*MsgRemoveRelayersResponse, error)
	RelayerPing(context.Context, *MsgPing) (*MsgPingResponse, error)
	Relay(context.Context, *MsgRelay) (*MsgRelayResponse, error)
	RelayHistoricalMedian(context.Context, *MsgRelayHistoricalMedian) (*MsgRelayResponse, error)
	RelayHistoricalDeviation(context.Context, *MsgRelayHistoricalDeviation) (*MsgRelayResponse, error)
	RequestPrice(context.Context, *MsgRequestPrice) (*MsgRequestPriceResponse, error)
	UpdatePingThreshold(context.Context, *MsgUpdatePingThreshold) (*MsgUpdateParamsResponse, error)
	UpdateMedianStatus(context.Context, *MsgUpdateMedianStatus) (*MsgUpdateParamsResponse, error)
	MigrateContract(context.Context, *MsgMigrateContract) (*MsgMigrateContractResponse, error)
}
