package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// Msg is implemented by every message handled by the pricefeed module.
type Msg interface {
	Route() string
	Type() string
	ValidateBasic() error
	GetSigners() []sdk.AccAddress
}

// message types for the pricefeed module
const (
	TypeMsgUpdateAdmin              = "update_admin"
	TypeMsgAddRelayers              = "add_relayers"
	TypeMsgRemoveRelayers           = "remove_relayers"
	TypeMsgPing                     = "relayer_ping"
	TypeMsgRelay                    = "relay"
	TypeMsgRelayHistoricalMedian    = "relay_historical_median"
	TypeMsgRelayHistoricalDeviation = "relay_historical_deviation"
	TypeMsgRequestPrice             = "request_price"
	TypeMsgUpdatePingThreshold      = "update_ping_threshold"
	TypeMsgUpdateMedianStatus       = "update_median_status"
	TypeMsgMigrateContract          = "migrate_contract"
)

var (
	_ Msg = &MsgUpdateAdmin{}
	_ Msg = &MsgAddRelayers{}
	_ Msg = &MsgRemoveRelayers{}
	_ Msg = &MsgPing{}
	_ Msg = &MsgRelay{}
	_ Msg = &MsgRelayHistoricalMedian{}
	_ Msg = &MsgRelayHistoricalDeviation{}
	_ Msg = &MsgRequestPrice{}
	_ Msg = &MsgUpdatePingThreshold{}
	_ Msg = &MsgUpdateMedianStatus{}
	_ Msg = &MsgMigrateContract{}
)

// MsgUpdateAdmin transfers the admin role to NewAdmin.
type MsgUpdateAdmin struct {
	Admin    string `json:"admin"`
	NewAdmin string `json:"new_admin"`
}

func NewMsgUpdateAdmin(admin, newAdmin string) *MsgUpdateAdmin {
	return &MsgUpdateAdmin{Admin: admin, NewAdmin: newAdmin}
}

func (msg MsgUpdateAdmin) Route() string { return RouterKey }
func (msg MsgUpdateAdmin) Type() string  { return TypeMsgUpdateAdmin }

func (msg MsgUpdateAdmin) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Admin)}
}

func (msg MsgUpdateAdmin) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgUpdateAdmin) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid admin address (%s)", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.NewAdmin); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid new admin address (%s)", err)
	}
	return nil
}

// MsgAddRelayers whitelists Relayers.
type MsgAddRelayers struct {
	Admin    string   `json:"admin"`
	Relayers []string `json:"relayers"`
}

func NewMsgAddRelayers(admin string, relayers []string) *MsgAddRelayers {
	return &MsgAddRelayers{Admin: admin, Relayers: relayers}
}

func (msg MsgAddRelayers) Route() string { return RouterKey }
func (msg MsgAddRelayers) Type() string  { return TypeMsgAddRelayers }

func (msg MsgAddRelayers) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Admin)}
}

func (msg MsgAddRelayers) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgAddRelayers) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid admin address (%s)", err)
	}
	return validateRelayerList(msg.Relayers)
}

// MsgRemoveRelayers revokes the relayer rights of Relayers.
type MsgRemoveRelayers struct {
	Admin    string   `json:"admin"`
	Relayers []string `json:"relayers"`
}

func NewMsgRemoveRelayers(admin string, relayers []string) *MsgRemoveRelayers {
	return &MsgRemoveRelayers{Admin: admin, Relayers: relayers}
}

func (msg MsgRemoveRelayers) Route() string { return RouterKey }
func (msg MsgRemoveRelayers) Type() string  { return TypeMsgRemoveRelayers }

func (msg MsgRemoveRelayers) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Admin)}
}

func (msg MsgRemoveRelayers) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgRemoveRelayers) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid admin address (%s)", err)
	}
	return validateRelayerList(msg.Relayers)
}

func validateRelayerList(relayers []string) error {
	if len(relayers) == 0 {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "relayer list cannot be empty")
	}
	for _, relayer := range relayers {
		if _, err := sdk.AccAddressFromBech32(relayer); err != nil {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid relayer address %s (%s)", relayer, err)
		}
	}
	return nil
}

// MsgPing records the liveness of Relayer at the current block time.
type MsgPing struct {
	Relayer string `json:"relayer"`
}

func NewMsgPing(relayer string) *MsgPing {
	return &MsgPing{Relayer: relayer}
}

func (msg MsgPing) Route() string { return RouterKey }
func (msg MsgPing) Type() string  { return TypeMsgPing }

func (msg MsgPing) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Relayer)}
}

func (msg MsgPing) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgPing) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Relayer); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid relayer address (%s)", err)
	}
	return nil
}

// MsgRelay relays scalar rates. Unless Force is set, a symbol is only
// updated when ResolveTime is newer than the stored one.
type MsgRelay struct {
	Relayer     string       `json:"relayer"`
	SymbolRates []SymbolRate `json:"symbol_rates"`
	ResolveTime uint64       `json:"resolve_time"`
	RequestID   uint64       `json:"request_id"`
	Force       bool         `json:"force"`
}

func NewMsgRelay(relayer string, symbolRates []SymbolRate, resolveTime, requestID uint64, force bool) *MsgRelay {
	return &MsgRelay{
		Relayer:     relayer,
		SymbolRates: symbolRates,
		ResolveTime: resolveTime,
		RequestID:   requestID,
		Force:       force,
	}
}

func (msg MsgRelay) Route() string { return RouterKey }
func (msg MsgRelay) Type() string  { return TypeMsgRelay }

func (msg MsgRelay) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Relayer)}
}

func (msg MsgRelay) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgRelay) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Relayer); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid relayer address (%s)", err)
	}
	return validateSymbolRates(msg.SymbolRates)
}

// MsgRelayHistoricalMedian relays vectors of rates per symbol.
type MsgRelayHistoricalMedian struct {
	Relayer     string        `json:"relayer"`
	SymbolRates []SymbolRates `json:"symbol_rates"`
	ResolveTime uint64        `json:"resolve_time"`
	RequestID   uint64        `json:"request_id"`
	Force       bool          `json:"force"`
}

func NewMsgRelayHistoricalMedian(relayer string, symbolRates []SymbolRates, resolveTime, requestID uint64, force bool) *MsgRelayHistoricalMedian {
	return &MsgRelayHistoricalMedian{
		Relayer:     relayer,
		SymbolRates: symbolRates,
		ResolveTime: resolveTime,
		RequestID:   requestID,
		Force:       force,
	}
}

func (msg MsgRelayHistoricalMedian) Route() string { return RouterKey }
func (msg MsgRelayHistoricalMedian) Type() string  { return TypeMsgRelayHistoricalMedian }

func (msg MsgRelayHistoricalMedian) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Relayer)}
}

func (msg MsgRelayHistoricalMedian) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgRelayHistoricalMedian) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Relayer); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid relayer address (%s)", err)
	}
	if len(msg.SymbolRates) == 0 {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "symbol rates cannot be empty")
	}
	for _, sr := range msg.SymbolRates {
		if err := ValidateSymbol(sr.Symbol); err != nil {
			return err
		}
		if len(sr.Rates) == 0 {
			return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "no rates for %s", sr.Symbol)
		}
	}
	return nil
}

// MsgRelayHistoricalDeviation relays scalar deviations per symbol.
type MsgRelayHistoricalDeviation struct {
	Relayer     string       `json:"relayer"`
	SymbolRates []SymbolRate `json:"symbol_rates"`
	ResolveTime uint64       `json:"resolve_time"`
	RequestID   uint64       `json:"request_id"`
	Force       bool         `json:"force"`
}

func NewMsgRelayHistoricalDeviation(relayer string, symbolRates []SymbolRate, resolveTime, requestID uint64, force bool) *MsgRelayHistoricalDeviation {
	return &MsgRelayHistoricalDeviation{
		Relayer:     relayer,
		SymbolRates: symbolRates,
		ResolveTime: resolveTime,
		RequestID:   requestID,
		Force:       force,
	}
}

func (msg MsgRelayHistoricalDeviation) Route() string { return RouterKey }
func (msg MsgRelayHistoricalDeviation) Type() string  { return TypeMsgRelayHistoricalDeviation }

func (msg MsgRelayHistoricalDeviation) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Relayer)}
}

func (msg MsgRelayHistoricalDeviation) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgRelayHistoricalDeviation) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Relayer); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid relayer address (%s)", err)
	}
	return validateSymbolRates(msg.SymbolRates)
}

func validateSymbolRates(symbolRates []SymbolRate) error {
	if len(symbolRates) == 0 {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "symbol rates cannot be empty")
	}
	for _, sr := range symbolRates {
		if err := ValidateSymbol(sr.Symbol); err != nil {
			return err
		}
	}
	return nil
}

// MsgRequestPrice submits an oracle request directly to the price feed.
type MsgRequestPrice struct {
	Requester string        `json:"requester"`
	Request   OracleRequest `json:"request"`
}

func NewMsgRequestPrice(requester string, request OracleRequest) *MsgRequestPrice {
	return &MsgRequestPrice{Requester: requester, Request: request}
}

func (msg MsgRequestPrice) Route() string { return RouterKey }
func (msg MsgRequestPrice) Type() string  { return TypeMsgRequestPrice }

func (msg MsgRequestPrice) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Requester)}
}

func (msg MsgRequestPrice) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgRequestPrice) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Requester); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid requester address (%s)", err)
	}
	return msg.Request.ValidateBasic()
}

// MsgUpdatePingThreshold changes the relayer liveness window.
type MsgUpdatePingThreshold struct {
	Admin         string `json:"admin"`
	PingThreshold uint64 `json:"ping_threshold"`
}

func NewMsgUpdatePingThreshold(admin string, threshold uint64) *MsgUpdatePingThreshold {
	return &MsgUpdatePingThreshold{Admin: admin, PingThreshold: threshold}
}

func (msg MsgUpdatePingThreshold) Route() string { return RouterKey }
func (msg MsgUpdatePingThreshold) Type() string  { return TypeMsgUpdatePingThreshold }

func (msg MsgUpdatePingThreshold) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Admin)}
}

func (msg MsgUpdatePingThreshold) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgUpdatePingThreshold) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid admin address (%s)", err)
	}
	if msg.PingThreshold == 0 {
		return errorsmod.Wrap(ErrInvalidParams, "ping threshold cannot be zero")
	}
	return nil
}

// MsgUpdateMedianStatus enables or disables relaying of medians.
type MsgUpdateMedianStatus struct {
	Admin  string `json:"admin"`
	Status bool   `json:"status"`
}

func NewMsgUpdateMedianStatus(admin string, status bool) *MsgUpdateMedianStatus {
	return &MsgUpdateMedianStatus{Admin: admin, Status: status}
}

func (msg MsgUpdateMedianStatus) Route() string { return RouterKey }
func (msg MsgUpdateMedianStatus) Type() string  { return TypeMsgUpdateMedianStatus }

func (msg MsgUpdateMedianStatus) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Admin)}
}

func (msg MsgUpdateMedianStatus) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgUpdateMedianStatus) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid admin address (%s)", err)
	}
	return nil
}

// MsgMigrateContract moves the stored contract info to a new version.
type MsgMigrateContract struct {
	Admin    string `json:"admin"`
	Contract string `json:"contract"`
	Version  string `json:"version"`
}

func NewMsgMigrateContract(admin, contract, version string) *MsgMigrateContract {
	return &MsgMigrateContract{Admin: admin, Contract: contract, Version: version}
}

func (msg MsgMigrateContract) Route() string { return RouterKey }
func (msg MsgMigrateContract) Type() string  { return TypeMsgMigrateContract }

func (msg MsgMigrateContract) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Admin)}
}

func (msg MsgMigrateContract) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

func (msg MsgMigrateContract) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid admin address (%s)", err)
	}
	return NewContractInfo(msg.Contract, msg.Version).Validate()
}

// Response types

type MsgUpdateAdminResponse struct{}

type MsgAddRelayersResponse struct{}

type MsgRemoveRelayersResponse struct{}

type MsgPingResponse struct {
	Timestamp uint64 `json:"timestamp"`
}

// MsgRelayResponse lists which symbols were written and which were skipped
// as stale.
type MsgRelayResponse struct {
	Applied []string `json:"applied"`
	Skipped []string `json:"skipped"`
}

type MsgRequestPriceResponse struct {
	RequestID string `json:"request_id"`
	Relayer   string `json:"relayer"`
}

type MsgUpdateParamsResponse struct{}

type MsgMigrateContractResponse struct{}
