package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	pricefeedtypes "github.com/GPTx-global/pricefeed/x/pricefeed/types"
)

// Msg is implemented by every message handled by the pricequery module.
type Msg interface {
	Route() string
	Type() string
	ValidateBasic() error
	GetSigners() []sdk.AccAddress
}

// RequestMsg asks the oracle for a fresh value of one kind.
type RequestMsg interface {
	Msg
	Kind() Kind
	GetRequester() string
	GetSymbol() string
	GetCallbackData() []byte
}

// CallbackMsg carries a relayer's answer of one kind.
type CallbackMsg interface {
	Msg
	Kind() Kind
	Callback() Callback
}

var (
	_ RequestMsg  = &MsgRequestRate{}
	_ RequestMsg  = &MsgRequestMedian{}
	_ RequestMsg  = &MsgRequestDeviation{}
	_ CallbackMsg = &MsgCallbackRate{}
	_ CallbackMsg = &MsgCallbackMedian{}
	_ CallbackMsg = &MsgCallbackDeviation{}
)

// PriceRequest holds the fields shared by the request messages.
type PriceRequest struct {
	Requester    string `json:"requester"`
	Symbol       string `json:"symbol"`
	CallbackData []byte `json:"callback_data"`
}

func (r PriceRequest) GetRequester() string    { return r.Requester }
func (r PriceRequest) GetSymbol() string       { return r.Symbol }
func (r PriceRequest) GetCallbackData() []byte { return r.CallbackData }
func (r PriceRequest) Route() string           { return RouterKey }

func (r PriceRequest) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(r.Requester)}
}

func (r PriceRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(r.Requester); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid requester address (%s)", err)
	}
	return pricefeedtypes.ValidateSymbol(r.Symbol)
}

// MsgRequestRate requests the latest rate of a symbol.
type MsgRequestRate struct {
	PriceRequest
}

func NewMsgRequestRate(requester, symbol string, callbackData []byte) *MsgRequestRate {
	return &MsgRequestRate{PriceRequest{Requester: requester, Symbol: symbol, CallbackData: callbackData}}
}

func (msg MsgRequestRate) Type() string { return "request_rate" }
func (msg MsgRequestRate) Kind() Kind   { return KindRate }

// MsgRequestMedian requests the latest median history of a symbol.
type MsgRequestMedian struct {
	PriceRequest
}

func NewMsgRequestMedian(requester, symbol string, callbackData []byte) *MsgRequestMedian {
	return &MsgRequestMedian{PriceRequest{Requester: requester, Symbol: symbol, CallbackData: callbackData}}
}

func (msg MsgRequestMedian) Type() string { return "request_median" }
func (msg MsgRequestMedian) Kind() Kind   { return KindMedian }

// MsgRequestDeviation requests the latest deviation of a symbol.
type MsgRequestDeviation struct {
	PriceRequest
}

func NewMsgRequestDeviation(requester, symbol string, callbackData []byte) *MsgRequestDeviation {
	return &MsgRequestDeviation{PriceRequest{Requester: requester, Symbol: symbol, CallbackData: callbackData}}
}

func (msg MsgRequestDeviation) Type() string { return "request_deviation" }
func (msg MsgRequestDeviation) Kind() Kind   { return KindDeviation }

// MsgCallbackRate answers a rate request with a scalar rate.
type MsgCallbackRate struct {
	Relayer      string `json:"relayer"`
	RequestID    string `json:"request_id"`
	Symbol       string `json:"symbol"`
	SymbolRate   uint64 `json:"symbol_rate"`
	LastUpdated  uint64 `json:"last_updated"`
	CallbackData []byte `json:"callback_data"`
}

func NewMsgCallbackRate(relayer, requestID, symbol string, rate, lastUpdated uint64, callbackData []byte) *MsgCallbackRate {
	return &MsgCallbackRate{
		Relayer:      relayer,
		RequestID:    requestID,
		Symbol:       symbol,
		SymbolRate:   rate,
		LastUpdated:  lastUpdated,
		CallbackData: callbackData,
	}
}

func (msg MsgCallbackRate) Route() string { return RouterKey }
func (msg MsgCallbackRate) Type() string  { return KindRate.CallbackSig }
func (msg MsgCallbackRate) Kind() Kind    { return KindRate }

func (msg MsgCallbackRate) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(msg.Relayer)}
}

func (msg MsgCallbackRate) ValidateBasic() error {
	return validateCallback(msg.Relayer, msg.RequestID, msg.Symbol)
}

func (msg MsgCallbackRate) Callback() Callback {
	return Callback{
		Relayer:      msg.Relayer,
		RequestID:    msg.RequestID,
		Symbol:       msg.Symbol,
		Rates:        []uint64{msg.SymbolRate},
		LastUpdated:  msg.LastUpdated,
		CallbackData: msg.CallbackData,
	}
}

// HistoricalCallback holds the fields shared by the vector callbacks.
type HistoricalCallback struct {
	Relayer      string   `json:"relayer"`
	RequestID    string   `json:"request_id"`
	Symbol       string   `json:"symbol"`
	SymbolRates  []uint64 `json:"symbol_rates"`
	LastUpdated  uint64   `json:"last_updated"`
	CallbackData []byte   `json:"callback_data"`
}

func (c HistoricalCallback) Route() string { return RouterKey }

func (c HistoricalCallback) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(c.Relayer)}
}

func (c HistoricalCallback) ValidateBasic() error {
	if err := validateCallback(c.Relayer, c.RequestID, c.Symbol); err != nil {
		return err
	}
	if len(c.SymbolRates) == 0 {
		return errorsmod.Wrap(ErrInvalidCallback, "symbol rates cannot be empty")
	}
	return nil
}

func (c HistoricalCallback) Callback() Callback {
	return Callback{
		Relayer:      c.Relayer,
		RequestID:    c.RequestID,
		Symbol:       c.Symbol,
		Rates:        c.SymbolRates,
		LastUpdated:  c.LastUpdated,
		CallbackData: c.CallbackData,
	}
}

func newHistoricalCallback(relayer, requestID, symbol string, rates []uint64, lastUpdated uint64, callbackData []byte) HistoricalCallback {
	return HistoricalCallback{
		Relayer:      relayer,
		RequestID:    requestID,
		Symbol:       symbol,
		SymbolRates:  rates,
		LastUpdated:  lastUpdated,
		CallbackData: callbackData,
	}
}

// MsgCallbackMedian answers a median request.
type MsgCallbackMedian struct {
	HistoricalCallback
}

func NewMsgCallbackMedian(relayer, requestID, symbol string, rates []uint64, lastUpdated uint64, callbackData []byte) *MsgCallbackMedian {
	return &MsgCallbackMedian{newHistoricalCallback(relayer, requestID, symbol, rates, lastUpdated, callbackData)}
}

func (msg MsgCallbackMedian) Type() string { return KindMedian.CallbackSig }
func (msg MsgCallbackMedian) Kind() Kind   { return KindMedian }

// MsgCallbackDeviation answers a deviation request.
type MsgCallbackDeviation struct {
	HistoricalCallback
}

func NewMsgCallbackDeviation(relayer, requestID, symbol string, rates []uint64, lastUpdated uint64, callbackData []byte) *MsgCallbackDeviation {
	return &MsgCallbackDeviation{newHistoricalCallback(relayer, requestID, symbol, rates, lastUpdated, callbackData)}
}

func (msg MsgCallbackDeviation) Type() string { return KindDeviation.CallbackSig }
func (msg MsgCallbackDeviation) Kind() Kind   { return KindDeviation }

func validateCallback(relayer, requestID, symbol string) error {
	if _, err := sdk.AccAddressFromBech32(relayer); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid relayer address (%s)", err)
	}
	if requestID == "" {
		return errorsmod.Wrap(ErrInvalidCallback, "request id cannot be empty")
	}
	return pricefeedtypes.ValidateSymbol(symbol)
}

// MsgRequestResponse is returned by the request messages.
type MsgRequestResponse struct{}

// MsgCallbackResponse is returned by the callback messages.
type MsgCallbackResponse struct{}
