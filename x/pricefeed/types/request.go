package types

import (
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// RequestType selects which reference data a price request asks for.
type RequestType string

const (
	RequestTypeRate      RequestType = "request_rate"
	RequestTypeMedian    RequestType = "request_median"
	RequestTypeDeviation RequestType = "request_deviation"
)

func (t RequestType) String() string {
	return string(t)
}

// Validate checks that t is one of the known request types.
func (t RequestType) Validate() error {
	switch t {
	case RequestTypeRate, RequestTypeMedian, RequestTypeDeviation:
		return nil
	default:
		return errorsmod.Wrapf(ErrInvalidRequestType, "%q", string(t))
	}
}

// OracleRequest asks the relayer set for a fresh observation of Symbol. The
// selected relayer answers by calling CallbackSig on the requester with
// CallbackData passed through unmodified.
type OracleRequest struct {
	Type         RequestType `json:"type"`
	Symbol       string      `json:"symbol"`
	ResolveTime  uint64      `json:"resolve_time"`
	CallbackSig  string      `json:"callback_sig"`
	CallbackData []byte      `json:"callback_data"`
}

// ValidateBasic performs stateless checks of the request.
func (r OracleRequest) ValidateBasic() error {
	if err := r.Type.Validate(); err != nil {
		return err
	}
	if err := ValidateSymbol(r.Symbol); err != nil {
		return err
	}
	if strings.TrimSpace(r.CallbackSig) == "" {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "callback signature cannot be empty")
	}
	return nil
}

// RequestID builds the correlation id of a request issued by requester at
// the given block time.
func RequestID(requester string, blockTime uint64) string {
	return fmt.Sprintf("%s_%d", requester, blockTime)
}

// ValidateSymbol rejects empty or whitespace padded symbols.
func ValidateSymbol(symbol string) error {
	if symbol == "" {
		return errorsmod.Wrap(ErrInvalidSymbol, "empty symbol")
	}
	if strings.TrimSpace(symbol) != symbol {
		return errorsmod.Wrapf(ErrInvalidSymbol, "%q", symbol)
	}
	return nil
}
