package types

import "context"

// MsgServer is the server API of the pricequery messages.
type MsgServer interface {
	RequestRate(context.Context, *MsgRequestRate) (*MsgRequestResponse, error)
	RequestMedian(context.Context, *MsgRequestMedian) (*MsgRequestResponse, error)
	RequestDeviation(context.Context, *MsgRequestDeviation) (*MsgRequestResponse, error)
	CallbackRate(context.Context, *MsgCallbackRate) (*MsgCallbackResponse, error)
	CallbackMedian(context.Context, *MsgCallbackMedian) (*MsgCallbackResponse, error)
	CallbackDeviation(context.Context, *MsgCallbackDeviation) (*MsgCallbackResponse, error)
}
