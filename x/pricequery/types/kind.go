package types

import (
	pricefeedtypes "github.com/GPTx-global/pricefeed/x/pricefeed/types"
)

// Kind describes one flavour of price request. The request, reply and
// callback flow is shared by all kinds and only parameterised by this value.
type Kind struct {
	// Name is used in event types and query paths
	Name string
	// ReplyID routes a sub-message reply back to this kind
	ReplyID uint64
	// CallbackSig is the method the relayer calls to answer
	CallbackSig string
	// RequestType is forwarded to the oracle
	RequestType pricefeedtypes.RequestType
	// StorePrefix separates the kinds inside the module store
	StorePrefix byte
}

// request kinds
var (
	KindRate = Kind{
		Name:        "rate",
		ReplyID:     1,
		CallbackSig: "callback_rate",
		RequestType: pricefeedtypes.RequestTypeRate,
		StorePrefix: 0x01,
	}
	KindMedian = Kind{
		Name:        "median",
		ReplyID:     2,
		CallbackSig: "callback_median",
		RequestType: pricefeedtypes.RequestTypeMedian,
		StorePrefix: 0x02,
	}
	KindDeviation = Kind{
		Name:        "deviation",
		ReplyID:     3,
		CallbackSig: "callback_deviation",
		RequestType: pricefeedtypes.RequestTypeDeviation,
		StorePrefix: 0x03,
	}

	Kinds = []Kind{KindRate, KindMedian, KindDeviation}
)

// KindByReplyID returns the kind a reply belongs to.
func KindByReplyID(id uint64) (Kind, bool) {
	for _, kind := range Kinds {
		if kind.ReplyID == id {
			return kind, true
		}
	}
	return Kind{}, false
}

// KindByName returns the kind with the given name.
func KindByName(name string) (Kind, bool) {
	for _, kind := range Kinds {
		if kind.Name == name {
			return kind, true
		}
	}
	return Kind{}, false
}

// KindByCallbackSig returns the kind answered through the given callback method.
func KindByCallbackSig(sig string) (Kind, bool) {
	for _, kind := range Kinds {
		if kind.CallbackSig == sig {
			return kind, true
		}
	}
	return Kind{}, false
}

// RequestIDReturnedEvent is the event type emitted once the oracle returned
// the correlation id of a request of this kind.
func (k Kind) RequestIDReturnedEvent() string {
	return k.Name + "_request_id_returned"
}

// CallbackEvent is the event type emitted when a callback of this kind is stored.
func (k Kind) CallbackEvent() string {
	return k.Name + "_callback"
}
