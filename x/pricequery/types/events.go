package types

// pricequery module event types. Request id and callback events are named
// after the request kind, see Kind.
const (
	EventTypeRelayMessage = "relay_message"
)

// Event attribute keys
const (
	AttributeKeyRequester   = "requester"
	AttributeKeyKind        = "kind"
	AttributeKeySymbol      = "symbol"
	AttributeKeyRequestID   = "request_id"
	AttributeKeyRelayer     = "relayer"
	AttributeKeyIsVerified  = "is_verified"
	AttributeKeyLastUpdated = "last_updated"
)
