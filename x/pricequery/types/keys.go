package types

const (
	// ModuleName defines the module name
	ModuleName = "pricequery"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// KV Store key prefix bytes
const (
	prefixPendingRequest = iota + 1
	prefixCallbackData
)

// KV Store key prefixes
var (
	KeyPendingRequest = []byte{prefixPendingRequest}
	KeyCallbackData   = []byte{prefixCallbackData}
)

// PendingRequestPrefix returns the prefix of the pending requests of a kind.
func PendingRequestPrefix(kind Kind) []byte {
	return append(append([]byte{}, KeyPendingRequest...), kind.StorePrefix)
}

// CallbackDataPrefix returns the prefix of the callback data of a kind.
func CallbackDataPrefix(kind Kind) []byte {
	return append(append([]byte{}, KeyCallbackData...), kind.StorePrefix)
}
