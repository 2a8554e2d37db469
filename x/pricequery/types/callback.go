package types

// CallbackData is the latest answer of a relayer for a symbol. Rate callbacks
// store a single element in Rates.
type CallbackData struct {
	Rates       []uint64 `json:"rates"`
	LastUpdated uint64   `json:"last_updated"`
	RequestID   string   `json:"request_id"`
}

func NewCallbackData(rates []uint64, lastUpdated uint64, requestID string) CallbackData {
	return CallbackData{
		Rates:       rates,
		LastUpdated: lastUpdated,
		RequestID:   requestID,
	}
}

// Callback is a relayer's answer to a pending request.
type Callback struct {
	Relayer      string
	RequestID    string
	Symbol       string
	Rates        []uint64
	LastUpdated  uint64
	CallbackData []byte
}
