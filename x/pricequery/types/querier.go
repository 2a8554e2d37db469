package types

// query endpoints supported by the pricequery querier
const (
	QueryPrice              = "price"
	QueryMedian             = "median"
	QueryDeviation          = "deviation"
	QueryRateRequestID      = "rate_request_id"
	QueryMedianRequestID    = "median_request_id"
	QueryDeviationRequestID = "deviation_request_id"
)

// QuerySymbolParams is the request payload of every pricequery query.
type QuerySymbolParams struct {
	Symbol string `json:"symbol"`
}

// QueryRequestIDResponse answers the *_request_id queries.
type QueryRequestIDResponse struct {
	RequestID string `json:"request_id"`
}
