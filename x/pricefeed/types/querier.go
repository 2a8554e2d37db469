package types

import "github.com/cosmos/cosmos-sdk/types/query"

// query endpoints supported by the pricefeed querier
const (
	QueryAdmin             = "admin"
	QueryParams            = "params"
	QueryIsRelayer         = "is_relayer"
	QueryRelayers          = "relayers"
	QueryLastPing          = "last_ping"
	QueryRef               = "ref"
	QueryReferenceData     = "reference_data"
	QueryReferenceDataBulk = "reference_data_bulk"
	QueryMedianRef         = "median_ref"
	QueryMedianRefBulk     = "median_ref_bulk"
	QueryDeviationRef      = "deviation_ref"
	QueryDeviationRefBulk  = "deviation_ref_bulk"
	QueryTotalRequests     = "total_requests"
	QueryContractInfo      = "contract_info"
)

// QueryAddressParams is the request payload of is_relayer and last_ping.
type QueryAddressParams struct {
	Address string `json:"address"`
}

// QueryRelayersResponse answers the relayers query.
type QueryRelayersResponse struct {
	Relayers   []string            `json:"relayers"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

// QueryRelayersParams is the request payload of the relayers query.
type QueryRelayersParams struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

// QuerySymbolParams is the request payload of single symbol queries.
type QuerySymbolParams struct {
	Symbol string `json:"symbol"`
}

// QuerySymbolsParams is the request payload of bulk symbol queries.
type QuerySymbolsParams struct {
	Symbols []string `json:"symbols"`
}

// QueryPairParams is the request payload of reference_data.
type QueryPairParams struct {
	Base  string `json:"base"`
	Quote string `json:"quote"`
}

// QueryPairsParams is the request payload of reference_data_bulk.
type QueryPairsParams struct {
	Pairs []SymbolPair `json:"pairs"`
}

// QueryIsRelayerResponse answers is_relayer.
type QueryIsRelayerResponse struct {
	IsRelayer bool `json:"is_relayer"`
}

// QueryLastPingResponse answers last_ping.
type QueryLastPingResponse struct {
	LastPing uint64 `json:"last_ping"`
}

// QueryTotalRequestsResponse answers total_requests.
type QueryTotalRequestsResponse struct {
	TotalRequests uint64 `json:"total_requests"`
}
