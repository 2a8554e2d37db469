package types

// pricefeed module event types
const (
	EventTypePriceFeed       = "price_feed"
	EventTypeRelay           = ModuleName + "_relay"
	EventTypeUpdateAdmin     = ModuleName + "_update_admin"
	EventTypeAddRelayers     = ModuleName + "_add_relayers"
	EventTypeRemoveRelayers  = ModuleName + "_remove_relayers"
	EventTypePing            = ModuleName + "_ping"
	EventTypeUpdateParams    = ModuleName + "_update_params"
	EventTypeMigrateContract = ModuleName + "_migrate"
)

// Event attribute keys
const (
	AttributeKeyAction               = "action"
	AttributeKeyRequestID            = "request_id"
	AttributeKeySymbol               = "symbol"
	AttributeKeyRequestType          = "request_type"
	AttributeKeyRelayerAddress       = "relayer_address"
	AttributeKeyEventContractAddress = "event_contract_address"
	AttributeKeyResolveTime          = "resolve_time"
	AttributeKeyCallbackSignature    = "callback_signature"
	AttributeKeyCallbackData         = "callback_data"
	AttributeKeyAdmin                = "admin"
	AttributeKeyAddress              = "address"
	AttributeKeyRelayer              = "relayer"
	AttributeKeyForce                = "force"
	AttributeKeyApplied              = "applied"
	AttributeKeySkipped              = "skipped"
	AttributeKeyTimestamp            = "timestamp"
	AttributeKeyPingThreshold        = "ping_threshold"
	AttributeKeyMedianStatus         = "median_status"
	AttributeKeyVersion              = "version"
	AttributeKeyContract             = "contract"
)

// Action attribute values
const (
	ActionRequestPrice                  = "request_price"
	ActionRelay                         = "execute_relay"
	ActionForceRelay                    = "execute_force_relay"
	ActionRelayHistoricalMedian         = "execute_relay_historical_median"
	ActionForceRelayHistoricalMedian    = "execute_force_relay_historical_median"
	ActionRelayHistoricalDeviation      = "execute_relay_historical_deviation"
	ActionForceRelayHistoricalDeviation = "execute_force_relay_historical_deviation"
)
