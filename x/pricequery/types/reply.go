package types

import (
	errorsmod "cosmossdk.io/errors"
	abci "github.com/tendermint/tendermint/abci/types"

	pricefeedtypes "github.com/GPTx-global/pricefeed/x/pricefeed/types"
)

// Reply is the result of a dispatched oracle request, routed back by ID.
type Reply struct {
	ID     uint64       `json:"id"`
	Events []abci.Event `json:"events"`
}

// RequestFromEvents returns the request id and symbol announced by the
// request_price event among events.
func RequestFromEvents(events []abci.Event) (requestID, symbol string, err error) {
	event, found := findRequestPriceEvent(events)
	if !found {
		return "", "", ErrEventNotFound
	}

	requestID, found = attributeValue(event, pricefeedtypes.AttributeKeyRequestID)
	if !found {
		return "", "", errorsmod.Wrapf(ErrAttributeNotFound, "cannot find `%s` attribute", pricefeedtypes.AttributeKeyRequestID)
	}
	symbol, found = attributeValue(event, pricefeedtypes.AttributeKeySymbol)
	if !found {
		return "", "", errorsmod.Wrapf(ErrAttributeNotFound, "cannot find `%s` attribute", pricefeedtypes.AttributeKeySymbol)
	}
	return requestID, symbol, nil
}

func findRequestPriceEvent(events []abci.Event) (abci.Event, bool) {
	for _, event := range events {
		if action, ok := attributeValue(event, pricefeedtypes.AttributeKeyAction); ok && action == pricefeedtypes.ActionRequestPrice {
			return event, true
		}
	}
	return abci.Event{}, false
}

func attributeValue(event abci.Event, key string) (string, bool) {
	for _, attr := range event.Attributes {
		if string(attr.Key) == key {
			return string(attr.Value), true
		}
	}
	return "", false
}
