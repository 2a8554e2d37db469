package types

import (
	"encoding/base64"
	"fmt"
	"strconv"

	coretypes "github.com/tendermint/tendermint/rpc/core/types"

	"github.com/GPTx-global/pricefeed/relayer/log"
	pricefeedtypes "github.com/GPTx-global/pricefeed/x/pricefeed/types"
)

// Job is a price request assigned to this relayer.
type Job struct {
	ID           string
	Symbol       string
	RequestType  pricefeedtypes.RequestType
	CallbackSig  string
	CallbackData []byte
	ResolveTime  uint64
	Nonce        uint64
}

// Key identifies a request. Requests of one requester in the same block share
// an ID, so symbol and request type are part of the key.
func (j Job) Key() string {
	return j.ID + "/" + j.Symbol + "/" + string(j.RequestType)
}

// JobResult is the answer to a Job, ready to be sent back as a callback.
type JobResult struct {
	Job         Job
	Rates       []uint64
	LastUpdated uint64
}

var (
	requestAction  = eventKey(pricefeedtypes.AttributeKeyAction)
	requestID      = eventKey(pricefeedtypes.AttributeKeyRequestID)
	requestSymbol  = eventKey(pricefeedtypes.AttributeKeySymbol)
	requestType    = eventKey(pricefeedtypes.AttributeKeyRequestType)
	requestRelayer = eventKey(pricefeedtypes.AttributeKeyRelayerAddress)
	requestResolve = eventKey(pricefeedtypes.AttributeKeyResolveTime)
	requestSig     = eventKey(pricefeedtypes.AttributeKeyCallbackSignature)
	requestData    = eventKey(pricefeedtypes.AttributeKeyCallbackData)
)

func eventKey(attribute string) string {
	return pricefeedtypes.EventTypePriceFeed + "." + attribute
}

// RequestQuery selects the transactions carrying requests assigned to relayer.
func RequestQuery(relayer string) string {
	return fmt.Sprintf("tm.event='Tx' AND %s='%s'", requestRelayer, relayer)
}

// MakeJobs extracts the price requests of event addressed to relayer.
// Malformed entries are logged and skipped.
func MakeJobs(event coretypes.ResultEvent, relayer string) []Job {
	events := event.Events
	ids := events[requestID]
	if len(ids) == 0 {
		return nil
	}

	columns := [][]string{
		events[requestAction], events[requestSymbol], events[requestType],
		events[requestRelayer], events[requestResolve], events[requestSig], events[requestData],
	}
	for _, column := range columns {
		if len(column) != len(ids) {
			log.Errorf("price_feed event attributes are not aligned, %d request ids", len(ids))
			return nil
		}
	}

	jobs := make([]Job, 0, len(ids))
	for i, id := range ids {
		if events[requestAction][i] != pricefeedtypes.ActionRequestPrice {
			continue
		}
		if events[requestRelayer][i] != relayer {
			log.Debugf("request %s is not for me", id)
			continue
		}

		job, err := makeJob(id, events, i)
		if err != nil {
			log.Errorf("failed to make job %s: %v", id, err)
			continue
		}
		jobs = append(jobs, job)
	}

	log.Debugf("made %d jobs", len(jobs))
	if len(jobs) == 0 {
		return nil
	}
	return jobs
}

func makeJob(id string, events map[string][]string, i int) (Job, error) {
	reqType := pricefeedtypes.RequestType(events[requestType][i])
	if err := reqType.Validate(); err != nil {
		return Job{}, err
	}

	resolveTime, err := strconv.ParseUint(events[requestResolve][i], 10, 64)
	if err != nil {
		return Job{}, fmt.Errorf("failed to parse resolve time: %w", err)
	}

	callbackData, err := base64.StdEncoding.DecodeString(events[requestData][i])
	if err != nil {
		return Job{}, fmt.Errorf("failed to decode callback data: %w", err)
	}

	return Job{
		ID:           id,
		Symbol:       events[requestSymbol][i],
		RequestType:  reqType,
		CallbackSig:  events[requestSig][i],
		CallbackData: callbackData,
		ResolveTime:  resolveTime,
	}, nil
}
