package types

import (
	"encoding/binary"
	"fmt"
)

const (
	// ModuleName defines the module name
	ModuleName = "pricefeed"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// KV Store key prefix bytes
const (
	prefixParams = iota + 1
	prefixAdmin
	prefixRelayers
	prefixPingCheck
	prefixLastRelayer
	prefixRefData
	prefixMedianRefData
	prefixDeviationData
	prefixTotalRequests
	prefixContractInfo
)

// KV Store key prefixes
var (
	KeyParams        = []byte{prefixParams}
	KeyAdmin         = []byte{prefixAdmin}
	KeyRelayers      = []byte{prefixRelayers}
	KeyPingCheck     = []byte{prefixPingCheck}
	KeyLastRelayer   = []byte{prefixLastRelayer}
	KeyRefData       = []byte{prefixRefData}
	KeyMedianRefData = []byte{prefixMedianRefData}
	KeyDeviationData = []byte{prefixDeviationData}
	KeyTotalRequests = []byte{prefixTotalRequests}
	KeyContractInfo  = []byte{prefixContractInfo}
)

// Uint64ToBytes encodes v big-endian so that byte order matches numeric order.
func Uint64ToBytes(v uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, v)
	return bz
}

// BytesToUint64 decodes a value written by Uint64ToBytes.
func BytesToUint64(bz []byte) (uint64, error) {
	if len(bz) != 8 {
		return 0, fmt.Errorf("invalid uint64 length: %d", len(bz))
	}
	return binary.BigEndian.Uint64(bz), nil
}
