package types

import (
	errorsmod "cosmossdk.io/errors"
)

// errors
var (
	ErrRequestIDMismatch = errorsmod.Register(ModuleName, 2, "request id mismatch")
	ErrInvalidRelayer    = errorsmod.Register(ModuleName, 3, "invalid relayer")
	ErrEventNotFound     = errorsmod.Register(ModuleName, 4, "cannot find request price event")
	ErrAttributeNotFound = errorsmod.Register(ModuleName, 5, "cannot find attribute")
	ErrUnknownReply      = errorsmod.Register(ModuleName, 6, "unknown reply id")
	ErrPendingNotFound   = errorsmod.Register(ModuleName, 7, "pending request not found")
	ErrCallbackNotFound  = errorsmod.Register(ModuleName, 8, "callback data not found")
	ErrInvalidCallback   = errorsmod.Register(ModuleName, 9, "invalid callback")
	ErrUnknownKind       = errorsmod.Register(ModuleName, 10, "unknown request kind")
)
