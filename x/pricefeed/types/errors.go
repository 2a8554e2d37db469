package types

import (
	errorsmod "cosmossdk.io/errors"
)

// errors
var (
	ErrUnauthorizedAdmin   = errorsmod.Register(ModuleName, 2, "unauthorized: sender is not an admin")
	ErrUnauthorizedRelayer = errorsmod.Register(ModuleName, 3, "unauthorized: sender is not a relayer")
	ErrRefDataNotFound     = errorsmod.Register(ModuleName, 4, "reference data not found")
	ErrArithmetic          = errorsmod.Register(ModuleName, 5, "arithmetic error")
	ErrNoRelayerAvailable  = errorsmod.Register(ModuleName, 6, "no relayer available")
	ErrVersionConflict     = errorsmod.Register(ModuleName, 7, "cannot migrate contract")
	ErrMedianDisabled      = errorsmod.Register(ModuleName, 8, "median is disabled")
	ErrInvalidParams       = errorsmod.Register(ModuleName, 9, "invalid params")
	ErrInvalidSymbol       = errorsmod.Register(ModuleName, 10, "invalid symbol")
	ErrInvalidRequestType  = errorsmod.Register(ModuleName, 11, "invalid request type")
)
