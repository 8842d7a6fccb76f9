package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Module errors.
// NOTE: Error status code must start from 2.
var (
	// ErrUnauthorized is returned when the caller lacks the role an operation requires.
	ErrUnauthorized = sdkerrors.Register(ModuleName, 2, "unauthorized")
	// ErrInsufficientBalance is returned when an account tries to move more than it holds.
	ErrInsufficientBalance = sdkerrors.Register(ModuleName, 3, "insufficient balance")
	// ErrTokensLocked is returned when an outbound transfer is attempted before the lock expires.
	ErrTokensLocked = sdkerrors.Register(ModuleName, 4, "tokens are locked")
	// ErrInvalidReceiver is returned when the receiver principal is empty.
	ErrInvalidReceiver = sdkerrors.Register(ModuleName, 5, "invalid receiver")
	// ErrExpired is returned when a permit deadline has passed.
	ErrExpired = sdkerrors.Register(ModuleName, 6, "permit expired")
	// ErrInvalidSignature is returned when a permit signature does not verify for the stated owner.
	ErrInvalidSignature = sdkerrors.Register(ModuleName, 7, "invalid signature")
	// ErrInvalidInput is returned on malformed genesis or operation input.
	ErrInvalidInput = sdkerrors.Register(ModuleName, 8, "invalid input")
)
