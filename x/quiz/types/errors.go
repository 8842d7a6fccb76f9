package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Module errors.
// NOTE: Error status code must start from 2.
var (
	// ErrUnauthorized is returned when the caller is not the quiz engine owner.
	ErrUnauthorized = sdkerrors.Register(ModuleName, 2, "unauthorized")
	// ErrQuizNotFound is returned when the quiz id has never been configured.
	ErrQuizNotFound = sdkerrors.Register(ModuleName, 3, "quiz does not exist")
	// ErrCooldownActive is returned when the caller re-attempts a quiz before its cooldown elapses.
	ErrCooldownActive = sdkerrors.Register(ModuleName, 4, "cooldown period not over")
	// ErrInvalidQuiz is returned on malformed quiz parameters.
	ErrInvalidQuiz = sdkerrors.Register(ModuleName, 5, "invalid quiz")
	// ErrInvalidInput is returned on malformed genesis or operation input.
	ErrInvalidInput = sdkerrors.Register(ModuleName, 6, "invalid input")
)
