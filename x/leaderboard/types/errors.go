package types

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	ErrUnauthenticated = errorsmod.Register(ModuleName, 1, "unauthenticated")
	ErrInvalidScore    = errorsmod.Register(ModuleName, 2, "invalid score")
	ErrReplayRequired  = errorsmod.Register(ModuleName, 3, "replay data required")
	ErrReplayTooLarge  = errorsmod.Register(ModuleName, 4, "replay data too large")
	ErrPlayerNotFound  = errorsmod.Register(ModuleName, 5, "player not found")
	ErrInvalidSigner   = errorsmod.Register(ModuleName, 6, "expected gov account as only signer for proposal message")
)
