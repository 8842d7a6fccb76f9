package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name.
	ModuleName = "quiz"

	// StoreKey defines the primary module store key.
	StoreKey = ModuleName
)

// KVStore keys.
var (
	OwnerKey    = collections.NewPrefix(0)
	QuizzesKey  = collections.NewPrefix(1)
	AttemptsKey = collections.NewPrefix(2)
)
