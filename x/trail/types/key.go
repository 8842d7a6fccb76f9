package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name.
	ModuleName = "trail"

	// StoreKey defines the primary module store key.
	StoreKey = ModuleName
)

// KVStore keys.
var (
	OwnerKey        = collections.NewPrefix(0)
	TotalSupplyKey  = collections.NewPrefix(1)
	BalancesKey     = collections.NewPrefix(2)
	LockedUntilKey  = collections.NewPrefix(3)
	DelegatesKey    = collections.NewPrefix(4)
	CheckpointsKey  = collections.NewPrefix(5)
	AllowancesKey   = collections.NewPrefix(6)
	NoncesKey       = collections.NewPrefix(7)
	DistributorsKey = collections.NewPrefix(8)
)
