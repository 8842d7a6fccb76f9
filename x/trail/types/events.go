package types

// Event types.
const (
	EventTypeTransfer             = "transfer"
	EventTypeDelegateChanged      = "delegate_changed"
	EventTypeTokensLocked         = "tokens_locked"
	EventTypeRewardDistributed    = "reward_distributed"
	EventTypeOwnershipTransferred = "ownership_transferred"
)

// Event attribute keys.
const (
	AttributeKeyFrom        = "from"
	AttributeKeyTo          = "to"
	AttributeKeyAmount      = "amount"
	AttributeKeyDelegator   = "delegator"
	AttributeKeyDelegate    = "delegate"
	AttributeKeyAccount     = "account"
	AttributeKeyLockedUntil = "locked_until"
	AttributeKeyDistributor = "distributor"
	AttributeKeyOwner       = "owner"
)
