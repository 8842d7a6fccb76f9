package types

import (
	context "context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// LedgerKeeper is the reward-paying capability the quiz engine expects from
// the TRAIL ledger. The distributor address must be registered with the
// ledger's owner before any reward can be paid.
type LedgerKeeper interface {
	DistributeReward(ctx context.Context, caller, to sdk.AccAddress, amount sdkmath.Int) error
}
