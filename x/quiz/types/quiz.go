package types

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// Quiz is a versioned quiz definition. Version starts at 1 and strictly
// increases on every update; version 0 means the quiz does not exist.
type Quiz struct {
	BaseReward      sdkmath.Int `json:"base_reward"`
	PassingScore    uint32      `json:"passing_score"`
	CooldownSeconds uint64      `json:"cooldown_seconds"`
	Version         uint64      `json:"version"`
}

// ValidateBasic checks the owner-supplied quiz fields. There are deliberately
// no ceilings on reward or passing score, only the owner can configure them.
func (q Quiz) ValidateBasic() error {
	if q.BaseReward.IsNil() || q.BaseReward.IsNegative() {
		return errorsmod.Wrap(ErrInvalidQuiz, "base reward must be a non-negative integer")
	}
	return nil
}

// Attempt is a user's last recorded attempt at a quiz. QuizVersion references
// the quiz version active when the attempt was recorded; a later version bump
// does not reset the attempt timestamp.
type Attempt struct {
	Completed       bool   `json:"completed"`
	Score           uint32 `json:"score"`
	LastAttemptUnix uint64 `json:"last_attempt_unix"`
	QuizVersion     uint64 `json:"quiz_version"`
}
