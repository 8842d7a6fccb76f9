package types

// Event types.
const (
	EventTypeQuizUpdated   = "quiz_updated"
	EventTypeQuizCompleted = "quiz_completed"
	EventTypeRewardPaid    = "reward_paid"
)

// Event attribute keys.
const (
	AttributeKeyQuizID  = "quiz_id"
	AttributeKeyVersion = "version"
	AttributeKeyUser    = "user"
	AttributeKeyScore   = "score"
	AttributeKeyReward  = "reward"
)
