package keeper

import (
	"context"
	"errors"
	"strconv"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/trailnet/trail-chain/x/quiz/types"
)

// AddOrUpdateQuiz creates or updates the quiz definition for id. Owner only.
// A new quiz starts at version 1; updating an existing id overwrites its
// fields and strictly increments the version, so recorded attempts can tell
// which terms they were made under.
func (k Keeper) AddOrUpdateQuiz(ctx context.Context, caller sdk.AccAddress, id uint64, quiz types.Quiz) error {
	if err := k.ensureOwner(ctx, caller); err != nil {
		return err
	}
	if err := quiz.ValidateBasic(); err != nil {
		return err
	}

	existing, err := k.Quizzes.Get(ctx, id)
	switch {
	case errors.Is(err, collections.ErrNotFound):
		quiz.Version = 1
	case err != nil:
		return err
	default:
		quiz.Version = existing.Version + 1
	}

	if err := k.Quizzes.Set(ctx, id, quiz); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeQuizUpdated,
		sdk.NewAttribute(types.AttributeKeyQuizID, strconv.FormatUint(id, 10)),
		sdk.NewAttribute(types.AttributeKeyVersion, strconv.FormatUint(quiz.Version, 10)),
	))

	return nil
}

// GetQuiz returns the quiz definition for id.
func (k Keeper) GetQuiz(ctx context.Context, id uint64) (types.Quiz, error) {
	quiz, err := k.Quizzes.Get(ctx, id)
	if errors.Is(err, collections.ErrNotFound) {
		return types.Quiz{}, errorsmod.Wrapf(types.ErrQuizNotFound, "quiz %d", id)
	}
	if err != nil {
		return types.Quiz{}, err
	}
	return quiz, nil
}

// CompleteQuiz records the caller's attempt at quiz id and pays the base
// reward through the ledger when the score reaches the passing threshold
// (inclusive). The attempt is recorded whether or not it passes; a failing
// score still restarts the cooldown window.
func (k Keeper) CompleteQuiz(ctx context.Context, caller sdk.AccAddress, id uint64, score uint32) error {
	quiz, err := k.GetQuiz(ctx, id)
	if err != nil {
		return err
	}

	blockTime := uint64(sdk.UnwrapSDKContext(ctx).BlockTime().Unix())
	attemptKey := collections.Join(caller, id)

	prior, err := k.Attempts.Get(ctx, attemptKey)
	switch {
	case errors.Is(err, collections.ErrNotFound):
		// first attempt, always eligible
	case err != nil:
		return err
	default:
		elapsed := blockTime - prior.LastAttemptUnix
		if elapsed < quiz.CooldownSeconds {
			return errorsmod.Wrapf(
				types.ErrCooldownActive,
				"quiz %d attempted %d seconds ago, cooldown is %d", id, elapsed, quiz.CooldownSeconds,
			)
		}
	}

	if err := k.Attempts.Set(ctx, attemptKey, types.Attempt{
		Completed:       true,
		Score:           score,
		LastAttemptUnix: blockTime,
		QuizVersion:     quiz.Version,
	}); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeQuizCompleted,
		sdk.NewAttribute(types.AttributeKeyQuizID, strconv.FormatUint(id, 10)),
		sdk.NewAttribute(types.AttributeKeyUser, caller.String()),
		sdk.NewAttribute(types.AttributeKeyScore, strconv.FormatUint(uint64(score), 10)),
	))

	if score < quiz.PassingScore {
		return nil
	}

	// flat reward, no score scaling
	if err := k.ledgerKeeper.DistributeReward(ctx, k.moduleAddress, caller, quiz.BaseReward); err != nil {
		return err
	}

	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRewardPaid,
		sdk.NewAttribute(types.AttributeKeyUser, caller.String()),
		sdk.NewAttribute(types.AttributeKeyReward, quiz.BaseReward.String()),
	))
	k.Logger(ctx).Debug("paid quiz reward", "quiz", id, "user", caller.String(), "reward", quiz.BaseReward.String())

	return nil
}

// GetUserQuizAttempt returns the user's last recorded attempt at quiz id.
// The zero Attempt is returned when the user has never attempted it.
func (k Keeper) GetUserQuizAttempt(ctx context.Context, user sdk.AccAddress, id uint64) (types.Attempt, error) {
	attempt, err := k.Attempts.Get(ctx, collections.Join(user, id))
	if errors.Is(err, collections.ErrNotFound) {
		return types.Attempt{}, nil
	}
	if err != nil {
		return types.Attempt{}, err
	}
	return attempt, nil
}
