package repositories

import (
	"testing"

	"github.com/skill-swap/backend/internal/apperrors"
	"github.com/skill-swap/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func acceptSwap(t *testing.T, repo SwapRepository, swap *models.SwapRequest) {
	t.Helper()
	require.NoError(t, repo.UpdateSwapStatus(swap.ID, models.SwapStatusPending, models.SwapStatusAccepted))
}

func TestSubmitFeedback_CompletesSwapAndUpdatesRating(t *testing.T) {
	db := newTestDB(t)
	users := NewPostgresUserRepository(db)
	swaps := NewPostgresSwapRepository(db)
	feedback := NewPostgresFeedbackRepository(db)

	alice := createTestUser(t, users, "Alice", "alice@example.com")
	bob := createTestUser(t, users, "Bob", "bob@example.com")
	swap := createTestSwap(t, swaps, alice.ID, bob.ID)
	acceptSwap(t, swaps, swap)

	fb := &models.Feedback{
		SwapRequestID: swap.ID,
		FromUserID:    alice.ID,
		ToUserID:      bob.ID,
		Rating:        5,
		Comment:       "Great swap",
	}
	require.NoError(t, feedback.SubmitFeedback(fb))

	got, err := swaps.GetSwapByID(swap.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SwapStatusCompleted, got.Status)

	ratee, err := users.GetUserByID(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, ratee.Rating)
	assert.Equal(t, 1, ratee.Reviews)

	received, err := feedback.GetFeedbackForUser(bob.ID)
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, "Great swap", received[0].Comment)
}

func TestSubmitFeedback_RunningMean(t *testing.T) {
	db := newTestDB(t)
	users := NewPostgresUserRepository(db)
	swaps := NewPostgresSwapRepository(db)
	feedback := NewPostgresFeedbackRepository(db)

	alice := createTestUser(t, users, "Alice", "alice@example.com")
	bob := createTestUser(t, users, "Bob", "bob@example.com")

	// Bob already holds a 4.0 rating over 2 reviews
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", bob.ID).
		Updates(map[string]interface{}{"rating": 4.0, "reviews": 2}).Error)

	swap := createTestSwap(t, swaps, alice.ID, bob.ID)
	acceptSwap(t, swaps, swap)

	fb := &models.Feedback{
		SwapRequestID: swap.ID,
		FromUserID:    alice.ID,
		ToUserID:      bob.ID,
		Rating:        5,
	}
	require.NoError(t, feedback.SubmitFeedback(fb))

	got, err := users.GetUserByID(bob.ID)
	require.NoError(t, err)
	assert.InDelta(t, (4.0*2+5)/3.0, got.Rating, 1e-9)
	assert.Equal(t, 3, got.Reviews)
}

func TestSubmitFeedback_DuplicateConflict(t *testing.T) {
	db := newTestDB(t)
	users := NewPostgresUserRepository(db)
	swaps := NewPostgresSwapRepository(db)
	feedback := NewPostgresFeedbackRepository(db)

	alice := createTestUser(t, users, "Alice", "alice@example.com")
	bob := createTestUser(t, users, "Bob", "bob@example.com")
	swap := createTestSwap(t, swaps, alice.ID, bob.ID)
	acceptSwap(t, swaps, swap)

	first := &models.Feedback{SwapRequestID: swap.ID, FromUserID: alice.ID, ToUserID: bob.ID, Rating: 4}
	require.NoError(t, feedback.SubmitFeedback(first))

	second := &models.Feedback{SwapRequestID: swap.ID, FromUserID: alice.ID, ToUserID: bob.ID, Rating: 1}
	err := feedback.SubmitFeedback(second)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	// The swap completed exactly once and the failed submission left no trace
	got, err := users.GetUserByID(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got.Rating)
	assert.Equal(t, 1, got.Reviews)

	received, err := feedback.GetFeedbackForUser(bob.ID)
	require.NoError(t, err)
	assert.Len(t, received, 1)
}

func TestSubmitFeedback_SwapNotAccepted(t *testing.T) {
	db := newTestDB(t)
	users := NewPostgresUserRepository(db)
	swaps := NewPostgresSwapRepository(db)
	feedback := NewPostgresFeedbackRepository(db)

	alice := createTestUser(t, users, "Alice", "alice@example.com")
	bob := createTestUser(t, users, "Bob", "bob@example.com")
	swap := createTestSwap(t, swaps, alice.ID, bob.ID) // still pending

	fb := &models.Feedback{SwapRequestID: swap.ID, FromUserID: alice.ID, ToUserID: bob.ID, Rating: 5}
	err := feedback.SubmitFeedback(fb)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)

	// The whole chain rolled back: no feedback row, no rating change
	received, err := feedback.GetFeedbackForUser(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, received)

	got, err := users.GetUserByID(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Rating)
	assert.Equal(t, 0, got.Reviews)
}
