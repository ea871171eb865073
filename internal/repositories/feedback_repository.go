package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/skill-swap/backend/internal/apperrors"
	"github.com/skill-swap/backend/internal/models"
	"gorm.io/gorm"
)

// FeedbackRepository defines the interface for feedback data operations
type FeedbackRepository interface {
	SubmitFeedback(fb *models.Feedback) error
	GetFeedbackForUser(userID string) ([]models.Feedback, error)
}

// PostgresFeedbackRepository implements FeedbackRepository for PostgreSQL
type PostgresFeedbackRepository struct {
	db *gorm.DB
}

// NewPostgresFeedbackRepository creates a new PostgresFeedbackRepository
func NewPostgresFeedbackRepository(db *gorm.DB) *PostgresFeedbackRepository {
	return &PostgresFeedbackRepository{db: db}
}

// SubmitFeedback persists a feedback row, completes the swap and folds the
// rating into the ratee's running mean, all in one transaction. Either all
// three writes land or none do.
//
// The unique index on swap_request_id rejects a second feedback for the same
// swap, and the status guard on the swap update asserts the swap is still
// accepted at commit time. Both checks run inside the transaction, so
// concurrent submissions serialize on the affected rows.
func (r *PostgresFeedbackRepository) SubmitFeedback(fb *models.Feedback) error {
	fb.ID = uuid.NewString()

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(fb).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("feedback already submitted for this swap: %w", apperrors.ErrConflict)
			}
			return err
		}

		res := tx.Model(&models.SwapRequest{}).
			Where("id = ? AND status = ?", fb.SwapRequestID, models.SwapStatusAccepted).
			Update("status", models.SwapStatusCompleted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("swap request is not accepted: %w", apperrors.ErrInvalidState)
		}

		// rating = (rating*reviews + new) / (reviews+1), computed in SQL so
		// the read and write of the ratee row are a single atomic statement.
		res = tx.Model(&models.User{}).
			Where("id = ?", fb.ToUserID).
			Updates(map[string]interface{}{
				"rating":  gorm.Expr("(rating * reviews + ?) / (reviews + 1)", float64(fb.Rating)),
				"reviews": gorm.Expr("reviews + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("user %s: %w", fb.ToUserID, apperrors.ErrNotFound)
		}
		return nil
	})
}

// GetFeedbackForUser retrieves all feedback received by a user, newest first
func (r *PostgresFeedbackRepository) GetFeedbackForUser(userID string) ([]models.Feedback, error) {
	var feedback []models.Feedback
	err := r.db.Where("to_user_id = ?", userID).
		Order("created_at DESC").
		Find(&feedback).Error
	if err != nil {
		return nil, err
	}
	return feedback, nil
}
