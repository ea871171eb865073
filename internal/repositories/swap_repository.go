package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/skill-swap/backend/internal/apperrors"
	"github.com/skill-swap/backend/internal/models"
	"gorm.io/gorm"
)

// SwapRepository defines the interface for swap request data operations
type SwapRepository interface {
	CreateSwap(swap *models.SwapRequest) error
	GetSwapByID(id string) (*models.SwapRequest, error)
	GetSwapsForUser(userID string) ([]models.SwapRequest, error)
	GetAllSwaps() ([]models.SwapRequest, error)
	UpdateSwapStatus(id, fromStatus, toStatus string) error
	DeleteSwapFromSender(id, senderID string) error
	DeleteSwap(id string) error
}

// PostgresSwapRepository implements SwapRepository for PostgreSQL
type PostgresSwapRepository struct {
	db *gorm.DB
}

// NewPostgresSwapRepository creates a new PostgresSwapRepository
func NewPostgresSwapRepository(db *gorm.DB) *PostgresSwapRepository {
	return &PostgresSwapRepository{db: db}
}

// CreateSwap persists a new pending swap request. The existence check and the
// insert run in one transaction; if two concurrent creates for the same pair
// both pass the check, the partial unique index on pair_key rejects the loser
// and the duplicate-key error is reported as the same conflict.
func (r *PostgresSwapRepository) CreateSwap(swap *models.SwapRequest) error {
	swap.ID = uuid.NewString()
	swap.PairKey = models.SwapPairKey(swap.FromUserID, swap.ToUserID)
	swap.Status = models.SwapStatusPending

	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.SwapRequest{}).
			Where("pair_key = ? AND status IN ?", swap.PairKey,
				[]string{models.SwapStatusPending, models.SwapStatusAccepted}).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("an active swap request already exists between these users: %w", apperrors.ErrConflict)
		}

		if err := tx.Create(swap).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("an active swap request already exists between these users: %w", apperrors.ErrConflict)
			}
			return err
		}
		return nil
	})
}

// GetSwapByID retrieves a swap request by ID
func (r *PostgresSwapRepository) GetSwapByID(id string) (*models.SwapRequest, error) {
	var swap models.SwapRequest
	if err := r.db.Where("id = ?", id).First(&swap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("swap request %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &swap, nil
}

// GetSwapsForUser retrieves all swap requests where the user is sender or
// recipient, newest first
func (r *PostgresSwapRepository) GetSwapsForUser(userID string) ([]models.SwapRequest, error) {
	var swaps []models.SwapRequest
	err := r.db.Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&swaps).Error
	if err != nil {
		return nil, err
	}
	return swaps, nil
}

// GetAllSwaps retrieves every swap request system-wide, newest first (admin
// surface)
func (r *PostgresSwapRepository) GetAllSwaps() ([]models.SwapRequest, error) {
	var swaps []models.SwapRequest
	if err := r.db.Order("created_at DESC").Find(&swaps).Error; err != nil {
		return nil, err
	}
	return swaps, nil
}

// UpdateSwapStatus moves a swap from one status to another. The current
// status is part of the WHERE clause, so a concurrent transition that got
// there first makes this one affect zero rows instead of clobbering it.
func (r *PostgresSwapRepository) UpdateSwapStatus(id, fromStatus, toStatus string) error {
	res := r.db.Model(&models.SwapRequest{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Update("status", toStatus)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.SwapRequest{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("swap request %s: %w", id, apperrors.ErrNotFound)
		}
		return fmt.Errorf("swap request is no longer %s: %w", fromStatus, apperrors.ErrInvalidTransition)
	}
	return nil
}

// DeleteSwapFromSender removes a swap request on behalf of its sender. The
// sender and pending-status rules are part of the WHERE clause, so an accept
// landing between the caller's read and this delete leaves the row alone.
func (r *PostgresSwapRepository) DeleteSwapFromSender(id, senderID string) error {
	res := r.db.Where("id = ? AND from_user_id = ? AND status = ?", id, senderID, models.SwapStatusPending).
		Delete(&models.SwapRequest{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.SwapRequest{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("swap request %s: %w", id, apperrors.ErrNotFound)
		}
		return fmt.Errorf("swap request is not a pending request from this user: %w", apperrors.ErrForbidden)
	}
	return nil
}

// DeleteSwap removes a swap request permanently (admin surface)
func (r *PostgresSwapRepository) DeleteSwap(id string) error {
	res := r.db.Where("id = ?", id).Delete(&models.SwapRequest{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("swap request %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
