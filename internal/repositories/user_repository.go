package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/skill-swap/backend/internal/apperrors"
	"github.com/skill-swap/backend/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetPublicUsers() ([]models.User, error)
	GetAllUsers() ([]models.User, error)
	GetUsersByIDs(ids []string) (map[string]models.User, error)
	UpdateProfile(user *models.User) error
	SetActive(id string, isActive bool) error
	SearchPublicUsers(query string) ([]models.User, error)
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// CreateUser creates a new user. A duplicate email surfaces as a conflict.
func (r *PostgresUserRepository) CreateUser(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("email already registered: %w", apperrors.ErrConflict)
		}
		return err
	}
	return nil
}

// GetUserByID retrieves a user by ID
func (r *PostgresUserRepository) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (r *PostgresUserRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", email, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

// GetPublicUsers retrieves all public, active users for browsing
func (r *PostgresUserRepository) GetPublicUsers() ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("is_public = ? AND is_active = ?", true, true).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetAllUsers retrieves every user, banned and private included (admin surface)
func (r *PostgresUserRepository) GetAllUsers() ([]models.User, error) {
	var users []models.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetUsersByIDs retrieves the given users keyed by id. Missing ids are simply
// absent from the result.
func (r *PostgresUserRepository) GetUsersByIDs(ids []string) (map[string]models.User, error) {
	var users []models.User
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID, nil
}

// UpdateProfile persists a user's editable profile fields. Only those columns
// are written; rating, reviews and credentials belong to other write paths, so
// a stale in-memory copy of the row cannot clobber a feedback submission that
// landed after it was read.
func (r *PostgresUserRepository) UpdateProfile(user *models.User) error {
	res := r.db.Model(&models.User{}).
		Where("id = ?", user.ID).
		Select("name", "profile_photo", "location", "skills_offered", "skills_wanted", "availability", "is_public").
		Updates(user)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user %s: %w", user.ID, apperrors.ErrNotFound)
	}
	return nil
}

// SetActive toggles a user's active flag (ban/unban)
func (r *PostgresUserRepository) SetActive(id string, isActive bool) error {
	res := r.db.Model(&models.User{}).Where("id = ?", id).Update("is_active", isActive)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// SearchPublicUsers searches public, active users by name, location or skill
// label (case-insensitive substring). Skill columns hold JSON arrays, so a
// substring match over the column text covers the labels.
func (r *PostgresUserRepository) SearchPublicUsers(query string) ([]models.User, error) {
	var users []models.User
	pattern := "%" + query + "%"
	err := r.db.Where("is_public = ? AND is_active = ?", true, true).
		Where(
			r.db.Where("LOWER(name) LIKE LOWER(?)", pattern).
				Or("LOWER(location) LIKE LOWER(?)", pattern).
				Or("LOWER(skills_offered) LIKE LOWER(?)", pattern).
				Or("LOWER(skills_wanted) LIKE LOWER(?)", pattern),
		).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
