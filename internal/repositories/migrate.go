package repositories

import (
	"github.com/skill-swap/backend/internal/models"
	"gorm.io/gorm"
)

// Migrate runs the schema migrations for all persisted entities and creates
// the partial unique index enforcing the at-most-one-active-swap-per-pair
// invariant. A plain unique index on pair_key would block new requests after
// a swap completes, so the index only covers rows still in an active status.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.SwapRequest{},
		&models.Feedback{},
	); err != nil {
		return err
	}

	// Partial indexes use the same syntax on PostgreSQL and SQLite.
	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_swap_requests_active_pair
		ON swap_requests (pair_key)
		WHERE status IN ('pending', 'accepted')`).Error
}
