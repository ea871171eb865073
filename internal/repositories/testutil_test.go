package repositories

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/skill-swap/backend/internal/models"
	"gorm.io/gorm"
)

// newTestDB opens an isolated in-memory database with the full schema.
// MaxOpenConns is pinned to 1 so the pool cannot hand out a second connection
// with its own empty :memory: database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("getting sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, repo UserRepository, name, email string) *models.User {
	t.Helper()

	user := &models.User{
		Name:          name,
		Email:         email,
		Password:      "hash",
		SkillsOffered: models.SkillList{},
		SkillsWanted:  models.SkillList{},
		Availability:  models.AvailabilityAny,
		IsPublic:      true,
		IsActive:      true,
	}
	if err := repo.CreateUser(user); err != nil {
		t.Fatalf("creating user %s: %v", email, err)
	}
	return user
}

func createTestSwap(t *testing.T, repo SwapRepository, fromID, toID string) *models.SwapRequest {
	t.Helper()

	swap := &models.SwapRequest{
		FromUserID:   fromID,
		ToUserID:     toID,
		OfferedSkill: models.SkillSnapshot{Name: "Go"},
		WantedSkill:  models.SkillSnapshot{Name: "Design"},
	}
	if err := repo.CreateSwap(swap); err != nil {
		t.Fatalf("creating swap: %v", err)
	}
	return swap
}
