package repositories

import (
	"github.com/anasreg/supporter-hub/backend/internal/models"
	"gorm.io/gorm"
)

// ProfileRepository defines the interface for profile data operations
type ProfileRepository interface {
	GetProfileByUserID(userID string) (*models.Profile, error)
	UpsertProfile(profile *models.Profile) error
}

// PostgresProfileRepository implements ProfileRepository for PostgreSQL
type PostgresProfileRepository struct {
	db *gorm.DB
}

// NewPostgresProfileRepository creates a new PostgresProfileRepository
func NewPostgresProfileRepository(db *gorm.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

// GetProfileByUserID retrieves a profile by Firebase UID
func (r *PostgresProfileRepository) GetProfileByUserID(userID string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// UpsertProfile creates the caller's profile or updates its full name
func (r *PostgresProfileRepository) UpsertProfile(profile *models.Profile) error {
	var existing models.Profile
	err := r.db.Where("user_id = ?", profile.UserID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.Create(profile).Error
	}
	if err != nil {
		return err
	}
	existing.FullName = profile.FullName
	return r.db.Save(&existing).Error
}
