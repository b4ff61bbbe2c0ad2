package repositories

import (
	"time"

	"github.com/anasreg/supporter-hub/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DraftRepository defines the interface for composer draft operations
type DraftRepository interface {
	GetDraftByActor(actorKey string) (*models.Draft, error)
	SaveDraft(draft *models.Draft) error
	ClearDraft(actorKey string) error
}

// PostgresDraftRepository implements DraftRepository for PostgreSQL
type PostgresDraftRepository struct {
	db *gorm.DB
}

// NewPostgresDraftRepository creates a new PostgresDraftRepository
func NewPostgresDraftRepository(db *gorm.DB) *PostgresDraftRepository {
	return &PostgresDraftRepository{db: db}
}

// GetDraftByActor retrieves the draft of one actor
func (r *PostgresDraftRepository) GetDraftByActor(actorKey string) (*models.Draft, error) {
	var draft models.Draft
	if err := r.db.Where("actor_key = ?", actorKey).First(&draft).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &draft, nil
}

// SaveDraft creates or replaces the actor's draft. An actor has at most one
// draft row, so saving while one exists overwrites it.
func (r *PostgresDraftRepository) SaveDraft(draft *models.Draft) error {
	draft.UpdatedAt = time.Now()

	var existing models.Draft
	err := r.db.Where("actor_key = ?", draft.ActorKey).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		draft.ID = uuid.NewString()
		return r.db.Create(draft).Error
	}
	if err != nil {
		return err
	}
	draft.ID = existing.ID
	return r.db.Save(draft).Error
}

// ClearDraft removes the actor's draft, if any
func (r *PostgresDraftRepository) ClearDraft(actorKey string) error {
	return r.db.Where("actor_key = ?", actorKey).Delete(&models.Draft{}).Error
}
