package repositories

import (
	"time"

	"github.com/anasreg/supporter-hub/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentsByPostID(postID string) ([]models.Comment, error)
	GetCommentsByPostIDs(postIDs []string) (map[string][]models.Comment, error)
	DeleteCommentsByPostID(postID string) error
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// CreateComment creates a new comment
func (r *PostgresCommentRepository) CreateComment(comment *models.Comment) error {
	comment.ID = uuid.NewString()
	comment.CreatedAt = time.Now()
	return r.db.Create(comment).Error
}

// GetCommentsByPostID retrieves the comments of one post, oldest first
func (r *PostgresCommentRepository) GetCommentsByPostID(postID string) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Where("post_id = ?", postID).Order("created_at asc").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// GetCommentsByPostIDs retrieves the comments of many posts in one query,
// grouped by post ID. Used by feed assembly.
func (r *PostgresCommentRepository) GetCommentsByPostIDs(postIDs []string) (map[string][]models.Comment, error) {
	grouped := make(map[string][]models.Comment, len(postIDs))
	if len(postIDs) == 0 {
		return grouped, nil
	}

	var comments []models.Comment
	if err := r.db.Where("post_id IN ?", postIDs).Order("created_at asc").Find(&comments).Error; err != nil {
		return nil, err
	}
	for _, comment := range comments {
		grouped[comment.PostID] = append(grouped[comment.PostID], comment)
	}
	return grouped, nil
}

// DeleteCommentsByPostID removes every comment of a post. Called when the
// post itself is deleted so no comment outlives its post.
func (r *PostgresCommentRepository) DeleteCommentsByPostID(postID string) error {
	return r.db.Where("post_id = ?", postID).Delete(&models.Comment{}).Error
}
