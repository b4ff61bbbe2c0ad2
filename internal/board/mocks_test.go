package board

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/anasreg/supporter-hub/backend/internal/models"
	"github.com/anasreg/supporter-hub/backend/internal/repositories"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mockPostRepo mirrors the semantics of the Mongo post repository
type mockPostRepo struct {
	posts       map[string]*models.Post
	seq         int
	createCalls int
	updateErr   error
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: make(map[string]*models.Post)}
}

func (m *mockPostRepo) nextTime() time.Time {
	m.seq++
	return time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC).Add(time.Duration(m.seq) * time.Second)
}

func (m *mockPostRepo) CreatePost(ctx context.Context, post *models.Post) error {
	m.createCalls++
	post.ID = primitive.NewObjectID()
	post.Likes = 0
	post.Dislikes = 0
	post.CreatedAt = m.nextTime()
	post.UpdatedAt = post.CreatedAt
	copied := *post
	m.posts[post.ID.Hex()] = &copied
	return nil
}

func (m *mockPostRepo) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	copied := *post
	return &copied, nil
}

func (m *mockPostRepo) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	posts := make([]models.Post, 0, len(m.posts))
	for _, post := range m.posts {
		posts = append(posts, *post)
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (m *mockPostRepo) UpdatePost(ctx context.Context, id string, post *models.Post) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	existing, exists := m.posts[id]
	if !exists {
		return repositories.ErrNotFound
	}
	existing.Title = post.Title
	existing.Content = post.Content
	existing.ImageURL = post.ImageURL
	existing.UpdatedAt = m.nextTime()
	return nil
}

func (m *mockPostRepo) DeletePost(ctx context.Context, id string) error {
	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *mockPostRepo) IncrementReaction(ctx context.Context, id string, kind string) error {
	post, exists := m.posts[id]
	if !exists {
		return repositories.ErrNotFound
	}
	switch kind {
	case models.ReactionLikes:
		post.Likes++
	case models.ReactionDislikes:
		post.Dislikes++
	default:
		return fmt.Errorf("unknown reaction kind %q", kind)
	}
	return nil
}

// mockCommentRepo mirrors the semantics of the Postgres comment repository
type mockCommentRepo struct {
	comments []models.Comment
	seq      int
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{}
}

func (m *mockCommentRepo) CreateComment(comment *models.Comment) error {
	m.seq++
	comment.ID = uuid.NewString()
	comment.CreatedAt = time.Date(2026, time.January, 10, 10, 0, 0, 0, time.UTC).Add(time.Duration(m.seq) * time.Second)
	m.comments = append(m.comments, *comment)
	return nil
}

func (m *mockCommentRepo) GetCommentsByPostID(postID string) ([]models.Comment, error) {
	grouped, err := m.GetCommentsByPostIDs([]string{postID})
	if err != nil {
		return nil, err
	}
	return grouped[postID], nil
}

func (m *mockCommentRepo) GetCommentsByPostIDs(postIDs []string) (map[string][]models.Comment, error) {
	wanted := make(map[string]bool, len(postIDs))
	for _, id := range postIDs {
		wanted[id] = true
	}
	grouped := make(map[string][]models.Comment)
	for _, comment := range m.comments {
		if wanted[comment.PostID] {
			grouped[comment.PostID] = append(grouped[comment.PostID], comment)
		}
	}
	for _, comments := range grouped {
		sort.Slice(comments, func(i, j int) bool {
			return comments[i].CreatedAt.Before(comments[j].CreatedAt)
		})
	}
	return grouped, nil
}

func (m *mockCommentRepo) DeleteCommentsByPostID(postID string) error {
	kept := m.comments[:0]
	for _, comment := range m.comments {
		if comment.PostID != postID {
			kept = append(kept, comment)
		}
	}
	m.comments = kept
	return nil
}

// mockDraftRepo mirrors the semantics of the Postgres draft repository
type mockDraftRepo struct {
	drafts map[string]*models.Draft
}

func newMockDraftRepo() *mockDraftRepo {
	return &mockDraftRepo{drafts: make(map[string]*models.Draft)}
}

func (m *mockDraftRepo) GetDraftByActor(actorKey string) (*models.Draft, error) {
	draft, exists := m.drafts[actorKey]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	copied := *draft
	return &copied, nil
}

func (m *mockDraftRepo) SaveDraft(draft *models.Draft) error {
	if draft.ID == "" {
		draft.ID = uuid.NewString()
	}
	copied := *draft
	m.drafts[draft.ActorKey] = &copied
	return nil
}

func (m *mockDraftRepo) ClearDraft(actorKey string) error {
	delete(m.drafts, actorKey)
	return nil
}

// mockProfileRepo backs the resolver in service tests
type mockProfileRepo struct {
	profiles map[string]*models.Profile
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{profiles: make(map[string]*models.Profile)}
}

func (m *mockProfileRepo) GetProfileByUserID(userID string) (*models.Profile, error) {
	profile, exists := m.profiles[userID]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return profile, nil
}

func (m *mockProfileRepo) UpsertProfile(profile *models.Profile) error {
	m.profiles[profile.UserID] = profile
	return nil
}

// recordingNotifier captures notifications for assertions
type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) {
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Error(message string) {
	n.errors = append(n.errors, message)
}
