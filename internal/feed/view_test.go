package feed

import (
	"testing"
	"time"

	"github.com/anasreg/supporter-hub/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strPtr(s string) *string { return &s }

func TestSortCommentsIsAscendingRegardlessOfFetchOrder(t *testing.T) {
	base := time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC)
	comments := []models.Comment{
		{ID: "c3", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "c1", CreatedAt: base},
		{ID: "c2", CreatedAt: base.Add(time.Hour)},
	}

	SortComments(comments)

	for i := 1; i < len(comments); i++ {
		assert.False(t, comments[i].CreatedAt.Before(comments[i-1].CreatedAt))
	}
	assert.Equal(t, "c1", comments[0].ID)
	assert.Equal(t, "c3", comments[2].ID)
}

func TestCanModify(t *testing.T) {
	owner := strPtr("uid-owner")
	other := strPtr("uid-other")

	// Owned content: only the owner passes
	assert.True(t, CanModify(owner, owner))
	assert.False(t, CanModify(owner, other))
	assert.False(t, CanModify(owner, nil))

	// Guest-authored content is open to everyone
	assert.True(t, CanModify(nil, owner))
	assert.True(t, CanModify(nil, nil))
}

func TestBuildView(t *testing.T) {
	now := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
	ownerID := strPtr("uid-1")

	postID := primitive.NewObjectID()
	posts := []models.Post{
		{
			ID:        postID,
			Title:     "Tactique du match",
			Content:   "Analyse",
			UserName:  "Karim Benz",
			UserID:    ownerID,
			Likes:     3,
			Dislikes:  1,
			CreatedAt: now.Add(-3 * time.Hour),
			ChatComments: []models.Comment{
				{ID: "c2", Content: "deux", CreatedAt: now.Add(-time.Hour)},
				{ID: "c1", Content: "un", CreatedAt: now.Add(-2 * time.Hour)},
			},
		},
	}

	views := BuildView(posts, ownerID, now)
	assert.Len(t, views, 1)

	view := views[0]
	assert.Equal(t, postID.Hex(), view.ID)
	assert.Equal(t, 2, view.CommentCount)
	assert.True(t, view.CanModify)
	assert.Equal(t, "il y a 3 heures", view.TimeLabel)

	// Comments come out oldest first even though they arrived newest first
	assert.Equal(t, "c1", view.ChatComments[0].ID)
	assert.Equal(t, "c2", view.ChatComments[1].ID)

	// A different actor cannot modify the owned post
	otherViews := BuildView(posts, strPtr("uid-2"), now)
	assert.False(t, otherViews[0].CanModify)
}

func TestBuildStats(t *testing.T) {
	actorID := strPtr("uid-1")
	posts := []models.Post{
		{ID: primitive.NewObjectID(), UserID: actorID, Likes: 3},
		{ID: primitive.NewObjectID(), UserID: actorID, Likes: 2},
		{ID: primitive.NewObjectID(), UserID: strPtr("uid-2"), Likes: 9},
		{ID: primitive.NewObjectID(), UserID: nil, Likes: 4},
	}

	stats := BuildStats(posts, actorID)
	assert.Equal(t, 2, stats.Publications)
	assert.Equal(t, 50, stats.ImpactScore)

	// Guests have no owned posts
	assert.Equal(t, ActorStats{}, BuildStats(posts, nil))
}
