package feed

import (
	"sort"
	"time"

	"github.com/anasreg/supporter-hub/backend/internal/models"
)

// CommentView is the rendered form of a comment
type CommentView struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	UserName  string    `json:"user_name"`
	UserID    *string   `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	TimeLabel string    `json:"time_label"`
}

// PostView is the rendered form of a post with its comments attached
type PostView struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Content      string        `json:"content"`
	ImageURL     string        `json:"image_url,omitempty"`
	UserName     string        `json:"user_name"`
	UserID       *string       `json:"user_id"`
	Likes        int           `json:"likes"`
	Dislikes     int           `json:"dislikes"`
	CreatedAt    time.Time     `json:"created_at"`
	TimeLabel    string        `json:"time_label"`
	CommentCount int           `json:"comment_count"`
	CanModify    bool          `json:"can_modify"`
	ChatComments []CommentView `json:"chat_comments"`
}

// ActorStats are the per-actor feed aggregates shown in the sidebar
type ActorStats struct {
	Publications int `json:"publications"`
	ImpactScore  int `json:"impact_score"`
}

// CanModify is the ownership gate: an actor may edit or delete an entity
// when its owner matches the actor's authenticated ID, or when the entity
// has no owner at all. Guest-authored content is deliberately open to
// everyone; see DESIGN.md.
func CanModify(ownerID, actorID *string) bool {
	if ownerID == nil {
		return true
	}
	return actorID != nil && *actorID == *ownerID
}

// SortComments orders comments oldest first, independent of fetch order
func SortComments(comments []models.Comment) {
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
}

// BuildView derives the display feed for one actor from assembled posts.
// Posts arrive newest first from the repository and keep that order;
// per-post comments are re-sorted oldest first.
func BuildView(posts []models.Post, actorID *string, now time.Time) []PostView {
	views := make([]PostView, 0, len(posts))
	for _, post := range posts {
		comments := make([]models.Comment, len(post.ChatComments))
		copy(comments, post.ChatComments)
		SortComments(comments)

		commentViews := make([]CommentView, 0, len(comments))
		for _, comment := range comments {
			commentViews = append(commentViews, CommentView{
				ID:        comment.ID,
				Content:   comment.Content,
				UserName:  comment.UserName,
				UserID:    comment.UserID,
				CreatedAt: comment.CreatedAt,
				TimeLabel: FormatTimestamp(comment.CreatedAt, now),
			})
		}

		views = append(views, PostView{
			ID:           post.ID.Hex(),
			Title:        post.Title,
			Content:      post.Content,
			ImageURL:     post.ImageURL,
			UserName:     post.UserName,
			UserID:       post.UserID,
			Likes:        post.Likes,
			Dislikes:     post.Dislikes,
			CreatedAt:    post.CreatedAt,
			TimeLabel:    FormatTimestamp(post.CreatedAt, now),
			CommentCount: len(commentViews),
			CanModify:    CanModify(post.UserID, actorID),
			ChatComments: commentViews,
		})
	}
	return views
}

// BuildStats derives the sidebar aggregates for one actor: publication
// count and impact score (ten points per like received). Guests always see
// zeroes since their posts carry no owner.
func BuildStats(posts []models.Post, actorID *string) ActorStats {
	var stats ActorStats
	if actorID == nil {
		return stats
	}
	for _, post := range posts {
		if post.UserID != nil && *post.UserID == *actorID {
			stats.Publications++
			stats.ImpactScore += post.Likes * 10
		}
	}
	return stats
}
