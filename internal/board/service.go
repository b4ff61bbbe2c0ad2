package board

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/anasreg/supporter-hub/backend/internal/feed"
	"github.com/anasreg/supporter-hub/backend/internal/identity"
	"github.com/anasreg/supporter-hub/backend/internal/models"
	"github.com/anasreg/supporter-hub/backend/internal/repositories"
)

// Service orchestrates board mutations: it resolves the acting identity,
// validates input before any storage call, applies the ownership gate,
// invalidates the feed cache on success and reports the outcome through
// the Notifier. Storage failures leave the actor's draft untouched so the
// caller can retry.
type Service struct {
	posts    repositories.PostRepository
	comments repositories.CommentRepository
	drafts   repositories.DraftRepository
	resolver *identity.Resolver
	notifier Notifier

	cache feedCache

	// In-flight mutation counters, one per mutation kind
	pendingShare   atomic.Int64
	pendingDelete  atomic.Int64
	pendingReact   atomic.Int64
	pendingComment atomic.Int64
}

// NewService creates a new board Service
func NewService(
	posts repositories.PostRepository,
	comments repositories.CommentRepository,
	drafts repositories.DraftRepository,
	resolver *identity.Resolver,
	notifier Notifier,
) *Service {
	return &Service{
		posts:    posts,
		comments: comments,
		drafts:   drafts,
		resolver: resolver,
		notifier: notifier,
	}
}

// ListFeed returns the assembled feed: every post newest first with its
// comments attached. Served from the cache until a mutation invalidates it.
func (s *Service) ListFeed(ctx context.Context) ([]models.Post, error) {
	if posts, ok := s.cache.get(); ok {
		return posts, nil
	}

	posts, err := s.posts.GetAllPosts(ctx)
	if err != nil {
		return nil, &RepositoryError{Op: "list posts", Err: err}
	}

	postIDs := make([]string, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID.Hex())
	}
	grouped, err := s.comments.GetCommentsByPostIDs(postIDs)
	if err != nil {
		return nil, &RepositoryError{Op: "list comments", Err: err}
	}
	for i := range posts {
		posts[i].ChatComments = grouped[posts[i].ID.Hex()]
	}

	s.cache.set(posts)
	return posts, nil
}

// Share publishes the request as a new post, or saves it onto the post the
// actor's draft is editing. The returned token is non-empty when a fresh
// guest identity was minted for the caller.
func (s *Service) Share(ctx context.Context, actor identity.Actor, req models.SharePostRequest) (string, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return "", &ValidationError{Message: "Le titre et le contenu sont requis"}
	}
	if err := validateImage(req.ImageURL); err != nil {
		s.notifier.Error(err.Error())
		return "", err
	}

	done := track(&s.pendingShare)
	defer done()

	ident, token, err := s.resolver.Resolve(actor)
	if err != nil {
		return "", err
	}

	editTarget, err := s.editTarget(actor)
	if err != nil {
		return "", err
	}

	if editTarget != "" {
		if err := s.saveEdit(ctx, ident, editTarget, req); err != nil {
			return "", err
		}
	} else {
		post := &models.Post{
			Title:    req.Title,
			Content:  req.Content,
			ImageURL: req.ImageURL,
			UserName: ident.DisplayName,
			UserID:   ident.UserID,
		}
		if err := s.posts.CreatePost(ctx, post); err != nil {
			return "", s.repoErr("create post", err)
		}
	}

	if key := actor.Key(); key != "" {
		if err := s.drafts.ClearDraft(key); err != nil {
			return "", s.repoErr("clear draft", err)
		}
	}
	s.cache.invalidate()
	if editTarget != "" {
		s.notifier.Success("Post modifié avec succès !")
	} else {
		s.notifier.Success("Post publié avec succès !")
	}
	return token, nil
}

// editTarget returns the post ID the actor's draft is editing, if any
func (s *Service) editTarget(actor identity.Actor) (string, error) {
	key := actor.Key()
	if key == "" {
		return "", nil
	}
	draft, err := s.drafts.GetDraftByActor(key)
	if errors.Is(err, repositories.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", s.repoErr("load draft", err)
	}
	if draft.EditingPostID == nil {
		return "", nil
	}
	return *draft.EditingPostID, nil
}

// saveEdit applies the request onto an existing post after the ownership
// gate passes. Counters and attribution are left alone.
func (s *Service) saveEdit(ctx context.Context, ident identity.Identity, postID string, req models.SharePostRequest) error {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return err
		}
		return s.repoErr("load post", err)
	}
	if !feed.CanModify(post.UserID, ident.UserID) {
		return ErrForbidden
	}

	post.Title = req.Title
	post.Content = req.Content
	post.ImageURL = req.ImageURL
	if err := s.posts.UpdatePost(ctx, postID, post); err != nil {
		return s.repoErr("update post", err)
	}
	return nil
}

// BeginEdit puts the actor's composer into editing state, pre-filled from
// the target post. An actor has a single editing slot: starting a new edit
// while one is open silently replaces the target.
func (s *Service) BeginEdit(ctx context.Context, actor identity.Actor, postID string) (*models.Draft, error) {
	key := actor.Key()
	if key == "" {
		return nil, ErrUnknownActor
	}

	ident, _, err := s.resolver.Resolve(actor)
	if err != nil {
		return nil, err
	}

	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
		return nil, s.repoErr("load post", err)
	}
	if !feed.CanModify(post.UserID, ident.UserID) {
		return nil, ErrForbidden
	}

	draft := &models.Draft{
		ActorKey:      key,
		EditingPostID: &postID,
		Title:         post.Title,
		Content:       post.Content,
		ImageURL:      post.ImageURL,
	}
	if err := s.drafts.SaveDraft(draft); err != nil {
		return nil, s.repoErr("save draft", err)
	}
	return draft, nil
}

// CancelEdit returns the actor's composer to idle, dropping the draft
func (s *Service) CancelEdit(actor identity.Actor) error {
	key := actor.Key()
	if key == "" {
		return ErrUnknownActor
	}
	if err := s.drafts.ClearDraft(key); err != nil {
		return s.repoErr("clear draft", err)
	}
	return nil
}

// Delete hard-deletes a post and its comments after the ownership gate
func (s *Service) Delete(ctx context.Context, actor identity.Actor, postID string) error {
	done := track(&s.pendingDelete)
	defer done()

	ident, _, err := s.resolver.Resolve(actor)
	if err != nil {
		return err
	}

	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return err
		}
		return s.repoErr("load post", err)
	}
	if !feed.CanModify(post.UserID, ident.UserID) {
		return ErrForbidden
	}

	if err := s.posts.DeletePost(ctx, postID); err != nil {
		return s.repoErr("delete post", err)
	}
	if err := s.comments.DeleteCommentsByPostID(postID); err != nil {
		return s.repoErr("delete comments", err)
	}

	s.cache.invalidate()
	s.notifier.Success("Post supprimé")
	return nil
}

// React bumps one reaction counter on a post. The bump is atomic at the
// storage layer, so concurrent reactions all count.
func (s *Service) React(ctx context.Context, postID string, kind string) error {
	done := track(&s.pendingReact)
	defer done()

	if err := s.posts.IncrementReaction(ctx, postID, kind); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return err
		}
		return &RepositoryError{Op: "react", Err: err}
	}

	s.cache.invalidate()
	return nil
}

// AddComment attaches a reply to a post. The returned token is non-empty
// when a fresh guest identity was minted for the caller.
func (s *Service) AddComment(ctx context.Context, actor identity.Actor, postID string, req models.CreateCommentRequest) (string, error) {
	if strings.TrimSpace(req.Content) == "" {
		return "", &ValidationError{Message: "Le commentaire est requis"}
	}

	done := track(&s.pendingComment)
	defer done()

	ident, token, err := s.resolver.Resolve(actor)
	if err != nil {
		return "", err
	}

	if _, err := s.posts.GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", err
		}
		return "", s.repoErr("load post", err)
	}

	comment := &models.Comment{
		PostID:   postID,
		Content:  req.Content,
		UserName: ident.DisplayName,
		UserID:   ident.UserID,
	}
	if err := s.comments.CreateComment(comment); err != nil {
		return "", s.repoErr("create comment", err)
	}

	s.cache.invalidate()
	return token, nil
}

// Pending reports the number of in-flight mutations per kind
func (s *Service) Pending() map[string]int64 {
	return map[string]int64{
		"share":   s.pendingShare.Load(),
		"delete":  s.pendingDelete.Load(),
		"react":   s.pendingReact.Load(),
		"comment": s.pendingComment.Load(),
	}
}

// repoErr surfaces a storage failure through the notifier, passing the
// backend message through verbatim, and wraps it for the transport layer.
func (s *Service) repoErr(op string, err error) error {
	s.notifier.Error("Erreur : " + err.Error())
	return &RepositoryError{Op: op, Err: err}
}

func track(counter *atomic.Int64) func() {
	counter.Add(1)
	return func() { counter.Add(-1) }
}
