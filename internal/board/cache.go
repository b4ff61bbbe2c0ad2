package board

import (
	"sync"

	"github.com/anasreg/supporter-hub/backend/internal/models"
)

// feedCache holds the assembled feed under a single key. Every successful
// mutation invalidates it; the next read refetches. There is no partial or
// optimistic patching, so near-simultaneous mutations converge on one
// consistent refetch.
type feedCache struct {
	mu    sync.Mutex
	valid bool
	posts []models.Post
}

func (c *feedCache) get() ([]models.Post, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid {
		return nil, false
	}
	return c.posts, true
}

func (c *feedCache) set(posts []models.Post) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.posts = posts
	c.valid = true
}

func (c *feedCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.posts = nil
	c.valid = false
}
