package repositories

import (
	"errors"
	"fmt"

	"hashblog/app/models"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicateSlug = errors.New("duplicate slug")
)

// MemoryPostRepository holds the posts in process memory for the lifetime of
// the process.
type MemoryPostRepository struct {
	posts []*models.Post
}

// NewMemoryPostRepository validates posts and builds a store that preserves
// their order. The slice is copied; callers must not mutate the records.
func NewMemoryPostRepository(posts []*models.Post) (*MemoryPostRepository, error) {
	seen := make(map[string]int, len(posts))
	stored := make([]*models.Post, 0, len(posts))
	for i, post := range posts {
		if post == nil {
			return nil, fmt.Errorf("post at index %d is nil", i)
		}
		if err := post.Validate(); err != nil {
			return nil, err
		}
		if prev, ok := seen[post.Slug]; ok {
			return nil, fmt.Errorf("%w: %q at index %d and %d", ErrDuplicateSlug, post.Slug, prev, i)
		}
		seen[post.Slug] = i
		stored = append(stored, post)
	}
	return &MemoryPostRepository{posts: stored}, nil
}

// All returns the posts in store order.
func (r *MemoryPostRepository) All() []*models.Post {
	out := make([]*models.Post, len(r.posts))
	copy(out, r.posts)
	return out
}

// FindBySlug scans the store and returns the first match.
func (r *MemoryPostRepository) FindBySlug(slug string) (*models.Post, bool) {
	for _, post := range r.posts {
		if post.Slug == slug {
			return post, true
		}
	}
	return nil, false
}

// Len reports the number of stored posts.
func (r *MemoryPostRepository) Len() int {
	return len(r.posts)
}
