package mock

import (
	"sync"

	"hashblog/app/models"
)

// PostRepository is an in-memory PostRepository that records lookups.
type PostRepository struct {
	posts   []*models.Post
	lookups []string
	mutex   sync.RWMutex
}

func NewPostRepository(posts ...*models.Post) *PostRepository {
	return &PostRepository{posts: posts}
}

func (m *PostRepository) All() []*models.Post {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	out := make([]*models.Post, len(m.posts))
	copy(out, m.posts)
	return out
}

func (m *PostRepository) FindBySlug(slug string) (*models.Post, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.lookups = append(m.lookups, slug)
	for _, post := range m.posts {
		if post.Slug == slug {
			return post, true
		}
	}
	return nil, false
}

// Lookups returns the slugs passed to FindBySlug, in call order.
func (m *PostRepository) Lookups() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	out := make([]string, len(m.lookups))
	copy(out, m.lookups)
	return out
}
