package repositories

import "hashblog/app/models"

// PostRepository is the read-only content store. Its contents are fixed when
// it is constructed.
type PostRepository interface {
	// All returns every post in store order.
	All() []*models.Post
	// FindBySlug returns the first post whose slug equals slug.
	FindBySlug(slug string) (*models.Post, bool)
}
