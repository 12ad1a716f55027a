package repositories

import (
	"os"
	"path/filepath"
	"testing"

	"hashblog/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	t.Run("defaults to samples", func(t *testing.T) {
		repo, err := Open(ContentOptions{}, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, repo.Len())
	})

	t.Run("content file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "posts.yaml")
		require.NoError(t, os.WriteFile(path, []byte(testContent), 0644))

		repo, err := Open(ContentOptions{File: path}, nil)
		require.NoError(t, err)
		_, ok := repo.FindBySlug("second")
		assert.True(t, ok)
	})

	t.Run("invalid content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "posts.yaml")
		dup := "posts:\n  - {id: 1, slug: a, title: A, date: \"2025-01-01\"}\n  - {id: 2, slug: a, title: B, date: \"2025-01-02\"}\n"
		require.NoError(t, os.WriteFile(path, []byte(dup), 0644))

		_, err := Open(ContentOptions{File: path}, nil)
		assert.ErrorIs(t, err, ErrDuplicateSlug)
	})

	t.Run("snapshot is seeded then preferred", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "badger")

		repo, err := Open(ContentOptions{BadgerDir: dir}, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, repo.Len())

		// The content file is ignored once the snapshot holds posts.
		path := filepath.Join(t.TempDir(), "posts.yaml")
		require.NoError(t, os.WriteFile(path, []byte(testContent), 0644))
		repo, err = Open(ContentOptions{BadgerDir: dir, File: path}, nil)
		require.NoError(t, err)
		_, ok := repo.FindBySlug("hello-world")
		assert.True(t, ok)
		_, ok = repo.FindBySlug("first")
		assert.False(t, ok)
	})

	t.Run("invalid content never reaches the snapshot", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "badger")
		path := filepath.Join(t.TempDir(), "posts.yaml")
		dup := "posts:\n  - {id: 1, slug: a, title: A, date: \"2025-01-01\"}\n  - {id: 2, slug: a, title: B, date: \"2025-01-02\"}\n"
		require.NoError(t, os.WriteFile(path, []byte(dup), 0644))

		_, err := Open(ContentOptions{BadgerDir: dir, File: path}, nil)
		require.ErrorIs(t, err, ErrDuplicateSlug)

		db, err := OpenBadger(dir)
		require.NoError(t, err)
		posts, err := NewBadgerPostSnapshot(db).Load()
		require.NoError(t, err)
		assert.Empty(t, posts)
		require.NoError(t, db.Close())

		// Fixing the file is enough for the next start.
		require.NoError(t, os.WriteFile(path, []byte(testContent), 0644))
		repo, err := Open(ContentOptions{BadgerDir: dir, File: path}, nil)
		require.NoError(t, err)
		_, ok := repo.FindBySlug("first")
		assert.True(t, ok)
	})

	t.Run("invalid snapshot is reported", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "badger")
		db, err := OpenBadger(dir)
		require.NoError(t, err)
		require.NoError(t, NewBadgerPostSnapshot(db).Seed([]*models.Post{
			{ID: 1, Slug: "a", Title: "A", Date: "2025-01-01"},
			{ID: 2, Slug: "a", Title: "B", Date: "2025-01-02"},
		}))
		require.NoError(t, db.Close())

		_, err = Open(ContentOptions{BadgerDir: dir}, nil)
		assert.ErrorIs(t, err, ErrDuplicateSlug)
		assert.ErrorContains(t, err, "invalid snapshot")
	})
}
