package repositories

import (
	"fmt"

	"go.uber.org/zap"

	"hashblog/app/models"
)

// ContentOptions selects where the post table comes from at startup.
type ContentOptions struct {
	// File is a YAML content file. Empty means the built-in sample posts.
	File string
	// BadgerDir, when set, is a Badger snapshot that takes precedence over
	// File. An empty snapshot is seeded from File (or the samples) first.
	BadgerDir string
}

// Open resolves the configured content source once and returns the
// in-memory store built from it. Content is validated before it is written
// to an empty snapshot, so a bad file never reaches Badger.
func Open(opts ContentOptions, logger *zap.Logger) (*MemoryPostRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var (
		repo *MemoryPostRepository
		err  error
	)
	if opts.BadgerDir == "" {
		repo, err = openInitial(opts.File, logger)
	} else {
		repo, err = openSnapshot(opts, logger)
	}
	if err != nil {
		return nil, err
	}
	logger.Info("content store ready", zap.Int("posts", repo.Len()))
	return repo, nil
}

func openSnapshot(opts ContentOptions, logger *zap.Logger) (*MemoryPostRepository, error) {
	db, err := OpenBadger(opts.BadgerDir)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	snapshot := NewBadgerPostSnapshot(db)
	posts, err := snapshot.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	if len(posts) > 0 {
		repo, err := NewMemoryPostRepository(posts)
		if err != nil {
			return nil, fmt.Errorf("invalid snapshot at %q: %w", opts.BadgerDir, err)
		}
		logger.Debug("loaded posts from snapshot",
			zap.String("dir", opts.BadgerDir),
			zap.Int("posts", len(posts)))
		return repo, nil
	}

	repo, err := openInitial(opts.File, logger)
	if err != nil {
		return nil, err
	}
	if err := snapshot.Seed(repo.All()); err != nil {
		return nil, fmt.Errorf("failed to seed snapshot: %w", err)
	}
	logger.Info("seeded empty snapshot",
		zap.String("dir", opts.BadgerDir),
		zap.Int("posts", repo.Len()))
	return repo, nil
}

func openInitial(file string, logger *zap.Logger) (*MemoryPostRepository, error) {
	posts, err := loadInitial(file, logger)
	if err != nil {
		return nil, err
	}
	repo, err := NewMemoryPostRepository(posts)
	if err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	return repo, nil
}

func loadInitial(file string, logger *zap.Logger) ([]*models.Post, error) {
	if file == "" {
		logger.Debug("using built-in sample posts")
		return SamplePosts(), nil
	}
	posts, err := LoadPostsFile(file)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded content file", zap.String("file", file), zap.Int("posts", len(posts)))
	return posts, nil
}
