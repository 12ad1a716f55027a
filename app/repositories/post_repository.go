package repositories

import (
	"fmt"
	"io"

	"hashblog/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostSnapshot persists a content table in BadgerDB. It is only used
// at startup: Load reads the table once and the in-memory store serves
// every render afterwards.
type BadgerPostSnapshot struct {
	db *badger.DB
}

// NewBadgerPostSnapshot wraps an open Badger database.
func NewBadgerPostSnapshot(db *badger.DB) *BadgerPostSnapshot {
	return &BadgerPostSnapshot{db: db}
}

// OpenBadger opens the database at dir with quiet, single-writer options.
// An empty dir opens an in-memory database.
func OpenBadger(dir string) (*badger.DB, error) {
	opts := badger.DefaultOptions(dir).
		WithLogger(nil).
		WithNumVersionsToKeep(1)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger at %q: %w", dir, err)
	}
	return db, nil
}

// Seed replaces the stored table with posts, keeping their order.
func (s *BadgerPostSnapshot) Seed(posts []*models.Post) error {
	if err := s.db.DropPrefix([]byte(PostKeyPrefix), []byte(PostSeqKey)); err != nil {
		return fmt.Errorf("failed to clear posts: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		for _, post := range posts {
			seq, err := getNextID(txn, PostSeqKey)
			if err != nil {
				return err
			}
			data, err := marshalEntity(post)
			if err != nil {
				return err
			}
			if err := txn.Set(postKey(seq), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// Load returns every stored post in sequence order.
func (s *BadgerPostSnapshot) Load() ([]*models.Post, error) {
	posts := []*models.Post{}
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(PostKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var post models.Post
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal %s: %w", item.Key(), err)
			}
			posts = append(posts, &post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Get returns the post stored under the given sequence number.
func (s *BadgerPostSnapshot) Get(seq int) (*models.Post, error) {
	var post models.Post
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(seq))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Backup writes a full Badger backup of the snapshot to w.
func (s *BadgerPostSnapshot) Backup(w io.Writer) error {
	if _, err := s.db.Backup(w, 0); err != nil {
		return fmt.Errorf("failed to backup snapshot: %w", err)
	}
	return nil
}

// Restore loads a backup produced by Backup. Existing keys are
// overwritten; callers wanting an exact copy restore into an empty
// database.
func (s *BadgerPostSnapshot) Restore(r io.Reader) error {
	if err := s.db.Load(r, 16); err != nil {
		return fmt.Errorf("failed to restore snapshot: %w", err)
	}
	return nil
}

// ReplaceFromBackup stages a backup in an in-memory database and validates
// its posts before replacing the snapshot's table with them. A backup that
// fails validation leaves the snapshot untouched.
func (s *BadgerPostSnapshot) ReplaceFromBackup(r io.Reader) ([]*models.Post, error) {
	staging, err := OpenBadger("")
	if err != nil {
		return nil, err
	}
	defer staging.Close()

	if err := NewBadgerPostSnapshot(staging).Restore(r); err != nil {
		return nil, err
	}
	posts, err := NewBadgerPostSnapshot(staging).Load()
	if err != nil {
		return nil, err
	}
	if _, err := NewMemoryPostRepository(posts); err != nil {
		return nil, fmt.Errorf("backup rejected: %w", err)
	}
	if err := s.Seed(posts); err != nil {
		return nil, err
	}
	return posts, nil
}
