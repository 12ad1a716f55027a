package repositories

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"hashblog/app/models"
)

// contentFile is the on-disk layout of a content file:
//
//	posts:
//	  - id: 1
//	    slug: hello-world
//	    title: Hello World
//	    date: "2025-11-01"
//	    excerpt: ...
//	    content: ...
type contentFile struct {
	Posts []*models.Post `yaml:"posts"`
}

// LoadPostsFile reads posts from a YAML content file.
func LoadPostsFile(path string) ([]*models.Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	posts, err := DecodePosts(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return posts, nil
}

// DecodePosts decodes a YAML content document. Unknown keys are rejected so
// typos in field names surface at startup.
func DecodePosts(r io.Reader) ([]*models.Post, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc contentFile
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return []*models.Post{}, nil
		}
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}
	if doc.Posts == nil {
		return []*models.Post{}, nil
	}
	return doc.Posts, nil
}

// EncodePosts writes posts in the content file layout.
func EncodePosts(w io.Writer, posts []*models.Post) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(contentFile{Posts: posts}); err != nil {
		return fmt.Errorf("failed to encode posts: %w", err)
	}
	return enc.Close()
}
