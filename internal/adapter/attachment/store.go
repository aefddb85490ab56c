// Package attachment stores topic attachments on the local filesystem,
// one directory per topic keyed by normalized name. The core never reads
// attachment bytes back; the store only has to keep them addressable.
package attachment

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/heartmarshall/topicwiki-backend/internal/domain"
)

// Store keeps attachments under root/<topic>/<filename>.
type Store struct {
	root string
}

// NewStore creates a Store rooted at dir, creating it when missing.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create attachment root: %w", err)
	}
	return &Store{root: dir}, nil
}

// Save writes the blob, replacing any previous attachment with the same
// filename.
func (s *Store) Save(ctx context.Context, topicLCName, filename string, r io.Reader) error {
	dir, err := s.topicDir(topicLCName)
	if err != nil {
		return err
	}
	name, err := safeFilename(filename)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create topic dir: %w", err)
	}

	// Write to a temp file and rename, so a torn write never leaves a
	// half-written attachment under the real name.
	tmp, err := os.CreateTemp(dir, "."+name+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return fmt.Errorf("write attachment: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close attachment: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(dir, name)); err != nil {
		return fmt.Errorf("finalize attachment: %w", err)
	}
	return nil
}

// Delete removes an attachment. A missing file maps to
// domain.ErrNotFound.
func (s *Store) Delete(ctx context.Context, topicLCName, filename string) error {
	dir, err := s.topicDir(topicLCName)
	if err != nil {
		return err
	}
	name, err := safeFilename(filename)
	if err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(dir, name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("attachment %q: %w", filename, domain.ErrNotFound)
		}
		return fmt.Errorf("delete attachment: %w", err)
	}
	return nil
}

// List returns the topic's attachment filenames, sorted. A topic with no
// attachments yields an empty list, not an error.
func (s *Store) List(ctx context.Context, topicLCName string) ([]string, error) {
	dir, err := s.topicDir(topicLCName)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list attachments: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// topicDir maps a normalized topic name onto a directory under root,
// rejecting names that would escape it.
func (s *Store) topicDir(topicLCName string) (string, error) {
	if topicLCName == "" || strings.ContainsAny(topicLCName, `/\`) || strings.Contains(topicLCName, "..") {
		return "", domain.NewValidationError("topic", "invalid attachment key")
	}
	return filepath.Join(s.root, topicLCName), nil
}

func safeFilename(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return "", domain.NewValidationError("filename", "invalid attachment filename")
	}
	return filename, nil
}
