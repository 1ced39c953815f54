package recipe

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers/logging"
	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers/registry"
)

// ErrNameCollision is returned by Save when a recipe's file name is already
// taken by a differently named recipe, e.g. "a b" and "a_b".
var ErrNameCollision = errors.New("recipe: file name already used by another recipe")

// Store keeps recipes in memory and, when dir is set, mirrors them to one
// file per recipe.
type Store struct {
	dir    string
	format Format
	reg    *registry.Registry
	logger logging.Logger

	mu      sync.RWMutex
	recipes map[string]*Recipe
	// paths holds the file backing each persisted recipe. Loaded recipes keep
	// the file they came from, whatever its format.
	paths map[string]string
}

// NewStore returns a store persisting to dir in format. An empty dir keeps
// recipes in memory only. Recipes are validated against reg before saving.
func NewStore(dir string, format Format, reg *registry.Registry, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.Discard()
	}
	if format == "" {
		format = FormatJSON
	}
	return &Store{
		dir:     dir,
		format:  format,
		reg:     reg,
		logger:  logger,
		recipes: make(map[string]*Recipe),
		paths:   make(map[string]string),
	}
}

// Save validates and stores rc, stamping its timestamps. The recipe becomes
// visible to Get only once its file has been written.
func (s *Store) Save(ctx context.Context, rc *Recipe) error {
	if err := rc.Validate(s.reg); err != nil {
		return fmt.Errorf("invalid recipe: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stamped := *rc
	ts := now()
	if stamped.CreatedAt == "" {
		stamped.CreatedAt = ts
	}
	stamped.UpdatedAt = ts

	if s.dir != "" {
		path, err := s.pathFor(stamped.Name)
		if err != nil {
			return err
		}
		if err := persist(&stamped, path, s.dir); err != nil {
			return err
		}
		s.paths[stamped.Name] = path
	}

	rc.CreatedAt, rc.UpdatedAt = stamped.CreatedAt, stamped.UpdatedAt
	s.recipes[rc.Name] = rc
	s.logger.Info(ctx, "recipe saved", "name", rc.Name, "steps", len(rc.Pipeline.Steps))
	return nil
}

// Get returns the recipe called name.
func (s *Store) Get(name string) (*Recipe, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rc, ok := s.recipes[name]
	return rc, ok
}

// List returns all recipes sorted by name.
func (s *Store) List() []*Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Recipe, 0, len(s.recipes))
	for _, rc := range s.recipes {
		out = append(out, rc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Search returns recipes whose name, description or a tag contains query,
// ignoring case.
func (s *Store) Search(query string) []*Recipe {
	q := strings.ToLower(query)
	var out []*Recipe
	for _, rc := range s.List() {
		if strings.Contains(strings.ToLower(rc.Name), q) ||
			strings.Contains(strings.ToLower(rc.Description), q) {
			out = append(out, rc)
			continue
		}
		for _, tag := range rc.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				out = append(out, rc)
				break
			}
		}
	}
	return out
}

// Delete removes a recipe and the file it was loaded from or saved to.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, persisted := s.paths[name]
	if persisted {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("delete recipe file: %w", err)
		}
	}
	delete(s.recipes, name)
	delete(s.paths, name)
	s.logger.Info(ctx, "recipe deleted", "name", name)
	return nil
}

// Load reads every .json, .yaml and .yml file in the store directory.
// Malformed or invalid recipes are skipped with a warning.
func (s *Store) Load(ctx context.Context) error {
	if s.dir == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("create recipes directory: %w", err)
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("read recipes directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		format, err := FormatOf(entry.Name())
		if err != nil {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		data, err := os.ReadFile(path) // #nosec G304 -- path is inside the store directory
		if err != nil {
			return fmt.Errorf("read recipe %s: %w", entry.Name(), err)
		}
		rc, err := Decode(data, format)
		if err == nil {
			err = rc.Validate(s.reg)
		}
		if err != nil {
			s.logger.Warn(ctx, "skipping recipe", "file", entry.Name(), "error", err)
			continue
		}
		s.recipes[rc.Name] = rc
		s.paths[rc.Name] = path
	}
	return nil
}

// pathFor returns the file backing name, or a fresh path in the store's
// format when name has never been persisted.
func (s *Store) pathFor(name string) (string, error) {
	if path, ok := s.paths[name]; ok {
		return path, nil
	}
	path := filepath.Join(s.dir, sanitizeFilename(name)+"."+string(s.format))
	for other, used := range s.paths {
		if used == path {
			return "", fmt.Errorf("%w: %q and %q both map to %s", ErrNameCollision, name, other, filepath.Base(path))
		}
	}
	return path, nil
}

func persist(rc *Recipe, path, dir string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := Encode(rc, format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create recipes directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write recipe file: %w", err)
	}
	return nil
}

// sanitizeFilename keeps letters, digits, '-' and '_', and turns spaces into
// underscores.
func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "recipe"
	}
	return b.String()
}
