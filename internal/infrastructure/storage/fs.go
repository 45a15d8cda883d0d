package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"svw.info/braincruncher/internal/domain"
)

const defaultCacheSize = 128

// FS stores puzzles as <dir>/<difficulty>/<id>.json and keeps recently
// loaded ones in memory.
type FS struct {
	dir   string
	cache *lru.Cache[string, *domain.Puzzle]
}

// NewFS returns a file store rooted at dir. cacheSize <= 0 uses a default.
func NewFS(dir string, cacheSize int) (*FS, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New[string, *domain.Puzzle](cacheSize)
	if err != nil {
		return nil, err
	}
	return &FS{dir: dir, cache: cache}, nil
}

func diffDirs() []domain.Difficulty {
	return []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard, domain.Custom}
}

func (s *FS) pathFor(id string, d domain.Difficulty) string {
	return filepath.Join(s.dir, d.String(), strings.TrimSpace(id)+".json")
}

func validID(id string) bool {
	id = strings.TrimSpace(id)
	return id != "" && !strings.ContainsAny(id, `/\`) && id != "." && id != ".."
}

func (s *FS) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || !validID(p.ID) {
		return errors.New("invalid puzzle: missing ID")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	// Ensure directory <dir>/<difficulty> exists
	target := s.pathFor(p.ID, p.Difficulty)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return err
	}
	s.cache.Remove(p.ID)
	return nil
}

// Load returns a copy of the stored puzzle, or os.ErrNotExist.
func (s *FS) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if !validID(id) {
		return nil, os.ErrNotExist
	}
	id = strings.TrimSpace(id)
	if p, ok := s.cache.Get(id); ok {
		return clone(p), nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var data []byte
	var found domain.Difficulty
	for _, d := range diffDirs() {
		b, err := os.ReadFile(s.pathFor(id, d))
		if err == nil {
			data, found = b, d
			break
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	if data == nil {
		return nil, os.ErrNotExist
	}
	var out domain.Puzzle
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	// the folder is authoritative when the file lacks a difficulty
	if out.Difficulty == domain.Custom {
		out.Difficulty = found
	}
	if out.ID == "" {
		out.ID = id
	}
	s.cache.Add(id, &out)
	return clone(&out), nil
}

func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	for _, d := range diffDirs() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		bucket := filepath.Join(s.dir, d.String())
		ents, err := os.ReadDir(bucket)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			name := e.Name()
			if e.IsDir() || !strings.HasSuffix(name, ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(bucket, name))
			if err != nil {
				continue
			}
			var p domain.Puzzle
			if err := json.Unmarshal(data, &p); err != nil || p.ID == "" {
				continue
			}
			dd := p.Difficulty
			if dd == domain.Custom {
				dd = d // infer from folder if absent
			}
			out = append(out, domain.PuzzleMeta{
				ID:         p.ID,
				Name:       p.Name,
				Difficulty: dd,
				Steps:      len(p.Operations),
				CreatedAt:  p.CreatedAt,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	return out, nil
}

func clone(p *domain.Puzzle) *domain.Puzzle {
	cp := *p
	cp.Operations = append([]domain.Operation(nil), p.Operations...)
	return &cp
}
