package score

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

type fileRecord struct {
	Best      int       `yaml:"best"`
	UpdatedAt time.Time `yaml:"updated_at"`
}

// FileStore keeps the best score in a YAML file
// Writes go to a temp file renamed over the target
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns 0 when the file does not exist yet
func (s *FileStore) Load(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, err := s.read()
	if err != nil {
		return 0, err
	}
	return rec.Best, nil
}

func (s *FileStore) Save(_ context.Context, best int) error {
	if best < 0 {
		return ErrNegative
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.read()
	if err != nil {
		return err
	}
	if best <= rec.Best && !rec.UpdatedAt.IsZero() {
		return nil
	}
	rec.Best = max(rec.Best, best)
	rec.UpdatedAt = time.Now().UTC()

	data, err := yaml.Marshal(&rec)
	if err != nil {
		return fmt.Errorf("encode best score: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".best-*.yaml")
	if err != nil {
		return fmt.Errorf("write best score: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write best score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write best score: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write best score: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) read() (fileRecord, error) {
	var rec fileRecord
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return rec, nil
	}
	if err != nil {
		return rec, fmt.Errorf("read best score: %w", err)
	}
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("decode best score %s: %w", s.path, err)
	}
	return rec, nil
}
