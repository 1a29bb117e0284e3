package csvfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/SebastianGomezdv/control-asistencia-go/internal/domain/ledger"
	"github.com/google/uuid"
)

// Store is the single owner of the ledger file. One process-wide mutex
// guards every load-mutate-save sequence; without it two concurrent
// toggles for the same employee and date could both see "no open
// session" and both append an entrance row.
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load implements ledger.Store.
func (s *Store) Load(ctx context.Context) ([]ledger.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Save implements ledger.Store.
func (s *Store) Save(ctx context.Context, records []ledger.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(records)
}

// Update implements ledger.Store. The write is skipped when fn reports
// no change, so an idle sweep costs one read and no I/O contention.
func (s *Store) Update(ctx context.Context, fn ledger.UpdateFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}

	updated, changed, err := fn(records)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return s.save(updated)
}

func (s *Store) load() ([]ledger.Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// First run: no ledger yet.
			return []ledger.Record{}, nil
		}
		return nil, fmt.Errorf("open ledger %s: %w", s.path, err)
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode ledger %s: %w", s.path, err)
	}
	return records, nil
}

// save performs the full rewrite through a uniquely named temp file in
// the same directory, then renames it over the ledger so readers never
// observe a half-written table, even across a crash mid-write.
func (s *Store) save(records []ledger.Record) error {
	dir := filepath.Dir(s.path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(s.path), uuid.New().String()))

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create ledger temp file: %w", err)
	}

	if err := Encode(f, records); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("encode ledger: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close ledger temp file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace ledger %s: %w", s.path, err)
	}
	return nil
}
