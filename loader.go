package stocktrack

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// LoadLedger reads the ledger from its file. A missing file is the normal
// first-run case and yields an empty ledger; any other read or decode failure
// is surfaced.
func LoadLedger(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	return ledger, nil
}

// SaveLedger rewrites the whole ledger file. The write goes to a temporary
// file in the same directory which then replaces the target, so a crash
// mid-write never leaves a half-written ledger behind.
func SaveLedger(path string, ledger *Ledger) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary ledger file: %w", err)
	}

	if err := EncodeLedger(tmp, ledger); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("could not encode ledger file %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not close temporary ledger file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not replace ledger file %q: %w", path, err)
	}
	return nil
}

// Store owns the load-mutate-persist sequence for one ledger file. Mutations
// are serialized so the unique-ticker invariant holds even if the store is
// ever driven by concurrent callers; the in-memory view is never kept between
// calls, the file is the sole source of truth.
type Store struct {
	path string

	mu sync.Mutex // one mutation in flight at a time
}

// NewStore creates a store for the ledger file at path.
func NewStore(path string) *Store { return &Store{path: path} }

// Load returns the current ledger snapshot.
func (s *Store) Load() (*Ledger, error) { return LoadLedger(s.path) }

// AddOrUpdate merges a purchase into the ledger and persists it. On any
// failure nothing is persisted and the returned position is zero.
func (s *Store) AddOrUpdate(ticker string, shares int, price Money) (Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := LoadLedger(s.path)
	if err != nil {
		return Position{}, err
	}
	if err := ledger.Add(ticker, shares, price); err != nil {
		return Position{}, err
	}
	if err := SaveLedger(s.path, ledger); err != nil {
		return Position{}, err
	}
	p, _ := ledger.Position(strings.ToUpper(strings.TrimSpace(ticker)))
	return p, nil
}

// Remove deletes a position and persists the reduced ledger. Removing an
// absent ticker returns ErrNotFound and the file is left untouched.
func (s *Store) Remove(ticker string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := LoadLedger(s.path)
	if err != nil {
		return err
	}
	if err := ledger.Remove(ticker); err != nil {
		return err
	}
	return SaveLedger(s.path, ledger)
}
