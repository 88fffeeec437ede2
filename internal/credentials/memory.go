package credentials

import (
	"sync"

	"github.com/DengYiping/catlink-cli/internal/region"
)

// MemoryStore is an in-process Store. It backs tests and any environment
// where no OS keyring is available. Safe for concurrent use: the session
// runner refreshes tokens from one goroutine per region.
type MemoryStore struct {
	mu      sync.Mutex
	records map[region.Region]Record
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[region.Region]Record)}
}

func (s *MemoryStore) Put(r region.Region, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[r] = rec
	return nil
}

func (s *MemoryStore) Get(r region.Region) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[r]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (s *MemoryStore) Delete(r region.Region) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, r)
	return nil
}

func (s *MemoryStore) DeleteAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.records)
	return nil
}

func (s *MemoryStore) Regions() ([]region.Region, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var stored []region.Region
	for _, r := range region.All() {
		if _, ok := s.records[r]; ok {
			stored = append(stored, r)
		}
	}
	return stored, nil
}
