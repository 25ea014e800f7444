package memory

import (
	"context"
	"sync"

	"github.com/Fridaxdnt/EcoFinance-Pro/internal/domain/models"
)

// Store is an in-memory, append-only record table. A single writer and any number of
// readers are serialized through mu; readers get a copy of the table.
type Store struct {
	mu      sync.RWMutex
	records []models.OperationalRecord
	nextID  int64
}

// NewStore creates an empty table whose first id is 1.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// Append stores record under the next id.
func (s *Store) Append(_ context.Context, record models.OperationalRecord) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.ID = s.nextID
	s.nextID++
	s.records = append(s.records, record)

	return record.ID, nil
}

// All returns a snapshot of the table in insertion order.
func (s *Store) All(_ context.Context) ([]models.OperationalRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.OperationalRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Close is a no-op kept so every backend can be released the same way.
func (s *Store) Close(context.Context) error {
	return nil
}
