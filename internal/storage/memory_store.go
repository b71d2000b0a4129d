package storage

import "context"

// MemoryStore backs tests and the ephemeral store mode. SaveErr, when set,
// is returned by every Save so callers can exercise the write-through
// failure path.
type MemoryStore struct {
	data    map[string][]byte
	SaveErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	payload, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, key string, payload []byte) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	stored := make([]byte, len(payload))
	copy(stored, payload)
	s.data[key] = stored
	return nil
}
