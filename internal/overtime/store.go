package overtime

// Store is the persistence the engine writes through on every mutation.
// Implementations never fail from the caller's view: load falls back, save
// reports problems out of band.
//
//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=overtime
type Store interface {
	LoadNumber(key string, fallback int64) int64
	PersistNumber(key string, value int64)
	LoadString(key, fallback string) string
	PersistString(key, value string)
}

// BatchStore is implemented by stores that can write several numbers atomically.
type BatchStore interface {
	Store
	PersistNumbers(values map[string]int64)
}

// MemoryStore keeps values in a map.
type MemoryStore struct {
	Values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{Values: make(map[string]string)}
}

func (s *MemoryStore) LoadNumber(key string, fallback int64) int64 {
	raw, ok := s.Values[key]
	if !ok {
		return fallback
	}
	if v, ok := ParseNumber(raw); ok {
		return v
	}
	return fallback
}

func (s *MemoryStore) PersistNumber(key string, value int64) {
	s.Values[key] = FormatNumber(value)
}

func (s *MemoryStore) LoadString(key, fallback string) string {
	if raw, ok := s.Values[key]; ok {
		return raw
	}
	return fallback
}

func (s *MemoryStore) PersistString(key, value string) {
	s.Values[key] = value
}
