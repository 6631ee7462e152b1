package database

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/akyairhashvil/overtime/internal/overtime"
	"github.com/akyairhashvil/overtime/internal/util"
)

var (
	_ overtime.BatchStore = (*KVStore)(nil)
	_ SettingsStore       = (*Database)(nil)
)

// SettingsStore is the slice of Database the engine's store needs.
type SettingsStore interface {
	LookupSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	SetSettings(ctx context.Context, values map[string]string) error
}

// KVStore adapts a SettingsStore to the engine's store contract. Writes are
// fire-and-forget: failures are logged and the in-memory state stays
// authoritative for the session.
//
// A key whose read failed for any reason other than ErrNotFound is held: the
// next write of that key is dropped, so a fallback handed out during a bad
// read is never written over the stored value.
type KVStore struct {
	db     SettingsStore
	ctx    context.Context
	logger *slog.Logger

	mu   sync.Mutex
	held map[string]bool
}

func NewKVStore(ctx context.Context, db SettingsStore, logger *slog.Logger) *KVStore {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = util.DiscardLogger()
	}
	return &KVStore{db: db, ctx: ctx, logger: logger, held: map[string]bool{}}
}

// lookup returns the stored value for key. ok is false when the key is
// missing or could not be read.
func (s *KVStore) lookup(key string) (string, bool) {
	raw, err := s.db.LookupSetting(s.ctx, key)
	if err == nil {
		return raw, true
	}
	if !errors.Is(err, ErrNotFound) {
		util.LogError(s.logger, "read setting", err)
		s.mu.Lock()
		s.held[key] = true
		s.mu.Unlock()
	}
	return "", false
}

// release reports whether key may be written and clears its hold.
func (s *KVStore) release(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.held[key] {
		return true
	}
	delete(s.held, key)
	s.logger.Warn("skipping write-back after failed read", "key", key)
	return false
}

// LoadNumber returns the stored number for key, or fallback when it is
// missing, unreadable or does not parse.
func (s *KVStore) LoadNumber(key string, fallback int64) int64 {
	raw, ok := s.lookup(key)
	if !ok {
		return fallback
	}
	n, ok := overtime.ParseNumber(raw)
	if !ok {
		s.logger.Warn("ignoring unparsable setting", "key", key, "value", raw)
		return fallback
	}
	return n
}

func (s *KVStore) PersistNumber(key string, value int64) {
	s.PersistString(key, overtime.FormatNumber(value))
}

func (s *KVStore) LoadString(key, fallback string) string {
	raw, ok := s.lookup(key)
	if !ok {
		return fallback
	}
	return raw
}

func (s *KVStore) PersistString(key, value string) {
	if !s.release(key) {
		return
	}
	if err := s.db.SetSetting(s.ctx, key, value); err != nil {
		util.LogError(s.logger, "persist setting", err)
	}
}

// PersistNumbers writes values in a single transaction.
func (s *KVStore) PersistNumbers(values map[string]int64) {
	encoded := make(map[string]string, len(values))
	for key, value := range values {
		if !s.release(key) {
			continue
		}
		encoded[key] = overtime.FormatNumber(value)
	}
	if len(encoded) == 0 {
		return
	}
	if err := s.db.SetSettings(s.ctx, encoded); err != nil {
		util.LogError(s.logger, "persist settings", err)
	}
}
