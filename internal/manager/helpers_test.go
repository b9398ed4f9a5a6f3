package manager

import (
	"errors"

	"github.com/danieljhkim/gridboard/internal/kv"
)

var errWriteFailed = errors.New("disk full")

// failingStore fails every Set while fail is true.
type failingStore struct {
	*kv.MemoryStore
	fail bool
}

func (s *failingStore) Set(key, value string) error {
	if s.fail {
		return errWriteFailed
	}
	return s.MemoryStore.Set(key, value)
}
