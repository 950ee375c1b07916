// Package storage abstracts the durable key/value store backing the auth
// session. In the browser this is window.localStorage; tests use the
// in-memory implementation.
package storage

import "sync"

// Keys shared by the API client and the session manager. Both values are
// always cleared together on logout or on any 401.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Store is a whole-value key/value store. All writes replace the full
// value, so concurrent flows cannot leave a partially written entry.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Del(key string)
}

// Memory is a Store held in process memory.
type Memory struct {
	mu sync.Mutex
	m  map[string]string
}

func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

func (s *Memory) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *Memory) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}

func (s *Memory) Del(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
}

// ClearSession removes the token and the cached user snapshot.
func ClearSession(s Store) {
	s.Del(KeyToken)
	s.Del(KeyUser)
}
