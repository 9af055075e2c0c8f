package contact

import (
	"fmt"
	"sync"

	"github.com/hupe1980/meetmesh/core"
)

// InMemoryStore is a process-local ContactStore keyed by email. It is safe for
// concurrent access and best suited for tests, examples and single-process
// assistants. Profiles are stored and returned by value, so callers cannot
// mutate internal state through a returned Profile.
type InMemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]core.Profile
}

// NewInMemoryStore constructs an empty in-memory contact store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{profiles: make(map[string]core.Profile)}
}

// Get returns the profile for the email with a found flag.
func (s *InMemoryStore) Get(email string) (core.Profile, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[email]
	if !ok {
		return core.Profile{}, false, nil
	}
	return cloneProfile(p), true, nil
}

// Set inserts or replaces the profile keyed by its email. The email must have
// a basic address shape; an unset timezone is filled with core.DefaultTimezone.
func (s *InMemoryStore) Set(p core.Profile) error {
	if !core.ValidEmail(p.Email) {
		return fmt.Errorf("invalid profile email %q", p.Email)
	}
	if p.Timezone == "" {
		p.Timezone = core.DefaultTimezone
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.Email] = cloneProfile(p)
	return nil
}

// Has reports whether a profile exists for the email.
func (s *InMemoryStore) Has(email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.profiles[email]
	return ok, nil
}

// Delete removes the profile, reporting whether one existed.
func (s *InMemoryStore) Delete(email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.profiles[email]
	delete(s.profiles, email)
	return ok, nil
}

// GetAll returns every stored profile in unspecified order.
func (s *InMemoryStore) GetAll() ([]core.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, cloneProfile(p))
	}
	return out, nil
}

// Clear removes all profiles.
func (s *InMemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles = make(map[string]core.Profile)
	return nil
}

// cloneProfile copies the profile including its AvoidDays slice.
func cloneProfile(p core.Profile) core.Profile {
	out := p
	if p.Preferences.AvoidDays != nil {
		out.Preferences.AvoidDays = make([]string, len(p.Preferences.AvoidDays))
		copy(out.Preferences.AvoidDays, p.Preferences.AvoidDays)
	}
	return out
}
