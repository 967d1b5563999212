package dashboard

import (
	"sync"

	"github.com/deathrjj/userhub-tui/models"
)

// Store holds the last fetched page of users together with the current search
// term and sort criterion. The view is rebuilt with Derive after every change
// and is never edited directly.
type Store struct {
	mu     sync.RWMutex
	users  []models.User
	search string
	sort   models.SortField
	view   []models.User
}

// NewStore creates an empty store sorted in server order.
func NewStore() *Store {
	return &Store{sort: models.SortAll, view: []models.User{}}
}

// Replace swaps in a freshly fetched page. Nothing from the previous page is kept.
func (s *Store) Replace(users []models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append([]models.User(nil), users...)
	s.recompute()
}

// SetSearch changes the search term.
func (s *Store) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = term
	s.recompute()
}

// SetSort changes the sort criterion.
func (s *Store) SetSort(field models.SortField) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sort = field
	s.recompute()
}

// Apply merges patch into the user with the given id.
// It reports false when no such user is loaded.
func (s *Store) Apply(id int, patch models.UserPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i] = patch.Apply(s.users[i])
			s.recompute()
			return true
		}
	}
	return false
}

// Remove drops the user with the given id, keeping the order of the rest.
func (s *Store) Remove(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i:i], s.users[i+1:]...)
			s.recompute()
			return true
		}
	}
	return false
}

// Lookup returns the loaded user with the given id.
func (s *Store) Lookup(id int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// Users returns a copy of the fetched page in server order.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.users...)
}

// View returns a copy of the filtered and sorted list.
func (s *Store) View() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.view...)
}

// Search returns the current search term.
func (s *Store) Search() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.search
}

// Sort returns the current sort criterion.
func (s *Store) Sort() models.SortField {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sort
}

// SearchActive reports whether a search term is set.
func (s *Store) SearchActive() bool {
	return s.Search() != ""
}

// recompute must be called with mu held for writing.
func (s *Store) recompute() {
	s.view = Derive(s.users, s.search, s.sort)
}
