package dashboard

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/deathrjj/userhub-tui/models"
	"github.com/rs/zerolog/log"
)

// ErrBusy is returned when the same action is submitted again before the
// previous submission finished.
var ErrBusy = errors.New("operation already in progress")

// UserService is the remote user API the dashboard works against.
type UserService interface {
	ListUsers(ctx context.Context, page int) (models.Page, error)
	UpdateUser(ctx context.Context, id int, patch models.UserPatch) (models.User, error)
	DeleteUser(ctx context.Context, id int) error
}

// Dashboard ties the store, the pager and the remote API together.
// Failed operations never change the store.
type Dashboard struct {
	svc   UserService
	store *Store
	pager *Pager

	loading  atomic.Int32
	editing  atomic.Bool
	deleting atomic.Bool
}

// New creates a dashboard on page 1 with nothing loaded.
func New(svc UserService) *Dashboard {
	return &Dashboard{svc: svc, store: NewStore(), pager: NewPager()}
}

// Store exposes the list state.
func (d *Dashboard) Store() *Store { return d.store }

// Pager exposes the pagination state.
func (d *Dashboard) Pager() *Pager { return d.pager }

// View returns the filtered and sorted users.
func (d *Dashboard) View() []models.User { return d.store.View() }

// Loading reports whether a page fetch is outstanding.
func (d *Dashboard) Loading() bool { return d.loading.Load() > 0 }

// Submitting reports whether an edit or delete is outstanding.
func (d *Dashboard) Submitting() bool { return d.editing.Load() || d.deleting.Load() }

// Search sets the search term. Pagination is inactive while it is non-empty.
func (d *Dashboard) Search(term string) { d.store.SetSearch(term) }

// SortBy sets the sort criterion.
func (d *Dashboard) SortBy(field models.SortField) { d.store.SetSort(field) }

// Load fetches the current page and replaces the loaded users with it.
func (d *Dashboard) Load(ctx context.Context) error {
	return d.fetch(ctx, d.pager.Current())
}

// NextPage moves forward one page and fetches it. It does nothing and returns
// false on the last page or while a search term is set.
func (d *Dashboard) NextPage(ctx context.Context) (bool, error) {
	if d.store.SearchActive() {
		return false, nil
	}
	page, ok := d.pager.Next()
	if !ok {
		return false, nil
	}
	return true, d.fetch(ctx, page)
}

// PreviousPage moves back one page and fetches it. It does nothing and returns
// false on page 1 or while a search term is set.
func (d *Dashboard) PreviousPage(ctx context.Context) (bool, error) {
	if d.store.SearchActive() {
		return false, nil
	}
	page, ok := d.pager.Previous()
	if !ok {
		return false, nil
	}
	return true, d.fetch(ctx, page)
}

func (d *Dashboard) fetch(ctx context.Context, page int) error {
	d.loading.Add(1)
	defer d.loading.Add(-1)

	resp, err := d.svc.ListUsers(ctx, page)
	if err != nil {
		log.Error().Err(err).Int("page", page).Msg("Error loading users")
		return err
	}
	// The user may have paged on while this request was in flight.
	if cur := d.pager.Current(); cur != page {
		log.Debug().Int("page", page).Int("current", cur).Msg("Discarding stale page")
		return nil
	}
	d.pager.SetTotal(resp.TotalPages)
	// The total shrank below the requested page; load the new last page.
	if cur := d.pager.Current(); cur != page {
		log.Debug().Int("page", page).Int("total_pages", resp.TotalPages).Msg("Requested page no longer exists")
		return d.fetch(ctx, cur)
	}
	d.store.Replace(resp.Data)
	log.Info().Int("page", page).Int("users", len(resp.Data)).Int("total_pages", resp.TotalPages).Msg("Loaded users")
	return nil
}

// Edit validates form and sends it for the user with the given id. On success
// the fields returned by the server are merged into that user, falling back to
// the submitted ones. A validation failure is
// returned as *forms.ValidationError before any request is made.
func (d *Dashboard) Edit(ctx context.Context, id int, form EditForm) error {
	if err := form.Validate(); err != nil {
		return err
	}
	if !d.editing.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer d.editing.Store(false)

	patch := form.Patch()
	updated, err := d.svc.UpdateUser(ctx, id, patch)
	if err != nil {
		log.Error().Err(err).Int("user_id", id).Msg("Error updating user")
		return err
	}
	if !d.store.Apply(id, echoed(updated, patch)) {
		log.Warn().Int("user_id", id).Msg("Updated user is no longer loaded")
	}
	log.Info().Int("user_id", id).Msg("User updated")
	return nil
}

// Delete removes the user with the given id remotely and, on success, locally.
// The caller is responsible for asking for confirmation first.
func (d *Dashboard) Delete(ctx context.Context, id int) error {
	if !d.deleting.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer d.deleting.Store(false)

	if err := d.svc.DeleteUser(ctx, id); err != nil {
		log.Error().Err(err).Int("user_id", id).Msg("Error deleting user")
		return err
	}
	d.store.Remove(id)
	log.Info().Int("user_id", id).Msg("User deleted")
	return nil
}

// echoed builds the patch to apply locally from the server's response.
func echoed(u models.User, sent models.UserPatch) models.UserPatch {
	pick := func(got string, fallback *string) *string {
		if got != "" {
			return &got
		}
		return fallback
	}
	return models.UserPatch{
		FirstName: pick(u.FirstName, sent.FirstName),
		LastName:  pick(u.LastName, sent.LastName),
		Email:     pick(u.Email, sent.Email),
	}
}
