package dashboard

import (
	"sort"
	"strings"

	"github.com/deathrjj/userhub-tui/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Derive computes the visible list from the fetched users, the search term and
// the sort criterion. It never modifies users and always returns a new slice.
//
// A non-empty term keeps users whose first name, last name or email contains
// it, ignoring case. Any criterion other than SortAll stable-sorts the result
// by that field using English collation; SortAll keeps server order.
func Derive(users []models.User, term string, field models.SortField) []models.User {
	view := make([]models.User, 0, len(users))
	needle := strings.ToLower(term)
	for _, u := range users {
		if needle == "" || Matches(u, needle) {
			view = append(view, u)
		}
	}

	if field == models.SortAll || field == "" {
		return view
	}

	// Collators keep internal buffers and are not safe to share.
	col := collate.New(language.English)
	sort.SliceStable(view, func(i, j int) bool {
		return col.CompareString(field.Key(view[i]), field.Key(view[j])) < 0
	})
	return view
}

// Matches reports whether u matches the lower-cased search term.
func Matches(u models.User, needle string) bool {
	return strings.Contains(strings.ToLower(u.FirstName), needle) ||
		strings.Contains(strings.ToLower(u.LastName), needle) ||
		strings.Contains(strings.ToLower(u.Email), needle)
}
