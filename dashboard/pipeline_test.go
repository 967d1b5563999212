package dashboard

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/deathrjj/userhub-tui/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func sampleUsers() []models.User {
	return []models.User{
		{ID: 1, Email: "george.bluth@reqres.in", FirstName: "George", LastName: "Bluth"},
		{ID: 2, Email: "janet.weaver@reqres.in", FirstName: "Janet", LastName: "Weaver"},
		{ID: 3, Email: "emma.wong@reqres.in", FirstName: "Emma", LastName: "Wong"},
		{ID: 4, Email: "eve.holt@reqres.in", FirstName: "Eve", LastName: "Holt"},
		{ID: 5, Email: "charles.morris@reqres.in", FirstName: "Charles", LastName: "Morris"},
		{ID: 6, Email: "tracey.ramos@reqres.in", FirstName: "Tracey", LastName: "Ramos"},
	}
}

func ids(users []models.User) []int {
	out := make([]int, len(users))
	for i, u := range users {
		out[i] = u.ID
	}
	return out
}

func TestDeriveEmptyTermKeepsServerOrder(t *testing.T) {
	users := sampleUsers()
	assert.Equal(t, users, Derive(users, "", models.SortAll))
}

func TestDeriveSearch(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []int
	}{
		{"first name", "jan", []int{2}},
		{"last name case-insensitive", "WONG", []int{3}},
		{"email", "holt@", []int{4}},
		{"across fields", "e", []int{1, 2, 3, 4, 5, 6}},
		{"no match", "zzz", []int{}},
		{"domain", "reqres", []int{1, 2, 3, 4, 5, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Derive(sampleUsers(), tt.term, models.SortAll)))
		})
	}
}

func TestDeriveSort(t *testing.T) {
	users := sampleUsers()
	assert.Equal(t, []int{5, 3, 4, 1, 2, 6}, ids(Derive(users, "", models.SortFirstName)))
	assert.Equal(t, []int{1, 4, 5, 6, 2, 3}, ids(Derive(users, "", models.SortLastName)))
	assert.Equal(t, []int{5, 3, 4, 1, 2, 6}, ids(Derive(users, "", models.SortEmail)))
}

func TestDeriveSortIsStable(t *testing.T) {
	users := []models.User{
		{ID: 1, FirstName: "Ana", LastName: "Z"},
		{ID: 2, FirstName: "Bob", LastName: "Y"},
		{ID: 3, FirstName: "Ana", LastName: "X"},
	}
	assert.Equal(t, []int{1, 3, 2}, ids(Derive(users, "", models.SortFirstName)))
}

func TestDeriveSortIsLocaleAware(t *testing.T) {
	users := []models.User{
		{ID: 1, LastName: "Zimmer"},
		{ID: 2, LastName: "Émile"},
		{ID: 3, LastName: "adams"},
	}
	// Byte order would put "Zimmer" first and "Émile" last.
	assert.Equal(t, []int{3, 2, 1}, ids(Derive(users, "", models.SortLastName)))
}

func TestDeriveSearchThenSort(t *testing.T) {
	assert.Equal(t, []int{1, 4, 5, 6, 3}, ids(Derive(sampleUsers(), "o", models.SortLastName)))
}

func TestDeriveDoesNotMutateInput(t *testing.T) {
	users := sampleUsers()
	before := append([]models.User(nil), users...)
	view := Derive(users, "", models.SortLastName)
	assert.Equal(t, before, users)

	view[0].FirstName = "changed"
	assert.Equal(t, before, users)
}

var alphabet = []rune("abcdeÉéAZzy")

func randomWord(r *rand.Rand) string {
	n := 1 + r.Intn(5)
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteRune(alphabet[r.Intn(len(alphabet))])
	}
	return b.String()
}

func randomUsers(r *rand.Rand) []models.User {
	users := make([]models.User, r.Intn(12))
	for i := range users {
		users[i] = models.User{ID: i + 1, FirstName: randomWord(r), LastName: randomWord(r), Email: randomWord(r) + "@x.io"}
	}
	return users
}

func TestDeriveProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	col := collate.New(language.English)

	for i := 0; i < 300; i++ {
		users := randomUsers(r)
		term := ""
		if r.Intn(3) > 0 {
			term = string([]rune(randomWord(r))[0])
		}
		field := models.SortFields[r.Intn(len(models.SortFields))]
		view := Derive(users, term, field)

		// Exactly the matching elements.
		want := map[int]bool{}
		for _, u := range users {
			if term == "" || Matches(u, strings.ToLower(term)) {
				want[u.ID] = true
			}
		}
		require.Len(t, view, len(want))
		for _, u := range view {
			require.True(t, want[u.ID], "unexpected user %d for term %q", u.ID, term)
		}

		if field == models.SortAll {
			// Order is the input order of the kept users.
			var kept []int
			for _, u := range users {
				if want[u.ID] {
					kept = append(kept, u.ID)
				}
			}
			require.Equal(t, len(kept), len(view))
			for j := range kept {
				require.Equal(t, kept[j], view[j].ID)
			}
			continue
		}
		for j := 1; j < len(view); j++ {
			require.LessOrEqual(t, col.CompareString(field.Key(view[j-1]), field.Key(view[j])), 0,
				"view not sorted by %s", field)
		}
	}
}
