package dashboard

import (
	"testing"

	"github.com/deathrjj/userhub-tui/models"
	"github.com/stretchr/testify/assert"
)

func TestStoreViewFollowsState(t *testing.T) {
	s := NewStore()
	assert.Empty(t, s.View())

	s.Replace(sampleUsers())
	assert.Equal(t, sampleUsers(), s.View())

	s.SetSort(models.SortLastName)
	assert.Equal(t, []int{1, 4, 5, 6, 2, 3}, ids(s.View()))

	s.SetSearch("o")
	assert.True(t, s.SearchActive())
	assert.Equal(t, []int{1, 4, 5, 6, 3}, ids(s.View()))

	s.SetSearch("")
	s.SetSort(models.SortAll)
	assert.False(t, s.SearchActive())
	assert.Equal(t, sampleUsers(), s.View())
	assert.Equal(t, sampleUsers(), s.Users())
}

func TestStoreReplaceDropsPreviousPage(t *testing.T) {
	s := NewStore()
	s.Replace(sampleUsers())
	second := []models.User{{ID: 7, FirstName: "Michael"}, {ID: 8, FirstName: "Lindsay"}}
	s.Replace(second)

	assert.Equal(t, second, s.Users())
	_, ok := s.Lookup(1)
	assert.False(t, ok)
}

func TestStoreApply(t *testing.T) {
	s := NewStore()
	s.Replace(append(sampleUsers(), models.User{ID: 7, Email: "michael.lawson@reqres.in", FirstName: "Michael", LastName: "Lawson"}))

	jane := "Jane"
	assert.True(t, s.Apply(7, models.UserPatch{FirstName: &jane}))

	var matches []models.User
	for _, u := range s.Users() {
		if u.ID == 7 {
			matches = append(matches, u)
		}
	}
	assert.Equal(t, []models.User{{ID: 7, Email: "michael.lawson@reqres.in", FirstName: "Jane", LastName: "Lawson"}}, matches)
	assert.Equal(t, sampleUsers(), s.Users()[:6])

	assert.False(t, s.Apply(99, models.UserPatch{FirstName: &jane}))
}

func TestStoreApplyResortsView(t *testing.T) {
	s := NewStore()
	s.Replace(sampleUsers())
	s.SetSort(models.SortFirstName)

	aaron := "Aaron"
	s.Apply(6, models.UserPatch{FirstName: &aaron})
	assert.Equal(t, 6, s.View()[0].ID)
}

func TestStoreRemove(t *testing.T) {
	s := NewStore()
	s.Replace(sampleUsers())

	assert.True(t, s.Remove(3))
	assert.Equal(t, []int{1, 2, 4, 5, 6}, ids(s.Users()))
	assert.Equal(t, []int{1, 2, 4, 5, 6}, ids(s.View()))
	want := sampleUsers()
	assert.Equal(t, append(want[:2:2], want[3:]...), s.Users())

	assert.False(t, s.Remove(3))
}

func TestStoreCopies(t *testing.T) {
	s := NewStore()
	s.Replace(sampleUsers())

	v := s.View()
	v[0].FirstName = "changed"
	u := s.Users()
	u[0].FirstName = "changed"

	got, ok := s.Lookup(1)
	assert.True(t, ok)
	assert.Equal(t, "George", got.FirstName)
}
