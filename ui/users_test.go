package ui

import (
	"context"
	"testing"

	"github.com/deathrjj/userhub-tui/config"
	"github.com/deathrjj/userhub-tui/dashboard"
	"github.com/deathrjj/userhub-tui/models"
	"github.com/deathrjj/userhub-tui/session"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsers struct {
	page models.Page
}

func (s stubUsers) ListUsers(ctx context.Context, page int) (models.Page, error) {
	return s.page, nil
}

func (s stubUsers) UpdateUser(ctx context.Context, id int, patch models.UserPatch) (models.User, error) {
	return models.User{ID: id}, nil
}

func (s stubUsers) DeleteUser(ctx context.Context, id int) error { return nil }

type stubAuth struct{}

func (stubAuth) Login(ctx context.Context, email, password string) (string, error) {
	return "QpwL5tke4Pnpja7X4", nil
}

func TestLogoutClearsSearch(t *testing.T) {
	users := []models.User{
		{ID: 1, Email: "george.bluth@reqres.in", FirstName: "George", LastName: "Bluth"},
		{ID: 4, Email: "eve.holt@reqres.in", FirstName: "Eve", LastName: "Holt"},
	}
	dash := dashboard.New(stubUsers{page: models.Page{Page: 1, TotalPages: 2, Data: users}})
	ui := NewDashboardUI(tview.NewApplication(), &config.Config{}, session.New(stubAuth{}), dash)
	require.NoError(t, dash.Load(context.Background()))

	ui.buildLayout()
	ui.refresh()
	ui.searchInput.SetText("eve")
	require.True(t, dash.Store().SearchActive())
	require.Equal(t, 1, ui.userList.GetItemCount())

	ui.Logout()
	ui.buildLayout()
	ui.refresh()

	assert.Empty(t, ui.searchInput.GetText())
	assert.False(t, dash.Store().SearchActive())
	assert.Equal(t, 2, ui.userList.GetItemCount())
	assert.Contains(t, ui.pageLabel.GetText(false), "Page 1 of 2")
}

func TestBuildLayoutShowsStoredSearch(t *testing.T) {
	dash := dashboard.New(stubUsers{})
	dash.Search("eve")
	ui := NewDashboardUI(tview.NewApplication(), &config.Config{}, session.New(stubAuth{}), dash)

	ui.buildLayout()

	assert.Equal(t, "eve", ui.searchInput.GetText())
}
