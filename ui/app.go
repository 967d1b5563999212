package ui

import (
	"context"
	"time"

	"github.com/deathrjj/userhub-tui/config"
	"github.com/deathrjj/userhub-tui/dashboard"
	"github.com/deathrjj/userhub-tui/models"
	"github.com/deathrjj/userhub-tui/session"
	"github.com/rivo/tview"
)

// DashboardUI drives the terminal user-management dashboard.
// All widget state is touched on the tview event goroutine only; network
// calls run on their own goroutines and report back via QueueUpdateDraw.
type DashboardUI struct {
	App       *tview.Application
	Config    *config.Config
	Session   *session.Session
	Dashboard *dashboard.Dashboard

	layout      tview.Primitive
	userList    *tview.List
	searchInput *tview.InputField
	sortSelect  *tview.DropDown
	details     *tview.TextView
	pageLabel   *tview.TextView
	statusBar   *tview.TextView
	bottomBar   *tview.TextView

	// visible is the snapshot of the view rendered in userList.
	visible []models.User
}

// NewDashboardUI creates a new dashboard UI instance
func NewDashboardUI(app *tview.Application, cfg *config.Config, sess *session.Session, dash *dashboard.Dashboard) *DashboardUI {
	return &DashboardUI{
		App:       app,
		Config:    cfg,
		Session:   sess,
		Dashboard: dash,
	}
}

// Start shows the login form, or the users screen when already signed in.
func (ui *DashboardUI) Start() {
	if ui.Session.Authenticated() {
		ui.ShowUsers()
		return
	}
	ui.PromptForLogin()
}

// requestContext bounds a single background call.
func (ui *DashboardUI) requestContext() (context.Context, context.CancelFunc) {
	timeout := ui.Config.Timeout
	if timeout <= 0 {
		timeout = time.Minute
	}
	return context.WithTimeout(context.Background(), timeout)
}

// notify shows msg in the status bar. It must run on the event goroutine.
func (ui *DashboardUI) notify(msg string, isErr bool) {
	if ui.statusBar != nil {
		ui.statusBar.SetText(StatusText(msg, isErr))
	}
}

// showLayout returns to the users screen with focus on the list.
func (ui *DashboardUI) showLayout() {
	ui.App.SetRoot(ui.layout, true).SetFocus(ui.userList)
	ui.updateBottomBar()
}
