package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/deathrjj/userhub-tui/dashboard"
	"github.com/deathrjj/userhub-tui/encryption"
	"github.com/deathrjj/userhub-tui/models"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ShowUsers builds the users screen and loads the current page.
func (ui *DashboardUI) ShowUsers() {
	loadingText := tview.NewTextView().
		SetText("Loading users...").
		SetTextAlign(tview.AlignCenter)
	ui.App.SetRoot(loadingText, true)

	ui.buildLayout()

	go func() {
		ctx, cancel := ui.requestContext()
		defer cancel()
		err := ui.Dashboard.Load(ctx)
		ui.App.QueueUpdateDraw(func() {
			ui.showLayout()
			ui.refresh()
			if err != nil {
				ui.notify("Failed to load users", true)
			}
		})
	}()
}

func (ui *DashboardUI) buildLayout() {
	// Create user list.
	ui.userList = tview.NewList().SetSecondaryTextColor(tcell.ColorGray)
	ui.userList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		ui.updateDetails(index)
	})
	ui.userList.SetInputCapture(ui.listInput)

	// Create search input.
	ui.searchInput = tview.NewInputField().
		SetLabel("Search: ").
		SetPlaceholder("Search users...").
		SetText(ui.Dashboard.Store().Search())
	ui.searchInput.SetChangedFunc(func(text string) {
		ui.Dashboard.Search(text)
		ui.refresh()
	})
	ui.searchInput.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown, tcell.KeyEnter:
			ui.focus(ui.userList)
			return nil
		case tcell.KeyTab:
			ui.focus(ui.sortSelect)
			return nil
		case tcell.KeyEscape:
			ui.searchInput.SetText("")
			return nil
		}
		return event
	})

	// Create sort selector.
	labels := make([]string, len(models.SortFields))
	for i, f := range models.SortFields {
		labels[i] = f.Label()
	}
	ui.sortSelect = tview.NewDropDown().SetLabel("Sort: ")
	ui.sortSelect.SetOptions(labels, func(text string, index int) {
		if index < 0 || index >= len(models.SortFields) {
			return
		}
		ui.Dashboard.SortBy(models.SortFields[index])
		ui.refresh()
	})
	ui.sortSelect.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyTab {
			ui.focus(ui.userList)
			return nil
		}
		return event
	})

	toolbar := tview.NewFlex().
		AddItem(ui.searchInput, 0, 2, false).
		AddItem(ui.sortSelect, 30, 0, false)

	// Left panel: toolbar, user list and pagination.
	ui.pageLabel = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	usersPanel := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(toolbar, 1, 0, false).
		AddItem(ui.userList, 0, 1, true).
		AddItem(ui.pageLabel, 1, 0, false)
	usersPanel.SetBorder(true).SetTitle(fmt.Sprintf("Users - %s", ui.Session.Email()))

	ui.details = tview.NewTextView().SetDynamicColors(true).SetWrap(true)
	ui.details.SetBorder(true).SetTitle("Details")

	ui.statusBar = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	// Create Bottom bar.
	ui.bottomBar = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	// Main layout: two columns on top, status and bottom bar as last rows.
	mainFlex := tview.NewFlex().
		AddItem(usersPanel, 0, 2, true).
		AddItem(ui.details, 0, 1, false)
	ui.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(mainFlex, 0, 1, true).
		AddItem(ui.statusBar, 1, 0, false).
		AddItem(ui.bottomBar, 1, 0, false)

	// Selecting the option runs the callback, so every widget must exist by now.
	ui.sortSelect.SetCurrentOption(indexOfSort(ui.Dashboard.Store().Sort()))
}

func indexOfSort(f models.SortField) int {
	for i, sf := range models.SortFields {
		if sf == f {
			return i
		}
	}
	return 0
}

// listInput handles the dashboard shortcuts while the list has focus.
func (ui *DashboardUI) listInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyPgUp, tcell.KeyPgDn, tcell.KeyHome, tcell.KeyEnd:
		return event
	case tcell.KeyEnter:
		ui.editSelected()
		return nil
	case tcell.KeyTab:
		ui.focus(ui.searchInput)
		return nil
	case tcell.KeyRight:
		ui.changePage(ui.Dashboard.NextPage)
		return nil
	case tcell.KeyLeft:
		ui.changePage(ui.Dashboard.PreviousPage)
		return nil
	case tcell.KeyDelete:
		ui.deleteSelected()
		return nil
	case tcell.KeyRune:
	default:
		return event
	}

	switch event.Rune() {
	case 'e':
		ui.editSelected()
	case 'd':
		ui.deleteSelected()
	case 'n':
		ui.changePage(ui.Dashboard.NextPage)
	case 'p':
		ui.changePage(ui.Dashboard.PreviousPage)
	case '/':
		ui.focus(ui.searchInput)
	case 's':
		ui.focus(ui.sortSelect)
	case 'c':
		ui.copySelectedEmail()
	case 'x':
		ui.Export()
	case 'r':
		ui.reload()
	case 'L':
		ui.Logout()
	case 'q':
		ui.App.Stop()
	default:
		// Any other key starts a search, like typing into the filter box.
		ui.focus(ui.searchInput)
		ui.searchInput.SetText(ui.searchInput.GetText() + string(event.Rune()))
	}
	return nil
}

func (ui *DashboardUI) focus(p tview.Primitive) {
	ui.App.SetFocus(p)
	ui.updateBottomBar()
}

// refresh re-renders everything that depends on the dashboard state.
func (ui *DashboardUI) refresh() {
	if ui.userList == nil {
		return
	}
	ui.visible = ui.Dashboard.View()
	UpdateUserList(ui.userList, ui.visible, ui.Config.DemoMode)

	pager := ui.Dashboard.Pager()
	ui.pageLabel.SetText(PageLabel(pager.Current(), pager.Total(), ui.Dashboard.Store().SearchActive(), ui.Dashboard.Loading()))

	ui.updateDetails(ui.userList.GetCurrentItem())
	ui.updateBottomBar()
}

func (ui *DashboardUI) updateDetails(index int) {
	if ui.details == nil {
		return
	}
	u, ok := ui.userAt(index)
	if !ok {
		if ui.Dashboard.Store().SearchActive() {
			ui.details.SetText("[gray]No users match the search.")
		} else {
			ui.details.SetText("[gray]No users on this page.")
		}
		return
	}
	ui.details.SetText(UserDetails(u, ui.Config.DemoMode))
}

// updateBottomBar updates the bottom bar text based on current focus.
func (ui *DashboardUI) updateBottomBar() {
	if ui.bottomBar == nil {
		return
	}
	focus := focusList
	switch ui.App.GetFocus() {
	case ui.searchInput:
		focus = focusSearch
	case ui.sortSelect:
		focus = focusSort
	}
	ui.bottomBar.SetText(BottomBarText(focus, len(ui.visible) > 0, ui.Dashboard.Store().SearchActive()))
}

func (ui *DashboardUI) userAt(index int) (models.User, bool) {
	if index < 0 || index >= len(ui.visible) {
		return models.User{}, false
	}
	return ui.visible[index], true
}

func (ui *DashboardUI) selectedUser() (models.User, bool) {
	return ui.userAt(ui.userList.GetCurrentItem())
}

// changePage runs a page move in the background. The page label switches to
// the loading text until the fetch completes.
func (ui *DashboardUI) changePage(move func(context.Context) (bool, error)) {
	if ui.Dashboard.Store().SearchActive() {
		return
	}
	ui.pageLabel.SetText(PageLabel(0, 0, false, true))
	go func() {
		ctx, cancel := ui.requestContext()
		defer cancel()
		moved, err := move(ctx)
		ui.App.QueueUpdateDraw(func() {
			if moved {
				ui.userList.SetCurrentItem(0)
			}
			ui.refresh()
			if err != nil {
				ui.notify("Failed to load users", true)
			}
		})
	}()
}

func (ui *DashboardUI) reload() {
	ui.pageLabel.SetText(PageLabel(0, 0, false, true))
	go func() {
		ctx, cancel := ui.requestContext()
		defer cancel()
		err := ui.Dashboard.Load(ctx)
		ui.App.QueueUpdateDraw(func() {
			ui.refresh()
			if err != nil {
				ui.notify("Failed to load users", true)
				return
			}
			ui.notify("Users reloaded", false)
		})
	}()
}

func (ui *DashboardUI) copySelectedEmail() {
	u, ok := ui.selectedUser()
	if !ok {
		return
	}
	if err := encryption.CopyToClipboard(u.Email); err != nil {
		ui.notify(err.Error(), true)
		return
	}
	ui.notify(fmt.Sprintf("Copied %s to clipboard", DisplayEmail(u.Email, ui.Config.DemoMode)), false)
}

// failureMessage maps an operation error to the notification text. Busy
// errors are swallowed since the first submission is still running.
func failureMessage(err error, generic string) (string, bool) {
	if errors.Is(err, dashboard.ErrBusy) {
		return "", false
	}
	return generic, true
}
