package ui

import (
	"fmt"

	"github.com/deathrjj/userhub-tui/models"
	"github.com/rivo/tview"
)

func (ui *DashboardUI) deleteSelected() {
	if u, ok := ui.selectedUser(); ok {
		ui.ConfirmDelete(u)
	}
}

// DeletePrompt is the confirmation text for deleting u.
func DeletePrompt(u models.User) string {
	return fmt.Sprintf("Are you sure?\n\nThis will permanently delete %s's account.\nThis action cannot be undone.", u.FullName())
}

// ConfirmDelete asks for confirmation and deletes u.
func (ui *DashboardUI) ConfirmDelete(u models.User) {
	submitting := false
	modal := tview.NewModal().
		SetText(DeletePrompt(u)).
		AddButtons([]string{"Cancel", "Delete"})

	modal.SetDoneFunc(func(buttonIndex int, buttonLabel string) {
		if submitting {
			return
		}
		if buttonLabel != "Delete" {
			ui.showLayout()
			return
		}

		submitting = true
		modal.SetText(DeletePrompt(u) + "\n\nDeleting...")

		go func() {
			ctx, cancel := ui.requestContext()
			defer cancel()
			err := ui.Dashboard.Delete(ctx, u.ID)
			ui.App.QueueUpdateDraw(func() {
				submitting = false
				ui.showLayout()
				ui.refresh()
				if err != nil {
					if msg, show := failureMessage(err, "Failed to delete user"); show {
						ui.notify(msg, true)
					}
					return
				}
				ui.notify("User deleted successfully", false)
			})
		}()
	})

	ui.App.SetRoot(modal, false)
}
