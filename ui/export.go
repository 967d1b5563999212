package ui

import (
	"fmt"
	"strings"

	"github.com/deathrjj/userhub-tui/encryption"
	"github.com/rivo/tview"
)

const labelRecipient = "age or SSH public key:"

// Export encrypts the visible users for the configured recipients and places
// the armored result on the clipboard. Without configured recipients the user
// is asked for one first.
func (ui *DashboardUI) Export() {
	if len(ui.Config.ExportRecipients) == 0 {
		ui.PromptForRecipient()
		return
	}
	ui.exportTo(ui.Config.ExportRecipients)
}

// PromptForRecipient shows a form to enter an export recipient
func (ui *DashboardUI) PromptForRecipient() {
	form := tview.NewForm()

	form.AddInputField(labelRecipient, "", 60, nil, nil)

	form.AddButton("Export", func() {
		key := strings.TrimSpace(inputText(form, labelRecipient))
		if key == "" {
			errorModal := CreateErrorModal(ui.App, "A recipient key is required", form)
			ui.App.SetRoot(errorModal, true)
			return
		}
		if _, err := encryption.ParseRecipients([]string{key}); err != nil {
			errorModal := CreateErrorModal(ui.App, err.Error(), form)
			ui.App.SetRoot(errorModal, true)
			return
		}
		// Remember it for the rest of the session.
		ui.Config.ExportRecipients = []string{key}
		ui.showLayout()
		ui.exportTo(ui.Config.ExportRecipients)
	})

	form.AddButton("Cancel", func() {
		ui.showLayout()
	})

	form.SetBorder(true).SetTitle("Export Recipient").SetTitleAlign(tview.AlignCenter)
	ui.App.SetRoot(form, true)
	ui.App.SetFocus(form)
}

func (ui *DashboardUI) exportTo(keys []string) {
	users := ui.Dashboard.View()
	go func() {
		armored, err := encryption.EncryptUsers(users, keys)
		if err == nil {
			err = encryption.CopyToClipboard(armored)
		}
		ui.App.QueueUpdateDraw(func() {
			if err != nil {
				modal := tview.NewModal().
					SetText(fmt.Sprintf("Export failed: %v", err)).
					AddButtons([]string{"OK"}).
					SetDoneFunc(func(buttonIndex int, buttonLabel string) {
						ui.showLayout()
					})
				ui.App.SetRoot(modal, false)
				return
			}
			ui.notify(fmt.Sprintf("Exported %d users to clipboard", len(users)), false)
		})
	}()
}
