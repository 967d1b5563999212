package ui

import (
	"errors"

	"github.com/deathrjj/userhub-tui/dashboard"
	"github.com/deathrjj/userhub-tui/forms"
	"github.com/deathrjj/userhub-tui/models"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	labelFirstName = "First Name:"
	labelLastName  = "Last Name:"
	labelUserEmail = "Email:"

	saveLabel   = "Save Changes"
	savingLabel = "Saving..."
)

func (ui *DashboardUI) editSelected() {
	if u, ok := ui.selectedUser(); ok {
		ui.PromptForEdit(u)
	}
}

// PromptForEdit shows the edit dialog pre-filled from u.
func (ui *DashboardUI) PromptForEdit(u models.User) {
	initial := dashboard.FormFor(u)

	form := tview.NewForm()
	messages := tview.NewTextView().SetDynamicColors(true)

	form.AddInputField(labelFirstName, initial.FirstName, 40, nil, nil)
	form.AddInputField(labelLastName, initial.LastName, 40, nil, nil)
	form.AddInputField(labelUserEmail, initial.Email, 40, nil, nil)

	var screen tview.Primitive
	submitting := false

	form.AddButton(saveLabel, func() {
		if submitting {
			return
		}
		submitted := dashboard.EditForm{
			FirstName: inputText(form, labelFirstName),
			LastName:  inputText(form, labelLastName),
			Email:     inputText(form, labelUserEmail),
		}
		// Invalid input never reaches the API.
		if err := submitted.Validate(); err != nil {
			var ve *forms.ValidationError
			if errors.As(err, &ve) {
				messages.SetText(FieldErrors(ve.Fields, "first_name", "last_name", "email"))
			}
			return
		}

		messages.SetText("")
		submitting = true
		saveButton := form.GetButton(0)
		saveButton.SetLabel(savingLabel)

		go func() {
			ctx, cancel := ui.requestContext()
			defer cancel()
			err := ui.Dashboard.Edit(ctx, u.ID, submitted)
			ui.App.QueueUpdateDraw(func() {
				submitting = false
				saveButton.SetLabel(saveLabel)
				if err != nil {
					if msg, show := failureMessage(err, "Failed to update user"); show {
						ui.notify(msg, true)
						messages.SetText(StatusText(msg, true))
					}
					ui.App.SetRoot(screen, true)
					return
				}
				ui.showLayout()
				ui.refresh()
				ui.notify("User updated successfully", false)
			})
		}()
	})

	form.AddButton("Cancel", func() {
		if submitting {
			return
		}
		ui.showLayout()
	})

	form.SetCancelFunc(func() {
		if !submitting {
			ui.showLayout()
		}
	})

	form.SetBorder(true).
		SetTitle("Edit User - make changes to the user's information").
		SetTitleAlign(tview.AlignCenter)
	form.SetFieldBackgroundColor(tcell.ColorDarkBlue)

	panel := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(messages, 3, 0, false)
	screen = Centered(panel, 64, 14)

	ui.App.SetRoot(screen, true)
	ui.App.SetFocus(form)
}
