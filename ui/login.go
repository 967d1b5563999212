package ui

import (
	"errors"
	"fmt"

	"github.com/deathrjj/userhub-tui/forms"
	"github.com/deathrjj/userhub-tui/session"
	"github.com/rivo/tview"
)

const (
	labelEmail    = "Email:"
	labelPassword = "Password:"
)

// PromptForLogin shows a form to sign in
func (ui *DashboardUI) PromptForLogin() {
	form := tview.NewForm()
	messages := tview.NewTextView().SetDynamicColors(true)

	form.AddInputField(labelEmail, ui.Config.Email, 40, nil, nil)
	form.AddPasswordField(labelPassword, ui.Config.Password, 40, '*', nil)

	var screen tview.Primitive
	submitting := false

	form.AddButton("Login", func() {
		if submitting {
			return
		}
		creds := session.Credentials{
			Email:    inputText(form, labelEmail),
			Password: inputText(form, labelPassword),
		}
		// Field checks happen before anything goes over the wire.
		if err := forms.Validate(creds); err != nil {
			var ve *forms.ValidationError
			if errors.As(err, &ve) {
				messages.SetText(FieldErrors(ve.Fields, "email", "password"))
				return
			}
		}
		messages.SetText("[yellow]Signing in...")
		submitting = true

		go func() {
			ctx, cancel := ui.requestContext()
			defer cancel()
			err := ui.Session.SignIn(ctx, creds)
			ui.App.QueueUpdateDraw(func() {
				submitting = false
				if err != nil {
					messages.SetText("")
					errorModal := CreateErrorModal(ui.App, fmt.Sprintf("Login failed: %v", err), screen)
					ui.App.SetRoot(errorModal, false)
					return
				}
				ui.ShowUsers()
			})
		}()
	})

	form.AddButton("Quit", func() {
		ui.App.Stop()
	})

	form.SetBorder(true).SetTitle("UserHub Login").SetTitleAlign(tview.AlignCenter)

	panel := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(messages, 2, 0, false)
	screen = Centered(panel, 60, 11)

	ui.App.SetRoot(screen, true)
	ui.App.SetFocus(form)
}

// Logout forgets the session and the search term, then returns to the login
// form.
func (ui *DashboardUI) Logout() {
	ui.Session.SignOut()
	ui.Dashboard.Search("")
	ui.layout = nil
	ui.PromptForLogin()
}
