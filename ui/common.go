package ui

import (
	"fmt"
	"strings"

	"github.com/deathrjj/userhub-tui/models"
	"github.com/rivo/tview"
)

// UpdateUserList refreshes the list with the visible users. Each item shows
// the full name with the email as secondary text.
func UpdateUserList(list *tview.List, users []models.User, demoMode bool) {
	current := list.GetCurrentItem()
	list.Clear()

	for _, user := range users {
		list.AddItem(UserItemText(user), "  "+DisplayEmail(user.Email, demoMode), 0, nil)
	}

	if n := list.GetItemCount(); n > 0 {
		if current >= n {
			current = n - 1
		}
		if current < 0 {
			current = 0
		}
		list.SetCurrentItem(current)
	}
}

// UserItemText is the main text of a list item.
func UserItemText(u models.User) string {
	return fmt.Sprintf("[white]%s [gray](#%d)", tview.Escape(u.FullName()), u.ID)
}

// DisplayEmail returns email as shown on screen. In demo mode all characters
// after the first two are censored.
func DisplayEmail(email string, demoMode bool) string {
	runes := []rune(email)
	if !demoMode || len(runes) <= 2 {
		return email
	}
	return string(runes[:2]) + strings.Repeat("*", len(runes)-2)
}

// UserDetails renders the details pane for u.
func UserDetails(u models.User, demoMode bool) string {
	avatar := u.Avatar
	if avatar == "" {
		avatar = "[gray]none"
	}
	return fmt.Sprintf("[yellow]ID:[white]     %d\n[yellow]Name:[white]   %s\n[yellow]Email:[white]  %s\n[yellow]Avatar:[white] %s",
		u.ID, tview.Escape(u.FullName()), tview.Escape(DisplayEmail(u.Email, demoMode)), tview.Escape(avatar))
}

// PageLabel renders the pagination indicator. Pagination only works inside the
// loaded page while searching, so the indicator is hidden then.
func PageLabel(current, total int, searching, loading bool) string {
	if loading {
		return "[yellow]Loading users..."
	}
	if searching {
		return ""
	}
	prev, next := "[gray]← Previous", "[gray]Next →"
	if current > 1 {
		prev = "[white]← Previous"
	}
	if current < total {
		next = "[white]Next →"
	}
	return fmt.Sprintf("%s  [white]Page %d of %d  %s", prev, current, total, next)
}

// Focus areas of the users screen.
const (
	focusList = iota
	focusSearch
	focusSort
)

// BottomBarText returns the key help for the focused area.
func BottomBarText(focus int, hasUsers, searching bool) string {
	switch focus {
	case focusSearch:
		return "Type to search | ↑/↓/⏎ : Back to List | ⇥ : Sort | Esc: Clear"
	case focusSort:
		return "⏎ : Choose Sort | ⇥ : Back to List"
	}
	text := "↑/↓: Move Highlight"
	if hasUsers {
		text += " | e: Edit | d: Delete | c: Copy Email"
	}
	if !searching {
		text += " | ←/→: Page"
	}
	return text + " | /: Search | s: Sort | x: Export | r: Reload | L: Logout | q: Quit"
}

// StatusText renders a notification line.
func StatusText(msg string, isErr bool) string {
	if msg == "" {
		return ""
	}
	if isErr {
		return "[red]" + tview.Escape(msg)
	}
	return "[green]" + tview.Escape(msg)
}

// CreateErrorModal creates a modal to display error messages
func CreateErrorModal(app *tview.Application, message string, returnFocus tview.Primitive) *tview.Modal {
	return tview.NewModal().
		SetText(message).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			app.SetRoot(returnFocus, true)
		})
}

// Centered wraps p in a flex layout that keeps it in the middle of the screen.
func Centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}

// FieldErrors renders per-field validation messages in the given field order.
func FieldErrors(messages map[string]string, order ...string) string {
	var lines []string
	for _, f := range order {
		if msg := messages[f]; msg != "" {
			lines = append(lines, "[red]"+tview.Escape(msg))
		}
	}
	return strings.Join(lines, "\n")
}

// inputText returns the text of the input field with the given label.
func inputText(form *tview.Form, label string) string {
	if field, ok := form.GetFormItemByLabel(label).(*tview.InputField); ok {
		return field.GetText()
	}
	return ""
}
