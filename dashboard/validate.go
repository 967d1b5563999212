package dashboard

import (
	"github.com/deathrjj/userhub-tui/forms"
	"github.com/deathrjj/userhub-tui/models"
)

// EditForm is the content of the edit dialog.
type EditForm struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

// FormFor pre-fills an edit form from u.
func FormFor(u models.User) EditForm {
	return EditForm{FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
}

// Patch turns the form into an update of all three fields.
func (f EditForm) Patch() models.UserPatch {
	first, last, email := f.FirstName, f.LastName, f.Email
	return models.UserPatch{FirstName: &first, LastName: &last, Email: &email}
}

// Validate reports a *forms.ValidationError when a field is missing or the
// email is malformed.
func (f EditForm) Validate() error {
	return forms.Validate(f)
}
