package models

import "fmt"

// SortField selects the ordering of the user view.
type SortField string

const (
	SortAll       SortField = "all"
	SortFirstName SortField = "first_name"
	SortLastName  SortField = "last_name"
	SortEmail     SortField = "email"
)

// SortFields lists every criterion in the order shown in the sort drop-down.
var SortFields = []SortField{SortAll, SortFirstName, SortLastName, SortEmail}

// Label is the human readable name of the criterion.
func (f SortField) Label() string {
	switch f {
	case SortFirstName:
		return "First Name (A-Z)"
	case SortLastName:
		return "Last Name (A-Z)"
	case SortEmail:
		return "Email"
	default:
		return "All Users"
	}
}

// Key returns the field of u the criterion orders by.
func (f SortField) Key(u User) string {
	switch f {
	case SortFirstName:
		return u.FirstName
	case SortLastName:
		return u.LastName
	case SortEmail:
		return u.Email
	default:
		return ""
	}
}

// ParseSortField converts a criterion name into a SortField.
func ParseSortField(s string) (SortField, error) {
	for _, f := range SortFields {
		if string(f) == s {
			return f, nil
		}
	}
	return SortAll, fmt.Errorf("unknown sort field %q", s)
}
