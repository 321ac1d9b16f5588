// Package models defines the records stored by the local keyring.
package models

import (
	"fmt"
	"time"
)

// Account is an ID token stored for one (client id, subject) pair.
type Account struct {
	ID       string
	ClientID string
	Subject  string
	Email    string
	Name     string
	IDToken  string

	// Authorized is set once the account has been handed to ClientID.
	Authorized bool

	CreatedAt  time.Time
	LastUsedAt *time.Time
}

// Label is the human-readable account name: the email when known, then the
// display name, then the subject.
func (a Account) Label() string {
	switch {
	case a.Email != "" && a.Name != "":
		return fmt.Sprintf("%s <%s>", a.Name, a.Email)
	case a.Email != "":
		return a.Email
	case a.Name != "":
		return a.Name
	}
	return a.Subject
}
