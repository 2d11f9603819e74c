package model

import "strings"

// User is an invitation reference: the {name, surname} pair stored on
// task documents. Durable identity lives in the user directory, which
// maps these to opaque IDs.
type User struct {
	Name    string
	Surname string
}

// DisplayName is the concatenated "name surname" form used on the wire
// (the `from` tag and the original per-user collection keys).
func (u User) DisplayName() string {
	return strings.TrimSpace(u.Name + " " + u.Surname)
}

// UserFromDisplayName splits a display name back into its parts.
// Everything after the first space becomes the surname.
func UserFromDisplayName(displayName string) User {
	name, surname, _ := strings.Cut(strings.TrimSpace(displayName), " ")
	return User{Name: name, Surname: surname}
}

// Scope carries the authenticated caller's identity through a request.
type Scope struct {
	UserID      string
	Name        string
	Surname     string
	DisplayName string
}

// User returns the invitation-reference form of the scope's identity.
func (s Scope) User() User {
	return User{Name: s.Name, Surname: s.Surname}
}
