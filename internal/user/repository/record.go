package repository

import "timeplanner/internal/user"

// AccountRecord is the raw document shape of a directory entry.
type AccountRecord struct {
	ID      string `firestore:"id" json:"id"`
	Name    string `firestore:"name" json:"name"`
	Surname string `firestore:"surname" json:"surname"`
}

// EncodeAccount converts a domain account into its wire record.
func EncodeAccount(a user.Account) AccountRecord {
	return AccountRecord{ID: a.ID, Name: a.Name, Surname: a.Surname}
}

// Decode converts a wire record back into a domain account.
func (r AccountRecord) Decode() user.Account {
	return user.Account{ID: r.ID, Name: r.Name, Surname: r.Surname}
}
