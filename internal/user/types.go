package user

import "timeplanner/internal/model"

// Account is a registered user in the directory.
type Account struct {
	ID      string
	Name    string
	Surname string
}

// DisplayName renders the account as "Name Surname".
func (a Account) DisplayName() string {
	return model.User{Name: a.Name, Surname: a.Surname}.DisplayName()
}

// Scope converts the account into a request scope.
func (a Account) Scope() model.Scope {
	return model.Scope{
		UserID:      a.ID,
		Name:        a.Name,
		Surname:     a.Surname,
		DisplayName: a.DisplayName(),
	}
}

// --- UseCase Inputs ---

type RegisterInput struct {
	Name    string
	Surname string
}

// --- UseCase Outputs ---

type RegisterOutput struct {
	Account Account
}

type ListOutput struct {
	Accounts []Account
}
