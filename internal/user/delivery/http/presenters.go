package http

import (
	"timeplanner/internal/user"
)

// --- Request DTOs ---

type registerReq struct {
	Name    string `json:"name"    binding:"required,min=1,max=100"`
	Surname string `json:"surname" binding:"max=100"`
}

func (r registerReq) validate() error { return nil }

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Name:    r.Name,
		Surname: r.Surname,
	}
}

// --- Response DTOs ---

type accountResp struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	DisplayName string `json:"display_name"`
}

func newAccountResp(a user.Account) accountResp {
	return accountResp{
		ID:          a.ID,
		Name:        a.Name,
		Surname:     a.Surname,
		DisplayName: a.DisplayName(),
	}
}

type registerResp struct {
	User accountResp `json:"user"`
}

func (h *handler) newRegisterResp(out user.RegisterOutput) registerResp {
	return registerResp{User: newAccountResp(out.Account)}
}

type listResp struct {
	Users []accountResp `json:"users"`
}

func (h *handler) newListResp(out user.ListOutput) listResp {
	users := make([]accountResp, len(out.Accounts))
	for i, a := range out.Accounts {
		users[i] = newAccountResp(a)
	}
	return listResp{Users: users}
}
