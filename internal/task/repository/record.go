package repository

import (
	"fmt"
	"time"

	"timeplanner/internal/model"
)

// WireTimeLayout is how task instants are serialized in documents,
// e.g. "2023-03-15 09:30 +02:00".
const WireTimeLayout = "2006-01-02 15:04 -07:00"

// UserRecord is the stored form of an invitation reference.
type UserRecord struct {
	Name    string `firestore:"name" json:"name"`
	Surname string `firestore:"surname" json:"surname"`
}

// ColorRecord is the stored form of a task color.
type ColorRecord struct {
	Label string `firestore:"label" json:"label"`
	Code  string `firestore:"code" json:"code"`
}

// TaskRecord is the raw document shape of a task. Dates travel as
// formatted strings; parsing happens only at this boundary.
type TaskRecord struct {
	ID          string       `firestore:"id" json:"id"`
	Title       string       `firestore:"title" json:"title"`
	Description string       `firestore:"description,omitempty" json:"description,omitempty"`
	Color       ColorRecord  `firestore:"color" json:"color"`
	StartDate   string       `firestore:"startDate" json:"startDate"`
	EndDate     string       `firestore:"endDate" json:"endDate"`
	Invitations []UserRecord `firestore:"invitations" json:"invitations"`
	From        string       `firestore:"from,omitempty" json:"from,omitempty"`
	Offset      *int         `firestore:"offset,omitempty" json:"offset,omitempty"`
}

// EncodeTask converts a domain task into its wire record.
func EncodeTask(t model.Task) TaskRecord {
	return TaskRecord{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Color:       ColorRecord{Label: t.Color.Label, Code: t.Color.Code},
		StartDate:   t.StartDate.Format(WireTimeLayout),
		EndDate:     t.EndDate.Format(WireTimeLayout),
		Invitations: EncodeUsers(t.Invitations),
		From:        t.From,
		Offset:      t.Offset,
	}
}

// Decode converts a wire record back into a domain task.
func (r TaskRecord) Decode() (model.Task, error) {
	start, err := time.Parse(WireTimeLayout, r.StartDate)
	if err != nil {
		return model.Task{}, fmt.Errorf("record %s: bad startDate %q: %w", r.ID, r.StartDate, err)
	}
	end, err := time.Parse(WireTimeLayout, r.EndDate)
	if err != nil {
		return model.Task{}, fmt.Errorf("record %s: bad endDate %q: %w", r.ID, r.EndDate, err)
	}

	return model.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Color:       model.Color{Label: r.Color.Label, Code: r.Color.Code},
		StartDate:   start,
		EndDate:     end,
		Invitations: DecodeUsers(r.Invitations),
		From:        r.From,
		Offset:      r.Offset,
	}, nil
}

// EncodeUsers converts invitation references to their stored form.
func EncodeUsers(users []model.User) []UserRecord {
	recs := make([]UserRecord, len(users))
	for i, u := range users {
		recs[i] = UserRecord{Name: u.Name, Surname: u.Surname}
	}
	return recs
}

// DecodeUsers converts stored invitation references to domain users.
func DecodeUsers(recs []UserRecord) []model.User {
	users := make([]model.User, len(recs))
	for i, r := range recs {
		users[i] = model.User{Name: r.Name, Surname: r.Surname}
	}
	return users
}
