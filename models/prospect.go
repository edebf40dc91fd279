package models

import "time"

// AnswerKey is the canonical field name under which a respondent's input for
// a given component type is stored. Note the renaming: a calendar component
// stores its answer under "date".
type AnswerKey string

const (
	KeyFirstname AnswerKey = "firstname"
	KeyLastname  AnswerKey = "lastname"
	KeyPhone     AnswerKey = "phone"
	KeyEmail     AnswerKey = "email"
	KeyGender    AnswerKey = "gender"
	KeyDate      AnswerKey = "date"
)

// AnswerKeys returns the answer keys a component of this type contributes.
// Structural and text-bearing types contribute none.
func (t ComponentType) AnswerKeys() []AnswerKey {
	switch t {
	case Fullname:
		return []AnswerKey{KeyFirstname, KeyLastname}
	case Phone:
		return []AnswerKey{KeyPhone}
	case Email:
		return []AnswerKey{KeyEmail}
	case Gender:
		return []AnswerKey{KeyGender}
	case Calendar:
		return []AnswerKey{KeyDate}
	default:
		return nil
	}
}

// Prospect is one respondent's submitted answers to a published form.
// Which fields are set depends on the form's component types; fields the
// form does not ask for stay nil. Created once, never updated.
type Prospect struct {
	ID        string    `json:"id,omitempty"`
	FormID    string    `json:"-"`
	Firstname *string   `json:"firstname,omitempty"`
	Lastname  *string   `json:"lastname,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Gender    *string   `json:"gender,omitempty"`
	Date      *string   `json:"date,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Field returns a pointer to the prospect field addressed by key, or nil for
// an unknown key. Used by the submission mapper when shaping raw answers.
func (p *Prospect) Field(key AnswerKey) **string {
	switch key {
	case KeyFirstname:
		return &p.Firstname
	case KeyLastname:
		return &p.Lastname
	case KeyPhone:
		return &p.Phone
	case KeyEmail:
		return &p.Email
	case KeyGender:
		return &p.Gender
	case KeyDate:
		return &p.Date
	default:
		return nil
	}
}
