package models

import "fmt"

// ComponentType is the closed set of form component kinds.
// The value determines both the editing affordances in the builder
// and which respondent answer keys the component contributes.
type ComponentType string

const (
	// Heading is the form title block. Its value mirrors the form title
	// on every save.
	Heading ComponentType = "heading"

	// Subheading is a secondary title block.
	Subheading ComponentType = "subheading"

	// Description is a free-text paragraph block.
	Description ComponentType = "description"

	// Fullname collects the respondent's first and last name.
	Fullname ComponentType = "fullname"

	// Email collects the respondent's email address.
	Email ComponentType = "email"

	// Gender collects the respondent's gender.
	Gender ComponentType = "gender"

	// Calendar collects a date. Its answer is stored under the "date" key.
	Calendar ComponentType = "calendar"

	// Phone collects the respondent's phone number.
	Phone ComponentType = "phone"

	// Submit is the form's submit button. It carries no value and no answer.
	Submit ComponentType = "submit"
)

// ParseComponentType validates a raw type tag against the closed enumeration.
func ParseComponentType(s string) (ComponentType, error) {
	switch t := ComponentType(s); t {
	case Heading, Subheading, Description, Fullname, Email, Gender, Calendar, Phone, Submit:
		return t, nil
	default:
		return "", fmt.Errorf("unknown component type %q", s)
	}
}

// HasValue reports whether the component type carries free text in Value.
func (t ComponentType) HasValue() bool {
	switch t {
	case Heading, Subheading, Description:
		return true
	default:
		return false
	}
}

// FormComponent is a component instance placed in the builder's editing
// session. ID is generated client-side at insertion time and is stable for
// the life of the session; on load the server-assigned id is reused so later
// updates stay addressable. Editing is transient UI state and is stripped
// before every save.
type FormComponent struct {
	ID      string        `json:"id"`
	Type    ComponentType `json:"type"`
	Value   string        `json:"value,omitempty"`
	Editing bool          `json:"editing,omitempty"`
}

// Component is the persisted representation of a placed component.
// Position is the element's index in the last replace-all write; reads are
// ordered by it so the builder sees the list exactly as it was saved.
type Component struct {
	ID       string        `json:"id"`
	FormID   string        `json:"formId,omitempty"`
	Type     ComponentType `json:"type"`
	Value    string        `json:"value,omitempty"`
	Position int           `json:"-"`
}
