package models

import "time"

// DefaultFormTitle is assigned to every newly created form until a heading
// component overrides it on save.
const DefaultFormTitle = "Untitled"

// Form is an owned, titled container for an ordered component list.
// Title is kept in sync with the value of the last heading component
// whenever the component list is saved; with no heading present it keeps
// its previous value.
type Form struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// FormWithComponents is the editor-load payload: the form record plus its
// components in saved order.
type FormWithComponents struct {
	Form       `json:"form"`
	Components []Component `json:"components"`
}
