// SPDX-License-Identifier: Apache-2.0

package builder

import "github.com/formkeeper/formkeeper/models"

// Session owns the canonical ordered placed-component list for one editing
// session. SetComponents is the sole mutation primitive: every logical
// operation is expressed as "compute next list, then replace", so untouched
// elements keep their order and identity and no caller ever holds an aliased
// mutable view of the canonical list.
//
// The session is single-user and event-driven; it performs no locking.
type Session struct {
	placed []models.FormComponent
}

func NewSession() *Session {
	return &Session{}
}

// Components returns the current placed list. The returned slice is a copy;
// mutating it does not affect the session.
func (s *Session) Components() []models.FormComponent {
	out := make([]models.FormComponent, len(s.placed))
	copy(out, s.placed)
	return out
}

func (s *Session) Len() int {
	return len(s.placed)
}

// At returns the component at index i and whether the index is in range.
func (s *Session) At(i int) (models.FormComponent, bool) {
	if i < 0 || i >= len(s.placed) {
		return models.FormComponent{}, false
	}
	return s.placed[i], true
}

// SetComponents atomically replaces the full placed list.
func (s *Session) SetComponents(list []models.FormComponent) {
	s.placed = list
}

// ApplyDrag feeds a completed drag gesture through the transition function
// and replaces the list with the result.
func (s *Session) ApplyDrag(result DragResult) {
	s.SetComponents(ApplyDrag(result, s.placed))
}

// ToggleEditing flips the transient editing flag of the component with the
// given id. No-op if the id is absent.
func (s *Session) ToggleEditing(id string) {
	s.SetComponents(toggleEditing(s.placed, id))
}

// SetValue sets the free-text value of the component with the given id.
// Used for live typing in a text-bearing component's inline editor; the
// commit is the caller toggling editing back off. No-op if the id is absent.
func (s *Session) SetValue(id, value string) {
	s.SetComponents(setValue(s.placed, id, value))
}

// RemoveAt deletes the component at the given index. This is the explicit
// remove action, distinct from drag-out removal but the same splice.
func (s *Session) RemoveAt(index int) {
	s.SetComponents(removeComponent(s.placed, index))
}

func toggleEditing(list []models.FormComponent, id string) []models.FormComponent {
	next := make([]models.FormComponent, len(list))
	for i, c := range list {
		if c.ID == id {
			c.Editing = !c.Editing
		}
		next[i] = c
	}
	return next
}

func setValue(list []models.FormComponent, id, value string) []models.FormComponent {
	next := make([]models.FormComponent, len(list))
	for i, c := range list {
		if c.ID == id {
			c.Value = value
		}
		next[i] = c
	}
	return next
}
