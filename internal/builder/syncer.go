// SPDX-License-Identifier: Apache-2.0

package builder

import "github.com/formkeeper/formkeeper/models"

// FromPersisted reconciles the server's component records into an editing
// list: owning-form id and position are dropped (list order is the only
// source of position), the transient editing flag defaults to off, and
// server-assigned ids are reused so later saves stay addressable.
//
// Records whose type falls outside the closed enumeration are skipped — a
// bad row is a data-integrity problem, not a reason to refuse the editor.
// Runs once per editor mount; re-running it would stomp in-progress edits
// with stale server data.
func FromPersisted(components []models.Component) []models.FormComponent {
	placed := make([]models.FormComponent, 0, len(components))
	for _, c := range components {
		if _, err := models.ParseComponentType(string(c.Type)); err != nil {
			continue
		}
		placed = append(placed, models.FormComponent{
			ID:      c.ID,
			Type:    c.Type,
			Value:   c.Value,
			Editing: false,
		})
	}
	return placed
}

// ToPersisted shapes the placed list for a replace-all save: the editing
// flag is stripped and no form id is attached — the server derives the
// owning form from the request path and never trusts one in the body.
// List order carries position.
func ToPersisted(placed []models.FormComponent) []models.Component {
	components := make([]models.Component, 0, len(placed))
	for _, c := range placed {
		components = append(components, models.Component{
			ID:    c.ID,
			Type:  c.Type,
			Value: c.Value,
		})
	}
	return components
}
