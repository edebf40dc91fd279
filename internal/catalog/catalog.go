// Package catalog is the static registry of form component types: the
// palette the builder drags from, plus per-type display metadata.
package catalog

import "github.com/formkeeper/formkeeper/models"

// Entry describes one palette item. The palette itself is fixed: it is a
// drag source only and is never mutated by any drag operation.
type Entry struct {
	Type  models.ComponentType
	Icon  string
	Label string
}

// Palette order is part of the builder contract: drag sources are addressed
// by index into this slice.
var palette = []Entry{
	{Type: models.Heading, Icon: "H1", Label: "Heading"},
	{Type: models.Subheading, Icon: "H3", Label: "Subheading"},
	{Type: models.Description, Icon: "¶", Label: "Description"},
	{Type: models.Fullname, Icon: "@", Label: "Full Name"},
	{Type: models.Phone, Icon: "☏", Label: "Phone"},
	{Type: models.Email, Icon: "✉", Label: "Email"},
	{Type: models.Gender, Icon: "⚥", Label: "Gender"},
	{Type: models.Calendar, Icon: "▦", Label: "Calendar"},
	{Type: models.Submit, Icon: "✔", Label: "Submit"},
}

// Palette returns the fixed ordered list of available component types.
// Callers must not mutate the returned slice.
func Palette() []Entry {
	return palette
}

// Lookup returns the display metadata for the given component type.
// ok is false for a type outside the closed enumeration; callers render or
// skip such entries rather than failing.
func Lookup(t models.ComponentType) (Entry, bool) {
	for _, e := range palette {
		if e.Type == t {
			return e, true
		}
	}
	return Entry{}, false
}
