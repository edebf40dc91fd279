// SPDX-License-Identifier: Apache-2.0

// Package builder implements the client-side form composition core: the
// drag-reorder transition function, the editing session that owns the
// canonical placed-component list, and the load/save reconciliation with the
// persisted representation.
//
// Everything in this package is a pure list transform. The session holds the
// only mutable reference and replaces its list atomically, so no two callers
// ever alias the same backing array.
package builder

import (
	"github.com/formkeeper/formkeeper/internal/catalog"
	"github.com/formkeeper/formkeeper/internal/utils"
	"github.com/formkeeper/formkeeper/models"
)

// ListID names one of the two lists participating in a drag gesture.
type ListID string

const (
	// ListPalette is the fixed component catalog. Drag source only.
	ListPalette ListID = "palette"

	// ListForm is the placed-component sequence. Drag source and destination.
	ListForm ListID = "form"
)

// DragPoint addresses one position inside one of the two lists.
type DragPoint struct {
	List  ListID
	Index int
}

// DragResult describes a completed drag gesture. A nil Destination means the
// item was dropped outside any list (or the gesture was cancelled).
type DragResult struct {
	Source      DragPoint
	Destination *DragPoint
}

var ids = utils.NewUUIDGenerator()

// ApplyDrag computes the next placed-component list for a completed drag
// gesture. The palette is never mutated; the input list is never mutated
// either — the result is always a fresh slice (or the input unchanged for
// no-op gestures).
//
// Transition rules, in evaluation order:
//  1. nil destination → no-op.
//  2. palette → palette → no-op (the palette is not reorderable).
//  3. form → form → single-element relocation: splice out the source index,
//     then splice the element back in at the destination index of the
//     already-shortened list.
//  4. palette → form → insertion: a new component of the palette entry's
//     type, fresh id, editing off, empty value.
//  5. form → palette → removal; the dragged element simply disappears.
//
// Index bounds are caller-guaranteed by the originating gesture, with one
// exception honoured here: an insertion index equal to the list length
// appends.
func ApplyDrag(result DragResult, placed []models.FormComponent) []models.FormComponent {
	src, dst := result.Source, result.Destination

	if dst == nil {
		return placed
	}
	if src.List == ListPalette && dst.List == ListPalette {
		return placed
	}

	switch {
	case src.List == ListForm && dst.List == ListForm:
		return moveComponent(placed, src.Index, dst.Index)

	case src.List == ListPalette && dst.List == ListForm:
		entry := catalog.Palette()[src.Index]
		component := models.FormComponent{
			ID:      ids.Generate(),
			Type:    entry.Type,
			Editing: false,
		}
		return insertComponent(placed, dst.Index, component)

	case src.List == ListForm && dst.List == ListPalette:
		return removeComponent(placed, src.Index)
	}

	return placed
}

// moveComponent relocates a single element: splice-out then splice-in.
// Indices after the removal point shift down by one before the insertion
// offset is applied.
func moveComponent(list []models.FormComponent, from, to int) []models.FormComponent {
	if from < 0 || from >= len(list) {
		return list
	}

	next := make([]models.FormComponent, 0, len(list))
	next = append(next, list[:from]...)
	next = append(next, list[from+1:]...)

	return insertComponent(next, to, list[from])
}

func insertComponent(list []models.FormComponent, at int, c models.FormComponent) []models.FormComponent {
	if at < 0 {
		at = 0
	}
	if at > len(list) {
		at = len(list) // append semantics
	}

	next := make([]models.FormComponent, 0, len(list)+1)
	next = append(next, list[:at]...)
	next = append(next, c)
	next = append(next, list[at:]...)
	return next
}

func removeComponent(list []models.FormComponent, at int) []models.FormComponent {
	if at < 0 || at >= len(list) {
		return list
	}

	next := make([]models.FormComponent, 0, len(list)-1)
	next = append(next, list[:at]...)
	next = append(next, list[at+1:]...)
	return next
}
