package builder

import (
	"testing"

	"github.com/formkeeper/formkeeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPersisted(t *testing.T) {
	components := []models.Component{
		{ID: "a", FormID: "f1", Type: models.Heading, Value: "Contact Us", Position: 0},
		{ID: "b", FormID: "f1", Type: models.Email, Position: 1},
		{ID: "c", FormID: "f1", Type: "carousel", Position: 2}, // outside the enumeration
		{ID: "d", FormID: "f1", Type: models.Submit, Position: 3},
	}

	placed := FromPersisted(components)

	require.Len(t, placed, 3)
	assert.Equal(t, []string{"a", "b", "d"}, idsOf(placed))
	assert.Equal(t, "Contact Us", placed[0].Value)
	for _, c := range placed {
		assert.False(t, c.Editing)
	}
}

func TestToPersisted_StripsTransientState(t *testing.T) {
	placed := []models.FormComponent{
		{ID: "a", Type: models.Heading, Value: "Hello", Editing: true},
		{ID: "b", Type: models.Submit},
	}

	components := ToPersisted(placed)

	require.Len(t, components, 2)
	for _, c := range components {
		assert.Empty(t, c.FormID) // server derives the owning form itself
	}
	assert.Equal(t, "Hello", components[0].Value)
	assert.Equal(t, "a", components[0].ID)
}

// Loading a saved list and immediately shaping it for save again must keep
// identical order and content.
func TestLoadSaveRoundTrip(t *testing.T) {
	saved := []models.Component{
		{ID: "a", FormID: "f1", Type: models.Heading, Value: "Survey", Position: 0},
		{ID: "b", FormID: "f1", Type: models.Fullname, Position: 1},
		{ID: "c", FormID: "f1", Type: models.Calendar, Position: 2},
		{ID: "d", FormID: "f1", Type: models.Submit, Position: 3},
	}

	again := ToPersisted(FromPersisted(saved))

	require.Len(t, again, len(saved))
	for i := range saved {
		assert.Equal(t, saved[i].ID, again[i].ID)
		assert.Equal(t, saved[i].Type, again[i].Type)
		assert.Equal(t, saved[i].Value, again[i].Value)
	}
}
