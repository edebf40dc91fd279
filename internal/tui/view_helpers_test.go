package tui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/formkeeper/formkeeper/internal/adapter"
	"github.com/formkeeper/formkeeper/models"
)

func TestShareLink(t *testing.T) {
	assert.Equal(t, "https://forms.example.com/api/preview/form-1",
		shareLink("https://forms.example.com", "form-1"))
	assert.Equal(t, "https://forms.example.com/api/preview/form-1",
		shareLink("https://forms.example.com/", "form-1"),
		"trailing slash must not double up")
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "long te...", fitText("long text that overflows", 10))
	assert.Equal(t, "lo", fitText("long", 2))
	assert.Equal(t, "unlimited", fitText("unlimited", 0))
}

func TestValueOrDash(t *testing.T) {
	v := "set"
	empty := ""
	assert.Equal(t, "set", valueOrDash(&v))
	assert.Equal(t, "-", valueOrDash(&empty))
	assert.Equal(t, "-", valueOrDash(nil))
}

func TestLastHeadingValue(t *testing.T) {
	placed := []models.FormComponent{
		{ID: "c-1", Type: models.Heading, Value: "First"},
		{ID: "c-2", Type: models.Email},
		{ID: "c-3", Type: models.Heading, Value: "Second"},
	}

	title, ok := lastHeadingValue(placed)
	assert.True(t, ok)
	assert.Equal(t, "Second", title, "the last heading wins, same as the server")

	_, ok = lastHeadingValue([]models.FormComponent{{ID: "c-1", Type: models.Email}})
	assert.False(t, ok)
}

func TestRequiredAnswerKeys_PreviewFields(t *testing.T) {
	components := []models.Component{
		{ID: "c-1", Type: models.Heading, Value: "Contact"},
		{ID: "c-2", Type: models.Fullname},
		{ID: "c-3", Type: models.Calendar},
		{ID: "c-4", Type: models.Fullname},
		{ID: "c-5", Type: models.Submit},
	}

	assert.Equal(t,
		[]models.AnswerKey{models.KeyFirstname, models.KeyLastname, models.KeyDate},
		requiredAnswerKeys(components),
		"fullname expands, calendar renames to date, duplicates collapse")
}

func TestHumanizeServerError(t *testing.T) {
	assert.Equal(t, "", humanizeServerError(nil))
	assert.Equal(t, "Invalid login or password",
		humanizeServerError(fmt.Errorf("%w: bad creds", adapter.ErrUnauthorized)))
	assert.Equal(t, "Login is already taken",
		humanizeServerError(fmt.Errorf("%w: taken", adapter.ErrConflict)))
	assert.Equal(t, "Server is unreachable",
		humanizeServerError(fmt.Errorf(`Post "http://localhost:8080": dial tcp 127.0.0.1:8080: connection refused`)))
	assert.Equal(t, "something else", humanizeServerError(fmt.Errorf("something else")))
}
