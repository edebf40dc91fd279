package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formkeeper/formkeeper/internal/logger"
	"github.com/formkeeper/formkeeper/internal/service"
	"github.com/formkeeper/formkeeper/internal/store"
	"github.com/formkeeper/formkeeper/models"
)

// ─────────────────────────────────────────────
// Mock FormService
// ─────────────────────────────────────────────

type mockFormService struct {
	createFormFn     func(ctx context.Context, userID string) (models.Form, error)
	listFormsFn      func(ctx context.Context, userID string) ([]models.Form, error)
	getFormFn        func(ctx context.Context, userID, formID string) (models.FormWithComponents, error)
	getPreviewFn     func(ctx context.Context, formID string) (models.FormWithComponents, error)
	saveComponentsFn func(ctx context.Context, userID, formID string, components []models.Component) error
	deleteFormFn     func(ctx context.Context, userID, formID string) error
}

func (m *mockFormService) CreateForm(ctx context.Context, userID string) (models.Form, error) {
	if m.createFormFn != nil {
		return m.createFormFn(ctx, userID)
	}
	return models.Form{}, nil
}

func (m *mockFormService) ListForms(ctx context.Context, userID string) ([]models.Form, error) {
	if m.listFormsFn != nil {
		return m.listFormsFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockFormService) GetForm(ctx context.Context, userID, formID string) (models.FormWithComponents, error) {
	if m.getFormFn != nil {
		return m.getFormFn(ctx, userID, formID)
	}
	return models.FormWithComponents{}, nil
}

func (m *mockFormService) GetPreview(ctx context.Context, formID string) (models.FormWithComponents, error) {
	if m.getPreviewFn != nil {
		return m.getPreviewFn(ctx, formID)
	}
	return models.FormWithComponents{}, nil
}

func (m *mockFormService) SaveComponents(ctx context.Context, userID, formID string, components []models.Component) error {
	if m.saveComponentsFn != nil {
		return m.saveComponentsFn(ctx, userID, formID, components)
	}
	return nil
}

func (m *mockFormService) DeleteForm(ctx context.Context, userID, formID string) error {
	if m.deleteFormFn != nil {
		return m.deleteFormFn(ctx, userID, formID)
	}
	return nil
}

// newHandlerWithForms builds a Handler whose auth middleware always resolves
// the caller as "user-1".
func newHandlerWithForms(t *testing.T, forms service.FormService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: &mockAuthService{},
		FormService: forms,
	}
	return NewHandler(svcs, logger.Nop())
}

// doAuthed routes req through the full router with a bearer token attached.
func doAuthed(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	req.Header.Set("Authorization", "Bearer some.jwt.token")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// Auth gating
// ─────────────────────────────────────────────

// TestOwnerRoutes_Unauthorized verifies every owner-only route rejects a
// request with no Authorization header before touching the service layer.
func TestOwnerRoutes_Unauthorized(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/form"},
		{http.MethodGet, "/api/forms"},
		{http.MethodGet, "/api/form/form-1"},
		{http.MethodPost, "/api/form/form-1"},
		{http.MethodDelete, "/api/form/form-1"},
		{http.MethodGet, "/api/prospects/form-1"},
	}

	serviceCalled := false
	forms := &mockFormService{
		createFormFn: func(ctx context.Context, userID string) (models.Form, error) {
			serviceCalled = true
			return models.Form{}, nil
		},
		getFormFn: func(ctx context.Context, userID, formID string) (models.FormWithComponents, error) {
			serviceCalled = true
			return models.FormWithComponents{}, nil
		},
		saveComponentsFn: func(ctx context.Context, userID, formID string, components []models.Component) error {
			serviceCalled = true
			return nil
		},
		deleteFormFn: func(ctx context.Context, userID, formID string) error {
			serviceCalled = true
			return nil
		},
		listFormsFn: func(ctx context.Context, userID string) ([]models.Form, error) {
			serviceCalled = true
			return nil, nil
		},
	}
	h := newHandlerWithForms(t, forms)
	router := h.Init()

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.path, strings.NewReader("[]"))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, serviceCalled, "unauthorized request must not reach the service layer")
		})
	}
}

// ─────────────────────────────────────────────
// createForm / listForms
// ─────────────────────────────────────────────

func TestCreateForm_Routed(t *testing.T) {
	forms := &mockFormService{
		createFormFn: func(ctx context.Context, userID string) (models.Form, error) {
			assert.Equal(t, "user-1", userID)
			return models.Form{ID: "form-1", UserID: userID, Title: models.DefaultFormTitle}, nil
		},
	}
	h := newHandlerWithForms(t, forms)

	rec := doAuthed(h, httptest.NewRequest(http.MethodPost, "/api/form", nil))

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Form
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "form-1", created.ID)
	assert.Equal(t, models.DefaultFormTitle, created.Title)
}

func TestListForms_EmptyIsJSONArray(t *testing.T) {
	h := newHandlerWithForms(t, &mockFormService{})

	rec := doAuthed(h, httptest.NewRequest(http.MethodGet, "/api/forms", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

// ─────────────────────────────────────────────
// saveComponents
// ─────────────────────────────────────────────

func TestSaveComponents_FormIDFromPath(t *testing.T) {
	var gotFormID string
	var gotComponents []models.Component
	forms := &mockFormService{
		saveComponentsFn: func(ctx context.Context, userID, formID string, components []models.Component) error {
			gotFormID = formID
			gotComponents = components
			return nil
		},
	}
	h := newHandlerWithForms(t, forms)

	body := `[{"id":"c-1","type":"heading","value":"Contact Us"},{"id":"c-2","type":"email","value":""}]`
	req := httptest.NewRequest(http.MethodPost, "/api/form/form-1", strings.NewReader(body))
	rec := doAuthed(h, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "form-1", gotFormID)
	require.Len(t, gotComponents, 2)
	assert.Equal(t, models.Heading, gotComponents[0].Type)

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Message)
}

func TestSaveComponents_UnknownType(t *testing.T) {
	forms := &mockFormService{
		saveComponentsFn: func(ctx context.Context, userID, formID string, components []models.Component) error {
			return service.ErrUnknownComponentType
		},
	}
	h := newHandlerWithForms(t, forms)

	body := `[{"id":"c-1","type":"captcha","value":""}]`
	req := httptest.NewRequest(http.MethodPost, "/api/form/form-1", strings.NewReader(body))
	rec := doAuthed(h, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaveComponents_FormNotFound(t *testing.T) {
	forms := &mockFormService{
		saveComponentsFn: func(ctx context.Context, userID, formID string, components []models.Component) error {
			return store.ErrFormNotFound
		},
	}
	h := newHandlerWithForms(t, forms)

	req := httptest.NewRequest(http.MethodPost, "/api/form/ghost", strings.NewReader("[]"))
	rec := doAuthed(h, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// deleteForm / preview
// ─────────────────────────────────────────────

func TestDeleteForm_NotFound(t *testing.T) {
	forms := &mockFormService{
		deleteFormFn: func(ctx context.Context, userID, formID string) error {
			return store.ErrFormNotFound
		},
	}
	h := newHandlerWithForms(t, forms)

	rec := doAuthed(h, httptest.NewRequest(http.MethodDelete, "/api/form/ghost", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPreview_PublicNoAuth(t *testing.T) {
	forms := &mockFormService{
		getPreviewFn: func(ctx context.Context, formID string) (models.FormWithComponents, error) {
			return models.FormWithComponents{
				Form: models.Form{ID: formID, Title: "Public form"},
				Components: []models.Component{
					{ID: "c-1", Type: models.Heading, Value: "Public form"},
				},
			}, nil
		},
	}
	h := newHandlerWithForms(t, forms)

	// no Authorization header on purpose
	req := httptest.NewRequest(http.MethodGet, "/api/preview/form-1", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.FormWithComponents
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Public form", got.Title)
	require.Len(t, got.Components, 1)
}
