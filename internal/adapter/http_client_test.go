// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formkeeper/formkeeper/models"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a := NewHTTPServerAdapter(HTTPClientConfig{BaseURL: serverURL})
	return a.(*httpServerAdapter)
}

// testJWT builds a signed token whose subject is userID. The adapter only
// parses it unverified, so the signing key does not matter.
func testJWT(t *testing.T, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{Subject: userID})
	signed, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

// ── Register / Login ────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	user := models.User{Login: "alice", Name: "Alice"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user/register", r.URL.Path)

		w.Header().Set("Authorization", "Bearer "+testJWT(t, "user-1"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, user.Login, got.Login)
	assert.Equal(t, "user-1", got.UserID)
	assert.NotEmpty(t, a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("login already exists"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.User{Login: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/login", r.URL.Path)

		w.Header().Set("Authorization", "Bearer "+testJWT(t, "user-1"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.Login(context.Background(), models.User{Login: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "user-1", token.UserID)
	assert.Equal(t, token.SignedString, a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.User{Login: "alice", Password: "wrong"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Forms ───────────────────────────────────────────────────────────────────

func TestSaveComponents_SendsBearerAndBody(t *testing.T) {
	var gotAuth string
	var gotBody []models.Component

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/form/form-1", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "Form saved"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("some.jwt.token")

	components := []models.Component{
		{ID: "c-1", Type: models.Heading, Value: "Contact Us"},
		{ID: "c-2", Type: models.Email, Value: ""},
	}
	err := a.SaveComponents(context.Background(), "form-1", components)

	require.NoError(t, err)
	assert.Equal(t, "Bearer some.jwt.token", gotAuth)
	require.Len(t, gotBody, 2)
	assert.Equal(t, models.Heading, gotBody[0].Type)
}

func TestSaveComponents_EmptyListIsJSONArray(t *testing.T) {
	var rawBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b := make([]byte, r.ContentLength)
		_, _ = r.Body.Read(b)
		rawBody = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("some.jwt.token")

	require.NoError(t, a.SaveComponents(context.Background(), "form-1", nil))
	assert.JSONEq(t, "[]", rawBody)
}

func TestGetForm_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetForm(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetForm_DecodesComponentsInOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.FormWithComponents{
			Form: models.Form{ID: "form-1", Title: "Feedback"},
			Components: []models.Component{
				{ID: "c-1", Type: models.Heading, Value: "Feedback"},
				{ID: "c-2", Type: models.Email, Value: ""},
				{ID: "c-3", Type: models.Submit, Value: ""},
			},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("some.jwt.token")

	got, err := a.GetForm(context.Background(), "form-1")
	require.NoError(t, err)
	assert.Equal(t, "Feedback", got.Title)
	require.Len(t, got.Components, 3)
	assert.Equal(t, models.Heading, got.Components[0].Type)
	assert.Equal(t, models.Submit, got.Components[2].Type)
}

// ── Prospects ───────────────────────────────────────────────────────────────

func TestSubmitProspect_NoAuthHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/prospects/form-1", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("should.not.be.sent")

	err := a.SubmitProspect(context.Background(), "form-1", map[string]string{"email": "a@b.com"})
	require.NoError(t, err)
	assert.Empty(t, gotAuth, "prospect submission is a public request")
}

func TestListProspects_Success(t *testing.T) {
	email := "a@b.com"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.Prospect{{ID: "p-1", Email: &email}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("some.jwt.token")

	got, err := a.ListProspects(context.Background(), "form-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Email)
	assert.Equal(t, email, *got[0].Email)
}
