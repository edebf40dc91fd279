package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/formkeeper/formkeeper/internal/utils"
	"github.com/formkeeper/formkeeper/models"
)

func newTestFormRepo(t *testing.T) (*formRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	wrapped, mock, db := newTestDB(t)
	repo := &formRepository{
		db:     wrapped,
		logger: wrapped.logger,
		ids:    utils.NewUUIDGenerator(),
	}
	return repo, mock, db
}

func TestCreateForm_DefaultTitle(t *testing.T) {
	repo, mock, db := newTestFormRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO forms").
		WithArgs(sqlmock.AnyArg(), "user-1", models.DefaultFormTitle).
		WillReturnResult(sqlmock.NewResult(0, 1))

	form, err := repo.CreateForm(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if form.ID == "" {
		t.Error("expected generated form id, got empty string")
	}
	if form.Title != models.DefaultFormTitle {
		t.Errorf("expected title %q, got %q", models.DefaultFormTitle, form.Title)
	}
	if form.UserID != "user-1" {
		t.Errorf("expected owner user-1, got %s", form.UserID)
	}
}

func TestGetOwnedForm_Success(t *testing.T) {
	repo, mock, db := newTestFormRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"id", "user_id", "title", "created_at"}).
		AddRow("form-1", "user-1", "Feedback", time.Now())

	mock.ExpectQuery("SELECT id, user_id, title, created_at FROM forms").
		WillReturnRows(rows)

	form, err := repo.GetOwnedForm(ctx, "user-1", "form-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if form.Title != "Feedback" {
		t.Errorf("expected title Feedback, got %s", form.Title)
	}
}

func TestGetOwnedForm_ForeignFormNotFound(t *testing.T) {
	repo, mock, db := newTestFormRepo(t)
	defer db.Close()

	ctx := context.Background()

	// owner filter excludes the row, so the query comes back empty
	mock.ExpectQuery("SELECT id, user_id, title, created_at FROM forms").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetOwnedForm(ctx, "intruder", "form-1")
	if !errors.Is(err, ErrFormNotFound) {
		t.Fatalf("expected ErrFormNotFound, got %v", err)
	}
}

func TestListForms_Success(t *testing.T) {
	repo, mock, db := newTestFormRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"id", "user_id", "title", "created_at"}).
		AddRow("form-2", "user-1", "Newer", time.Now()).
		AddRow("form-1", "user-1", "Older", time.Now().Add(-time.Hour))

	mock.ExpectQuery("SELECT id, user_id, title, created_at FROM forms").
		WithArgs("user-1").
		WillReturnRows(rows)

	forms, err := repo.ListForms(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(forms) != 2 {
		t.Fatalf("expected 2 forms, got %d", len(forms))
	}
	if forms[0].Title != "Newer" {
		t.Errorf("expected newest form first, got %s", forms[0].Title)
	}
}

func TestUpdateTitle_MissingForm(t *testing.T) {
	repo, mock, db := newTestFormRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE forms").
		WithArgs("New title", "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateTitle(ctx, "ghost", "New title")
	if !errors.Is(err, ErrFormNotFound) {
		t.Fatalf("expected ErrFormNotFound, got %v", err)
	}
}

func TestDeleteForm_Success(t *testing.T) {
	repo, mock, db := newTestFormRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM forms").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteForm(ctx, "user-1", "form-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteForm_ForeignFormNotFound(t *testing.T) {
	repo, mock, db := newTestFormRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM forms").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteForm(ctx, "intruder", "form-1")
	if !errors.Is(err, ErrFormNotFound) {
		t.Fatalf("expected ErrFormNotFound, got %v", err)
	}
}
