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

func newTestProspectRepo(t *testing.T) (*prospectRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	wrapped, mock, db := newTestDB(t)
	repo := &prospectRepository{
		db:     wrapped,
		logger: wrapped.logger,
		ids:    utils.NewUUIDGenerator(),
	}
	return repo, mock, db
}

func strPtr(s string) *string { return &s }

func TestCreateProspect_Success(t *testing.T) {
	repo, mock, db := newTestProspectRepo(t)
	defer db.Close()

	ctx := context.Background()
	prospect := models.Prospect{
		FormID:    "form-1",
		Firstname: strPtr("Jane"),
		Lastname:  strPtr("Doe"),
		Email:     strPtr("jane@example.com"),
	}

	mock.ExpectExec("INSERT INTO prospects").
		WithArgs(
			sqlmock.AnyArg(), "form-1",
			prospect.Firstname, prospect.Lastname,
			nil, prospect.Email, nil, nil,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateProspect(ctx, prospect)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Error("expected generated prospect id, got empty string")
	}
	if created.Phone != nil {
		t.Error("expected unset phone to stay nil")
	}
}

func TestCreateProspect_InsertError(t *testing.T) {
	repo, mock, db := newTestProspectRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO prospects").
		WillReturnError(errors.New("disk full"))

	_, err := repo.CreateProspect(ctx, models.Prospect{FormID: "form-1"})
	if !errors.Is(err, ErrProspectNotSaved) {
		t.Fatalf("expected ErrProspectNotSaved, got %v", err)
	}
}

func TestListByForm_Success(t *testing.T) {
	repo, mock, db := newTestProspectRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"id", "form_id", "firstname", "lastname", "phone", "email", "gender", "date", "created_at"}).
		AddRow("p-1", "form-1", "Jane", "Doe", nil, "jane@example.com", nil, nil, time.Now().Add(-time.Hour)).
		AddRow("p-2", "form-1", nil, nil, "+1234567", nil, nil, nil, time.Now())

	mock.ExpectQuery("SELECT id, form_id, firstname, lastname, phone, email, gender, date, created_at FROM prospects").
		WithArgs("form-1").
		WillReturnRows(rows)

	prospects, err := repo.ListByForm(ctx, "form-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prospects) != 2 {
		t.Fatalf("expected 2 prospects, got %d", len(prospects))
	}
	if prospects[0].Firstname == nil || *prospects[0].Firstname != "Jane" {
		t.Errorf("expected firstname Jane, got %v", prospects[0].Firstname)
	}
	if prospects[1].Phone == nil || *prospects[1].Phone != "+1234567" {
		t.Errorf("expected phone +1234567, got %v", prospects[1].Phone)
	}
}

func TestListByForm_Empty(t *testing.T) {
	repo, mock, db := newTestProspectRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "form_id", "firstname", "lastname", "phone", "email", "gender", "date", "created_at"})

	mock.ExpectQuery("SELECT id, form_id, firstname, lastname, phone, email, gender, date, created_at FROM prospects").
		WithArgs("form-1").
		WillReturnRows(rows)

	prospects, err := repo.ListByForm(ctx, "form-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prospects) != 0 {
		t.Errorf("expected no prospects, got %d", len(prospects))
	}
}
