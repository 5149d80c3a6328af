package users

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func userColumns() []string {
	return []string{
		"id", "email", "full_name", "given_name", "family_name", "picture_url",
		"plan_code", "created_at", "updated_at",
	}
}

func TestPGRepoUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectExec("INSERT INTO users").
		WithArgs("google:sub-1", "jane@example.com", "Jane Doe", nil, nil, nil, "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	err = repo.Upsert(context.Background(), User{
		ID:       "google:sub-1",
		Email:    "jane@example.com",
		FullName: "Jane Doe",
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Now().UTC()
	rows := sqlmock.NewRows(userColumns()).
		AddRow("google:sub-1", "jane@example.com", "Jane Doe", nil, nil, nil, "plan-pro", now, now)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("google:sub-1").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	user, err := repo.GetByID(context.Background(), "google:sub-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if user.PlanCode != "plan-pro" {
		t.Fatalf("expected stored plan, got %q", user.PlanCode)
	}
	if user.Provider() != "google" {
		t.Fatalf("expected google provider, got %q", user.Provider())
	}

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("google:missing").
		WillReturnRows(sqlmock.NewRows(userColumns()))
	if _, err := repo.GetByID(context.Background(), "google:missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
