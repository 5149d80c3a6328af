package review

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func sessionFixture() Session {
	now := time.Now().UTC()
	return Session{
		ID:     "session-1",
		UserID: "user-1",
		CVID:   "cv-1",
		Queue: []Suggestion{
			{ID: "a", Section: "Header", Field: "name", Current: "John", Suggested: "John A.", Reason: "clearer"},
		},
		Cursor:      0,
		Overrides:   map[string]string{},
		SectionData: map[string]json.RawMessage{},
		Status:      StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	session := sessionFixture()

	mock.ExpectExec("INSERT INTO review_sessions").
		WithArgs(
			session.ID,
			session.UserID,
			session.CVID,
			sqlmock.AnyArg(), // queue
			session.Cursor,
			sqlmock.AnyArg(), // overrides
			sqlmock.AnyArg(), // section_data
			session.Status,
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), session); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetRoundTripsPayloads(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	session := sessionFixture()
	session.Overrides = map[string]string{"a": "John Arthur"}

	queue, _ := json.Marshal(session.Queue)
	overrides, _ := json.Marshal(session.Overrides)

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "cv_id", "queue", "cursor_pos", "overrides", "section_data", "status", "created_at", "updated_at",
	}).AddRow(
		session.ID, session.UserID, session.CVID, queue, 1, overrides, []byte("{}"), StatusActive, session.CreatedAt, session.UpdatedAt,
	)

	mock.ExpectQuery("SELECT (.+) FROM review_sessions").
		WithArgs(session.ID, session.UserID).
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), session.UserID, session.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Cursor != 1 || len(got.Queue) != 1 || got.Queue[0].ID != "a" {
		t.Fatalf("session not round-tripped: %+v", got)
	}
	if got.Overrides["a"] != "John Arthur" {
		t.Fatalf("overrides not round-tripped: %v", got.Overrides)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT (.+) FROM review_sessions").
		WithArgs("missing", "user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := repo.Get(context.Background(), "user-1", "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpdateMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	session := sessionFixture()

	mock.ExpectExec("UPDATE review_sessions").
		WithArgs(
			session.ID,
			session.UserID,
			session.Cursor,
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
			session.Status,
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Update(context.Background(), session); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
