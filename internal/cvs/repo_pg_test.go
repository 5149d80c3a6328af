package cvs

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func documentFixture() Document {
	now := time.Now().UTC()
	return Document{
		ID:     "cv-1",
		UserID: "user-1",
		Title:  "My CV",
		Sections: []Section{
			{
				ID:     "header",
				Title:  "Header",
				Kind:   SectionKindObject,
				Fields: map[string]string{"name": "John Doe"},
			},
			{
				ID:    "experience",
				Title: "Experience",
				Kind:  SectionKindList,
				Items: []Item{{"company": "Acme", "achievements": []any{"Did X"}}},
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	doc := documentFixture()

	mock.ExpectExec("INSERT INTO cvs").
		WithArgs(doc.ID, doc.UserID, doc.Title, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), doc); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDRoundTripsSections(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	doc := documentFixture()
	sections, _ := json.Marshal(doc.Sections)

	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "sections", "created_at", "updated_at"}).
		AddRow(doc.ID, doc.UserID, doc.Title, sections, doc.CreatedAt, doc.UpdatedAt)

	mock.ExpectQuery("SELECT (.+) FROM cvs").
		WithArgs(doc.ID, doc.UserID).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), doc.UserID, doc.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.Sections) != 2 || got.Sections[0].Fields["name"] != "John Doe" {
		t.Fatalf("sections not round-tripped: %+v", got.Sections)
	}
	list, ok := got.Sections[1].Items[0].Strings("achievements")
	if !ok || len(list) != 1 || list[0] != "Did X" {
		t.Fatalf("item collections lost in round trip: %v %v", list, ok)
	}
}

func TestPGRepoGetCurrentNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT (.+) FROM cvs").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := repo.GetCurrentByUser(context.Background(), "user-1"); err != ErrNotFound {
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
	doc := documentFixture()

	mock.ExpectExec("UPDATE cvs").
		WithArgs(doc.ID, doc.UserID, doc.Title, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Update(context.Background(), doc); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
