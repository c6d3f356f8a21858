package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Harry2k21/house-finder-v1/internal/logger"
	"github.com/Harry2k21/house-finder-v1/models"
)

func newTestPreferenceRepo(t *testing.T) (*preferenceRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &preferenceRepository{
		db:     &DB{DB: db, driver: "pgx", logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestPreferenceGet_Requirements(t *testing.T) {
	repo, mock, db := newTestPreferenceRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT requirements FROM user_requirements").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"requirements"}).AddRow(`{"beds":2}`))

	content, err := repo.Get(context.Background(), 1, models.KindRequirements)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(content) != `{"beds":2}` {
		t.Errorf("unexpected content: %s", content)
	}
}

func TestPreferenceGet_ShortlistTable(t *testing.T) {
	repo, mock, db := newTestPreferenceRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT shortlist FROM user_shortlist").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"shortlist"}).AddRow(`[]`))

	content, err := repo.Get(context.Background(), 1, models.KindShortlist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(content) != `[]` {
		t.Errorf("unexpected content: %s", content)
	}
}

func TestPreferenceGet_NoneSaved(t *testing.T) {
	repo, mock, db := newTestPreferenceRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT requirements FROM user_requirements").
		WithArgs(int64(5)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 5, models.KindRequirements)
	if !errors.Is(err, ErrNoPreferencesFound) {
		t.Fatalf("expected ErrNoPreferencesFound, got %v", err)
	}
}

func TestPreferenceSave_Upsert(t *testing.T) {
	repo, mock, db := newTestPreferenceRepo(t)
	defer db.Close()

	content := json.RawMessage(`{"beds":2}`)

	mock.ExpectExec("INSERT INTO user_requirements").
		WithArgs(int64(1), `{"beds":2}`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Save(context.Background(), 1, models.KindRequirements, content); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPreferenceSave_DBError(t *testing.T) {
	repo, mock, db := newTestPreferenceRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO user_shortlist").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("disk full"))

	err := repo.Save(context.Background(), 1, models.KindShortlist, json.RawMessage(`[]`))
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
