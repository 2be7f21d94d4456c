package banner

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresSource_LatestReturnsNewestPayload(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	src := NewPostgresSource(db)

	payload := []byte(`[{"id":"welcome"}]`)
	rows := sqlmock.NewRows([]string{"payload"}).AddRow(payload)
	mock.ExpectQuery("SELECT payload FROM banner_payload").WillReturnRows(rows)

	got, err := src.Latest(context.Background())
	if err != nil {
		t.Fatalf("expected payload, got error %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("unexpected payload %s", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresSource_LatestEmptyTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	src := NewPostgresSource(db)

	mock.ExpectQuery("SELECT payload FROM banner_payload").WillReturnError(sql.ErrNoRows)

	if _, err := src.Latest(context.Background()); !errors.Is(err, ErrNoPayload) {
		t.Fatalf("expected ErrNoPayload, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresSource_SaveInsertsRevision(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	src := NewPostgresSource(db)

	payload := []byte(`[]`)
	mock.ExpectExec("INSERT INTO banner_payload").
		WithArgs("rev-1", payload).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := src.Save(context.Background(), payload, "rev-1"); err != nil {
		t.Fatalf("expected save to succeed, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
