package repository

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"campus_match/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func ctx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	t.Cleanup(cancel)
	return c
}

func TestActivityAppend_Success_WithDefaults(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := NewActivitySQLite(db)

	// Generated id and timestamp are unknown; type is normalized.
	mock.ExpectExec(regexp.QuoteMeta(insertActivitySQL)).
		WithArgs(sqlmock.AnyArg(), 7, sqlmock.AnyArg(), "LOGIN", "signed in", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Append(ctx(t), models.ActivityEvent{
		UserID:      7,
		Type:        "  login ",
		Description: "signed in",
		Metadata:    map[string]any{"ip": "127.0.0.1"},
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestActivityAppend_AnonymousStoresNullUser(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := NewActivitySQLite(db)

	at := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(insertActivitySQL)).
		WithArgs("e1", nil, "2025-05-01 12:00:00", "LOGIN_FAILED", "bad password", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Append(ctx(t), models.ActivityEvent{
		EventID:     "e1",
		OccurredAt:  at,
		Type:        models.ActivityLoginFailed,
		Description: "bad password",
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestActivityAppend_DBError(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := NewActivitySQLite(db)

	mock.ExpectExec("INSERT INTO activity_events").
		WillReturnError(errors.New("down"))

	err = repo.Append(ctx(t), models.ActivityEvent{UserID: 1, Type: "logout", Description: "x"})
	if err == nil || !strings.Contains(err.Error(), "down") {
		t.Fatalf("expected error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestActivityList_UserOnly_And_MetadataParsing(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := NewActivitySQLite(db)

	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	js, _ := json.Marshal(map[string]any{"a": "b"})

	rows := sqlmock.NewRows([]string{"id", "user_id", "occurred_at", "type", "message", "meta"}).
		AddRow("1", 4, now, "REGISTER", "m1", string(js)).
		AddRow("2", 4, now.Add(time.Hour), "LOGIN", "m2", nil)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, occurred_at, type, message, meta FROM activity_events WHERE user_id = ? ORDER BY occurred_at ASC`)).
		WithArgs(4).
		WillReturnRows(rows)

	got, err := repo.List(ctx(t), 4, time.Time{}, time.Time{}, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].EventID != "1" || got[1].EventID != "2" {
		t.Fatalf("unexpected events: %+v", got)
	}
	if got[0].UserID != 4 {
		t.Fatalf("unexpected user id %d", got[0].UserID)
	}
	b1, _ := json.Marshal(got[0].Metadata)
	if string(b1) != string(js) {
		t.Fatalf("metadata mismatch: %s vs %s", string(b1), string(js))
	}
	if got[1].Metadata != nil {
		t.Fatalf("expected nil meta, got %#v", got[1].Metadata)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestActivityList_WithFilters_OrderAndArgs(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := NewActivitySQLite(db)

	from := time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	query := `SELECT id, user_id, occurred_at, type, message, meta FROM activity_events WHERE user_id = ? AND occurred_at >= ? AND occurred_at <= ? AND type = ? ORDER BY occurred_at ASC`

	rows := sqlmock.NewRows([]string{"id", "user_id", "occurred_at", "type", "message", "meta"}).
		AddRow("3", 9, from, "LOGIN", "b", nil)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(9, "2025-01-01 11:00:00", "2025-01-01 12:00:00", "LOGIN").
		WillReturnRows(rows)

	got, err := repo.List(ctx(t), 9, from, to, " login ")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].EventID != "3" {
		t.Fatalf("unexpected results: %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestActivityList_ScanError(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := NewActivitySQLite(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "occurred_at", "type", "message", "meta"}).
		// occurred_at wrong type to force scan error
		AddRow("x", 1, 123, "LOGIN", "msg", nil)

	mock.ExpectQuery("SELECT id, user_id, occurred_at").
		WillReturnRows(rows)

	if _, err = repo.List(ctx(t), 1, time.Time{}, time.Time{}, ""); err == nil {
		t.Fatalf("expected scan error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}
