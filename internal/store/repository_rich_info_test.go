// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Teamgrid Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/teamgrid/richinfo-server/internal/logger"
	"github.com/teamgrid/richinfo-server/models"
)

func newTestRichInfoRepo(t *testing.T) (*richInfoRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &richInfoRepository{
		db:     &DB{DB: db, errorClassificator: NewPostgresErrorClassifier(), logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestGetRichInfo_ReturnsFieldsInStoredOrder(t *testing.T) {
	repo, mock, db := newTestRichInfoRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"name", "value"}).
		AddRow("title", "lead").
		AddRow("department", "design").
		AddRow("phone", "555-0101")

	mock.ExpectQuery("SELECT name, value FROM rich_info_fields").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	fields, err := repo.GetRichInfo(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []models.RichField{
		{Name: "title", Value: "lead"},
		{Name: "department", Value: "design"},
		{Name: "phone", Value: "555-0101"},
	}
	if len(fields) != len(want) {
		t.Fatalf("expected %d fields, got %d", len(want), len(fields))
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("field %d: expected %+v, got %+v", i, want[i], fields[i])
		}
	}
}

func TestGetRichInfo_NeverWrittenUser_EmptyNonNilSlice(t *testing.T) {
	repo, mock, db := newTestRichInfoRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT name, value FROM rich_info_fields").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"name", "value"}))

	fields, err := repo.GetRichInfo(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fields == nil {
		t.Fatal("expected non-nil slice for user without rich info")
	}
	if len(fields) != 0 {
		t.Errorf("expected empty slice, got %d fields", len(fields))
	}
}

func TestGetRichInfo_QueryError(t *testing.T) {
	repo, mock, db := newTestRichInfoRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT name, value FROM rich_info_fields").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetRichInfo(context.Background(), 42)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestReplaceRichInfo_DeletesThenInsertsInOneTransaction(t *testing.T) {
	repo, mock, db := newTestRichInfoRepo(t)
	defer db.Close()

	fields := []models.RichField{
		{Name: "title", Value: "lead"},
		{Name: "department", Value: "design"},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM rich_info_fields").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO rich_info_fields").
		WithArgs(int64(42), 0, "title", "lead", int64(42), 1, "department", "design").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.ReplaceRichInfo(context.Background(), 42, fields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestReplaceRichInfo_EmptySet_DeletesWithoutInsert(t *testing.T) {
	repo, mock, db := newTestRichInfoRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM rich_info_fields").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	err := repo.ReplaceRichInfo(context.Background(), 42, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestReplaceRichInfo_InsertError_RollsBack(t *testing.T) {
	repo, mock, db := newTestRichInfoRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM rich_info_fields").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO rich_info_fields").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.ReplaceRichInfo(context.Background(), 42, []models.RichField{{Name: "title", Value: "lead"}})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestReplaceRichInfo_BeginError(t *testing.T) {
	repo, mock, db := newTestRichInfoRepo(t)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	err := repo.ReplaceRichInfo(context.Background(), 42, nil)
	if !errors.Is(err, ErrBeginningTransaction) {
		t.Fatalf("expected ErrBeginningTransaction, got %v", err)
	}
}

func TestReplaceRichInfo_CommitError(t *testing.T) {
	repo, mock, db := newTestRichInfoRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM rich_info_fields").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit().WillReturnError(errors.New("server shutdown"))

	err := repo.ReplaceRichInfo(context.Background(), 42, nil)
	if !errors.Is(err, ErrCommitingTransaction) {
		t.Fatalf("expected ErrCommitingTransaction, got %v", err)
	}
}
