package data

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

func TestMigrate(t *testing.T) {
	t.Run("creates both tables", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock.New: %v", err)
		}
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS actors") + ".*" +
			regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS movies")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		if err := Migrate(context.Background(), db); err != nil {
			t.Fatalf("Migrate: %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})

	t.Run("wraps failures", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("sqlmock.New: %v", err)
		}
		defer db.Close()

		// 42501 insufficient_privilege
		pqErr := &pq.Error{Code: "42501"}
		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS actors")).
			WillReturnError(pqErr)

		err = Migrate(context.Background(), db)

		var storeErr *StoreError
		if !errors.As(err, &storeErr) {
			t.Fatalf("err = %v, want *StoreError", err)
		}
		if storeErr.Op != "migrate" || storeErr.Kind != KindUnknown {
			t.Errorf("Op = %q, Kind = %s", storeErr.Op, storeErr.Kind)
		}
		if !errors.Is(err, pqErr) {
			t.Errorf("err = %v, does not wrap the driver error", err)
		}
	})
}
