package data

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

func newMock(t *testing.T) (ActorModel, MovieModel, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return ActorModel{DB: db}, MovieModel{DB: db}, mock
}

func TestActorInsertAssignsID(t *testing.T) {
	actors, _, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO actors (name, age, gender)")).
		WithArgs("actor3", 25, "F").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	actor := &Actor{Name: "actor3", Age: 25, Gender: "F"}
	if err := actors.Insert(context.Background(), actor); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if actor.ID != 7 {
		t.Errorf("ID = %d, want 7", actor.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestActorGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		actors, _, mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM actors")).
			WithArgs(3).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "age", "gender"}).AddRow(3, "actor1", 40, "M"))

		actor, err := actors.Get(context.Background(), 3)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		want := Actor{ID: 3, Name: "actor1", Age: 40, Gender: "M"}
		if *actor != want {
			t.Errorf("Get = %+v, want %+v", *actor, want)
		}
	})

	t.Run("missing row", func(t *testing.T) {
		actors, _, mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM actors")).
			WithArgs(1000).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "age", "gender"}))

		_, err := actors.Get(context.Background(), 1000)
		if !errors.Is(err, ErrRecordNotFound) {
			t.Fatalf("err = %v, want ErrRecordNotFound", err)
		}
	})

	t.Run("non positive id skips the query", func(t *testing.T) {
		actors, _, mock := newMock(t)

		_, err := actors.Get(context.Background(), 0)
		if !errors.Is(err, ErrRecordNotFound) {
			t.Fatalf("err = %v, want ErrRecordNotFound", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})
}

func TestActorGetAllOrdersByID(t *testing.T) {
	actors, _, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM actors ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "age", "gender"}).
			AddRow(1, "a", 30, "F").
			AddRow(2, "b", 31, "M"))

	list, err := actors.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(list) != 2 || list[0].ID != 1 || list[1].ID != 2 {
		t.Errorf("GetAll = %+v", list)
	}
}

func TestActorGetAllEmptyIsNotNil(t *testing.T) {
	actors, _, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM actors")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "age", "gender"}))

	list, err := actors.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("GetAll = %#v, want empty slice", list)
	}
}

func TestActorUpdateVanishedRow(t *testing.T) {
	actors, _, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE actors")).
		WithArgs("n", 1, "g", 5).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := actors.Update(context.Background(), &Actor{ID: 5, Name: "n", Age: 1, Gender: "g"})
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestActorDelete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		actors, _, mock := newMock(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM actors")).
			WithArgs(4).
			WillReturnResult(sqlmock.NewResult(0, 1))

		if err := actors.Delete(context.Background(), 4); err != nil {
			t.Fatalf("Delete: %v", err)
		}
	})

	t.Run("no rows affected", func(t *testing.T) {
		actors, _, mock := newMock(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM actors")).
			WithArgs(4).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := actors.Delete(context.Background(), 4)
		if !errors.Is(err, ErrRecordNotFound) {
			t.Fatalf("err = %v, want ErrRecordNotFound", err)
		}
	})
}

func TestActorInsertConstraintViolation(t *testing.T) {
	actors, _, mock := newMock(t)

	// 23502 not_null_violation
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO actors")).
		WillReturnError(&pq.Error{Code: "23502", Message: "null value in column"})

	err := actors.Insert(context.Background(), &Actor{Name: "x", Age: 1, Gender: "F"})

	var storeErr *StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("err = %v, want *StoreError", err)
	}
	if storeErr.Kind != KindConstraint {
		t.Errorf("Kind = %s, want constraint", storeErr.Kind)
	}
	if storeErr.Op != "insert actor" {
		t.Errorf("Op = %q, want %q", storeErr.Op, "insert actor")
	}
}

func TestActorFormatIsStable(t *testing.T) {
	actor := &Actor{ID: 1, Name: "actor3", Age: 25, Gender: "F"}

	first := actor.Format()
	second := actor.Format()

	if len(first) != 4 {
		t.Fatalf("Format has %d keys, want 4", len(first))
	}
	for key, value := range first {
		if second[key] != value {
			t.Errorf("Format()[%q] changed from %v to %v", key, value, second[key])
		}
	}
	if first["name"] != "actor3" || first["age"] != 25 || first["gender"] != "F" || first["id"] != 1 {
		t.Errorf("Format = %v", first)
	}
}
