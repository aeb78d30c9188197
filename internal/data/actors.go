package data

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"castingagency/internal/validator"
)

type Actor struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
}

// Format returns the public representation sent to clients.
func (a *Actor) Format() map[string]any {
	return map[string]any{
		"id":     a.ID,
		"name":   a.Name,
		"age":    a.Age,
		"gender": a.Gender,
	}
}

// ActorInput is the request body for creating or replacing an actor.
// A nil field was either absent or null in the JSON document.
type ActorInput struct {
	Name   *string `json:"name"`
	Age    *Age    `json:"age"`
	Gender *string `json:"gender"`
}

// ValidateActor requires every field. Empty strings and zero are accepted.
func ValidateActor(v *validator.Validator, input ActorInput) {
	v.Check(input.Name != nil, "name", "must be provided")
	v.Check(input.Age != nil, "age", "must be provided")
	v.Check(input.Gender != nil, "gender", "must be provided")
}

// Apply copies a validated input onto actor, replacing all domain fields.
// actor is left untouched when a supplied value is unusable.
func (input ActorInput) Apply(actor *Actor) error {
	age, err := input.Age.Int()
	if err != nil {
		return err
	}

	actor.Name = *input.Name
	actor.Age = age
	actor.Gender = *input.Gender
	return nil
}

type ActorModel struct {
	DB *sql.DB
}

func (m ActorModel) Insert(ctx context.Context, actor *Actor) error {
	query := `
		INSERT INTO actors (name, age, gender)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	args := []any{actor.Name, actor.Age, actor.Gender}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	err := m.DB.QueryRowContext(ctx, query, args...).Scan(&actor.ID)
	if err != nil {
		return storeError("insert actor", err)
	}

	return nil
}

func (m ActorModel) Get(ctx context.Context, id int) (*Actor, error) {
	// serial ids start at 1
	if id < 1 {
		return nil, ErrRecordNotFound
	}

	query := `
		SELECT id, name, age, gender
		FROM actors
		WHERE id = $1
	`

	var actor Actor

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	err := m.DB.QueryRowContext(ctx, query, id).Scan(
		&actor.ID,
		&actor.Name,
		&actor.Age,
		&actor.Gender,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, storeError("get actor", err)
		}
	}

	return &actor, nil
}

func (m ActorModel) GetAll(ctx context.Context) ([]*Actor, error) {
	query := `
		SELECT id, name, age, gender
		FROM actors
		ORDER BY id
	`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, storeError("list actors", err)
	}
	defer rows.Close()

	actors := []*Actor{}

	for rows.Next() {
		var actor Actor
		err := rows.Scan(&actor.ID, &actor.Name, &actor.Age, &actor.Gender)
		if err != nil {
			return nil, storeError("list actors", err)
		}

		actors = append(actors, &actor)
	}
	// check if any errors occurred during the iteration
	if err = rows.Err(); err != nil {
		return nil, storeError("list actors", err)
	}

	return actors, nil
}

// Update replaces every domain field of the stored actor.
// ErrRecordNotFound means the row was deleted after the caller fetched it.
func (m ActorModel) Update(ctx context.Context, actor *Actor) error {
	query := `
		UPDATE actors
		SET name = $1, age = $2, gender = $3
		WHERE id = $4
		RETURNING id
	`

	args := []any{actor.Name, actor.Age, actor.Gender, actor.ID}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	err := m.DB.QueryRowContext(ctx, query, args...).Scan(&actor.ID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrRecordNotFound
		default:
			return storeError("update actor", err)
		}
	}

	return nil
}

func (m ActorModel) Delete(ctx context.Context, id int) error {
	if id < 1 {
		return ErrRecordNotFound
	}

	query := `
		DELETE FROM actors
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	result, err := m.DB.ExecContext(ctx, query, id)
	if err != nil {
		return storeError("delete actor", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storeError("delete actor", err)
	}

	if rowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}
