package data

import (
	"context"
	"database/sql"
)

type ActorStore interface {
	Insert(ctx context.Context, actor *Actor) error
	Get(ctx context.Context, id int) (*Actor, error)
	GetAll(ctx context.Context) ([]*Actor, error)
	Update(ctx context.Context, actor *Actor) error
	Delete(ctx context.Context, id int) error
}

type MovieStore interface {
	Insert(ctx context.Context, movie *Movie) error
	Get(ctx context.Context, id int) (*Movie, error)
	GetAll(ctx context.Context) ([]*Movie, error)
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id int) error
}

// Models wraps every store the handlers depend on
type Models struct {
	Actors ActorStore
	Movies MovieStore
}

func NewModels(db *sql.DB) Models {
	return Models{
		Actors: ActorModel{DB: db},
		Movies: MovieModel{DB: db},
	}
}
