package repository

import (
	"context"
	"database/sql"
	"time"

	"controlling_window/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// ReadingRepo stores evaluated readings.
type ReadingRepo interface {
	Append(ctx context.Context, r models.Reading) (int64, error)
	// Latest returns the newest reading, or a zero Reading (ID == 0) if none.
	Latest(ctx context.Context) (models.Reading, error)
	// List returns readings in [from, to] ordered by time; zero bounds are open.
	List(ctx context.Context, from, to time.Time) ([]models.Reading, error)
}

type EventRepo interface {
	Append(ctx context.Context, e models.WindowEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.WindowEvent, error)
}

type Repository struct {
	ReadingRepo ReadingRepo
	EventRepo   EventRepo
	Auth        Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		ReadingRepo: NewReadingSQLite(db),
		EventRepo:   NewEventSQLite(db),
		Auth:        NewUserRepository(db),
	}
}
