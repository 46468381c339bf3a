package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"campus_match/internal/models"
)

// ErrDuplicateEmail is returned by UserRepo.Create when the email is taken.
var ErrDuplicateEmail = errors.New("email already registered")

// NewUser carries the columns written at registration.
type NewUser struct {
	Name         string
	Email        string
	PasswordHash string
	College      string
	Bio          string
	ContactInfo  string
	ProfilePic   string // empty means no picture
	InterestIDs  []int
}

type UserRepo interface {
	Create(ctx context.Context, u NewUser) (int, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	ListByCollege(ctx context.Context, college string, excludeID int) ([]models.User, error)
}

type InterestRepo interface {
	Seed(ctx context.Context, names []string) (int, error)
	List(ctx context.Context) ([]models.Interest, error)
}

type ActivityRepo interface {
	Append(ctx context.Context, e models.ActivityEvent) error
	List(ctx context.Context, userID int, from, to time.Time, typ string) ([]models.ActivityEvent, error)
}

type Repository struct {
	Users     UserRepo
	Interests InterestRepo
	Activity  ActivityRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:     NewUserSQLite(db),
		Interests: NewInterestSQLite(db),
		Activity:  NewActivitySQLite(db),
	}
}
