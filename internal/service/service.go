package service

import (
	"context"

	"campus_match/internal/logger"
	"campus_match/internal/metrics"
	"campus_match/internal/models"
	"campus_match/internal/repository"
	"campus_match/internal/storage"
)

// Authorization covers login, session resolution and logout.
type Authorization interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
	ParseToken(accessToken string) (Session, error)
	CurrentUser(ctx context.Context, accessToken string) (models.User, error)
	Logout(ctx context.Context, accessToken string) error
}

// Registration creates accounts.
type Registration interface {
	Register(ctx context.Context, in RegistrationInput, pic *Upload) (models.User, error)
}

// Matching ranks same-college peers for the signed-in user.
type Matching interface {
	Dashboard(ctx context.Context, current models.User) (models.MatchResult, error)
}

// Catalog exposes the interest tags.
type Catalog interface {
	Seed(ctx context.Context, names []string) (int, error)
	List(ctx context.Context) ([]models.Interest, error)
}

// Activity exposes the per-user account history.
type Activity interface {
	ActivityRecorder
	List(ctx context.Context, userID int, f ActivityFilter) ([]models.ActivityEvent, error)
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Registration
	Matching
	Catalog
	Activity
}

// Deps bundles what NewService needs besides the repositories.
type Deps struct {
	Store   storage.Store
	Metrics *metrics.Metrics
	Log     *logger.Logger
	Auth    AuthConfig
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, d Deps) *Service {
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	activity := NewActivityService(repos.Activity, d.Log.Named("activity"))
	return &Service{
		Authorization: NewAuthService(repos.Users, activity, d.Metrics, d.Auth),
		Registration:  NewRegistrationService(repos.Users, d.Store, activity, d.Metrics, d.Log.Named("registration")),
		Matching:      NewMatchingService(repos.Users, d.Metrics),
		Catalog:       NewCatalogService(repos.Interests),
		Activity:      activity,
	}
}
