package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"campus_match/internal/logger"
	"campus_match/internal/models"
	"campus_match/internal/repository"
)

// ActivityFilter supports history filtering by time range and type.
type ActivityFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "REGISTER", "LOGIN", "LOGIN_FAILED", "LOGOUT"
}

// ActivityRecorder appends account activity. Failures never reach the caller.
type ActivityRecorder interface {
	Record(ctx context.Context, e models.ActivityEvent)
}

type ActivityService struct {
	repo repository.ActivityRepo
	log  *logger.Logger
	now  func() time.Time
}

func NewActivityService(repo repository.ActivityRepo, log *logger.Logger) *ActivityService {
	if log == nil {
		log = logger.Nop()
	}
	return &ActivityService{repo: repo, log: log, now: time.Now}
}

var (
	errInvalidTimeRange = errors.New("invalid time range: from must be <= to")
)

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeEventType trims spaces and uppercases the event type filter.
func normalizeEventType(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}

// normalizeAndValidateFilter prepares query parameters and validates the time range.
func normalizeAndValidateFilter(f ActivityFilter) (time.Time, time.Time, string, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, "", errInvalidTimeRange
	}

	return from, to, normalizeEventType(f.Type), nil
}

// Record stores e, stamping id and time when missing. Storage errors are logged.
func (s *ActivityService) Record(ctx context.Context, e models.ActivityEvent) {
	if e.OccurredAt.IsZero() {
		e.OccurredAt = s.now()
	}
	if err := s.repo.Append(ctx, e); err != nil {
		s.log.Warnw("activity append failed", "type", e.Type, "user_id", e.UserID, "err", err)
	}
}

// List returns the user's own activity, oldest first.
func (s *ActivityService) List(ctx context.Context, userID int, f ActivityFilter) ([]models.ActivityEvent, error) {
	from, to, typ, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, userID, from, to, typ)
}

// IsInvalidFilter reports whether err came from a rejected ActivityFilter.
func IsInvalidFilter(err error) bool {
	return errors.Is(err, errInvalidTimeRange)
}
