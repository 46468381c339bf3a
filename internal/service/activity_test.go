package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"campus_match/internal/logger"
	"campus_match/internal/models"
)

func mustTimeIn(loc *time.Location, y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, loc)
}

func Test_normalizeToUTC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Time
		want func(time.Time) bool
	}{
		{
			name: "zero time remains zero",
			in:   time.Time{},
			want: func(out time.Time) bool { return out.IsZero() },
		},
		{
			name: "non-UTC converted to UTC preserving instant",
			in:   mustTimeIn(time.FixedZone("UTC+3", 3*3600), 2025, time.August, 1, 12, 34, 56),
			want: func(out time.Time) bool {
				exp := time.Date(2025, time.August, 1, 9, 34, 56, 0, time.UTC)
				return out.Location() == time.UTC && out.Equal(exp)
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := normalizeToUTC(tc.in); !tc.want(got) {
				t.Fatalf("normalizeToUTC(%v) = %v", tc.in, got)
			}
		})
	}
}

func TestActivityService_List(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	from := mustTimeIn(loc, 2025, time.August, 1, 10, 0, 0)
	to := mustTimeIn(loc, 2025, time.August, 1, 12, 0, 0)

	repo := &fakeActivityRepo{events: []models.ActivityEvent{{EventID: "e1", Type: models.ActivityLogin}}}
	svc := NewActivityService(repo, logger.Nop())

	got, err := svc.List(context.Background(), 7, ActivityFilter{From: from, To: to, Type: "  login "})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].EventID != "e1" {
		t.Fatalf("unexpected events %+v", got)
	}
	if repo.gotUserID != 7 {
		t.Errorf("user id = %d; want 7", repo.gotUserID)
	}
	if repo.gotFrom.Location() != time.UTC || !repo.gotFrom.Equal(from) {
		t.Errorf("from not normalized to UTC: %v", repo.gotFrom)
	}
	if repo.gotTo.Location() != time.UTC || !repo.gotTo.Equal(to) {
		t.Errorf("to not normalized to UTC: %v", repo.gotTo)
	}
	if repo.gotType != "LOGIN" {
		t.Errorf("type = %q; want LOGIN", repo.gotType)
	}
}

func TestActivityService_List_InvalidRange(t *testing.T) {
	repo := &fakeActivityRepo{}
	svc := NewActivityService(repo, nil)

	now := time.Now()
	_, err := svc.List(context.Background(), 1, ActivityFilter{From: now, To: now.Add(-time.Hour)})
	if !IsInvalidFilter(err) {
		t.Fatalf("expected invalid filter error, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("repo must not be queried for an invalid range")
	}
}

func TestActivityService_Record(t *testing.T) {
	repo := &fakeActivityRepo{appendErr: errors.New("db locked")}
	svc := NewActivityService(repo, logger.Nop())
	fixed := time.Date(2025, time.May, 5, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	// append failures are swallowed
	svc.Record(context.Background(), models.ActivityEvent{UserID: 2, Type: models.ActivityLogout})

	if len(repo.appended) != 1 {
		t.Fatalf("expected one append, got %d", len(repo.appended))
	}
	if !repo.appended[0].OccurredAt.Equal(fixed) {
		t.Fatalf("occurred_at = %v; want %v", repo.appended[0].OccurredAt, fixed)
	}
}

func TestCatalogService_Seed(t *testing.T) {
	repo := &fakeInterestRepo{n: 8}
	svc := NewCatalogService(repo)

	n, err := svc.Seed(context.Background(), nil)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if n != 8 {
		t.Fatalf("inserted = %d; want 8", n)
	}
	if len(repo.seeded) != 1 || len(repo.seeded[0]) != len(models.DefaultInterests) {
		t.Fatalf("expected defaults to be seeded, got %v", repo.seeded)
	}

	if _, err := svc.Seed(context.Background(), []string{"Chess"}); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if repo.seeded[1][0] != "Chess" {
		t.Fatalf("expected explicit names to be passed through, got %v", repo.seeded[1])
	}

	repo.err = errors.New("locked")
	if _, err := svc.Seed(context.Background(), []string{"Chess"}); !errors.Is(err, repo.err) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}
