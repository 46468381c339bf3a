package service

import (
	"context"
	"io"
	"sync"
	"time"

	"campus_match/internal/models"
	"campus_match/internal/repository"
)

// fakeUserRepo is a lightweight in-test mock for repository.UserRepo.
type fakeUserRepo struct {
	CreateFn        func(ctx context.Context, u repository.NewUser) (int, error)
	GetByEmailFn    func(ctx context.Context, email string) (*models.User, error)
	GetByIDFn       func(ctx context.Context, id int) (*models.User, error)
	ListByCollegeFn func(ctx context.Context, college string, excludeID int) ([]models.User, error)

	created    []repository.NewUser
	emailCalls []string
}

func (f *fakeUserRepo) Create(ctx context.Context, u repository.NewUser) (int, error) {
	f.created = append(f.created, u)
	return f.CreateFn(ctx, u)
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.emailCalls = append(f.emailCalls, email)
	if f.GetByEmailFn == nil {
		return nil, nil
	}
	return f.GetByEmailFn(ctx, email)
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	if f.GetByIDFn == nil {
		return nil, nil
	}
	return f.GetByIDFn(ctx, id)
}

func (f *fakeUserRepo) ListByCollege(ctx context.Context, college string, excludeID int) ([]models.User, error) {
	return f.ListByCollegeFn(ctx, college, excludeID)
}

// fakeRecorder captures recorded activity.
type fakeRecorder struct {
	mu     sync.Mutex
	events []models.ActivityEvent
}

func (f *fakeRecorder) Record(_ context.Context, e models.ActivityEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, e)
}

func (f *fakeRecorder) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Type)
	}
	return out
}

// fakeActivityRepo is a minimal stub that satisfies repository.ActivityRepo.
type fakeActivityRepo struct {
	gotUserID int
	gotFrom   time.Time
	gotTo     time.Time
	gotType   string

	appended  []models.ActivityEvent
	events    []models.ActivityEvent
	appendErr error
	err       error

	calls int
}

func (f *fakeActivityRepo) Append(_ context.Context, e models.ActivityEvent) error {
	f.appended = append(f.appended, e)
	return f.appendErr
}

func (f *fakeActivityRepo) List(_ context.Context, userID int, from, to time.Time, typ string) ([]models.ActivityEvent, error) {
	f.calls++
	f.gotUserID = userID
	f.gotFrom = from
	f.gotTo = to
	f.gotType = typ
	return f.events, f.err
}

// fakeStore records saved and removed keys.
type fakeStore struct {
	saveKey string
	saveErr error

	saved   []string
	removed []string
}

func (f *fakeStore) Save(_ context.Context, name string, r io.Reader, _ int64) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	_, _ = io.Copy(io.Discard, r)
	f.saved = append(f.saved, name)
	return f.saveKey, nil
}

func (f *fakeStore) Remove(_ context.Context, key string) error {
	f.removed = append(f.removed, key)
	return nil
}

type fakeInterestRepo struct {
	seeded [][]string
	list   []models.Interest
	n      int
	err    error
}

func (f *fakeInterestRepo) Seed(_ context.Context, names []string) (int, error) {
	f.seeded = append(f.seeded, names)
	return f.n, f.err
}

func (f *fakeInterestRepo) List(context.Context) ([]models.Interest, error) {
	return f.list, f.err
}
