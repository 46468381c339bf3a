package repository_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"campus_match/internal/models"
	"campus_match/internal/repository"
	"campus_match/internal/repository/db"
)

func openTestRepo(t *testing.T) *repository.Repository {
	t.Helper()
	sqlDB, err := db.InitDB(filepath.Join(t.TempDir(), "campus.db"))
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return repository.NewRepository(sqlDB)
}

func TestSQLite_RegistrationAndPool(t *testing.T) {
	ctx := context.Background()
	repos := openTestRepo(t)

	n, err := repos.Interests.Seed(ctx, models.DefaultInterests)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if n != len(models.DefaultInterests) {
		t.Fatalf("seeded %d; want %d", n, len(models.DefaultInterests))
	}
	if n, err = repos.Interests.Seed(ctx, models.DefaultInterests); err != nil || n != 0 {
		t.Fatalf("second Seed = (%d, %v); want (0, nil)", n, err)
	}

	aliceID, err := repos.Users.Create(ctx, repository.NewUser{
		Name: "Alice", Email: "alice@mit.edu", PasswordHash: "h", College: "MIT",
		InterestIDs: []int{1, 2, 999},
	})
	if err != nil {
		t.Fatalf("Create alice: %v", err)
	}
	if _, err := repos.Users.Create(ctx, repository.NewUser{
		Name: "Bob", Email: "bob@mit.edu", PasswordHash: "h", College: "MIT", ProfilePic: "bob.png",
		InterestIDs: []int{1, 3},
	}); err != nil {
		t.Fatalf("Create bob: %v", err)
	}
	if _, err := repos.Users.Create(ctx, repository.NewUser{
		Name: "Dave", Email: "dave@stanford.edu", PasswordHash: "h", College: "Stanford",
		InterestIDs: []int{1, 2},
	}); err != nil {
		t.Fatalf("Create dave: %v", err)
	}

	_, err = repos.Users.Create(ctx, repository.NewUser{Name: "Alice 2", Email: "alice@mit.edu", PasswordHash: "h", College: "MIT"})
	if !errors.Is(err, repository.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	alice, err := repos.Users.GetByEmail(ctx, "alice@mit.edu")
	if err != nil || alice == nil {
		t.Fatalf("GetByEmail = (%v, %v)", alice, err)
	}
	if alice.ID != aliceID || len(alice.Interests) != 2 {
		t.Fatalf("unexpected alice %+v (unknown interest id must be ignored)", alice)
	}
	if alice.CreatedAt.IsZero() {
		t.Fatalf("created_at not populated")
	}

	pool, err := repos.Users.ListByCollege(ctx, "MIT", aliceID)
	if err != nil {
		t.Fatalf("ListByCollege: %v", err)
	}
	if len(pool) != 1 || pool[0].Name != "Bob" || pool[0].ProfilePic != "bob.png" || len(pool[0].Interests) != 2 {
		t.Fatalf("unexpected pool %+v", pool)
	}
	if pool[0].PasswordHash != "" {
		t.Fatalf("pool must not carry password hashes")
	}

	missing, err := repos.Users.GetByID(ctx, 12345)
	if err != nil || missing != nil {
		t.Fatalf("GetByID(missing) = (%v, %v); want (nil, nil)", missing, err)
	}
}

func TestSQLite_ActivityRoundTrip(t *testing.T) {
	ctx := context.Background()
	repos := openTestRepo(t)

	id, err := repos.Users.Create(ctx, repository.NewUser{Name: "Eve", Email: "eve@mit.edu", PasswordHash: "h", College: "MIT"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	base := time.Date(2025, time.August, 1, 10, 0, 0, 0, time.UTC)
	for i, typ := range []string{models.ActivityRegister, models.ActivityLogin, models.ActivityLogout} {
		if err := repos.Activity.Append(ctx, models.ActivityEvent{
			UserID: id, OccurredAt: base.Add(time.Duration(i) * time.Minute), Type: typ, Description: typ,
			Metadata: map[string]any{"i": i},
		}); err != nil {
			t.Fatalf("Append %s: %v", typ, err)
		}
	}
	if err := repos.Activity.Append(ctx, models.ActivityEvent{Type: models.ActivityLoginFailed, Description: "unknown"}); err != nil {
		t.Fatalf("Append anonymous: %v", err)
	}

	all, err := repos.Activity.List(ctx, id, time.Time{}, time.Time{}, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 || all[0].Type != models.ActivityRegister || all[2].Type != models.ActivityLogout {
		t.Fatalf("unexpected events %+v", all)
	}

	logins, err := repos.Activity.List(ctx, id, base, base.Add(time.Minute), "login")
	if err != nil {
		t.Fatalf("List filtered: %v", err)
	}
	if len(logins) != 1 || !logins[0].OccurredAt.Equal(base.Add(time.Minute)) {
		t.Fatalf("unexpected filtered events %+v", logins)
	}
}
