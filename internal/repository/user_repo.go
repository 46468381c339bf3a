package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"campus_match/internal/models"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

// Ensure implementation of UserRepo interface at compile time.
var _ UserRepo = (*UserSQLite)(nil)

const (
	userColumns = `id, name, email, password_hash, college, bio, contact_info, profile_pic, created_at`

	insertUserSQL = `INSERT INTO users (name, email, password_hash, college, bio, contact_info, profile_pic) VALUES (?, ?, ?, ?, ?, ?, ?)`

	// Unknown interest ids select no row, so they are silently dropped.
	attachInterestSQL = `INSERT OR IGNORE INTO user_interests (user_id, interest_id) SELECT ?, id FROM interests WHERE id = ?`

	selectUserByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	selectUserByIDSQL    = `SELECT ` + userColumns + ` FROM users WHERE id = ?`

	selectUserInterestsSQL = `
		SELECT i.id, i.name FROM interests i
		JOIN user_interests ui ON ui.interest_id = i.id
		WHERE ui.user_id = ? ORDER BY i.id`

	selectCollegePeersSQL = `
		SELECT u.id, u.name, u.email, u.college, u.bio, u.contact_info, u.profile_pic, u.created_at, i.id, i.name
		FROM users u
		LEFT JOIN user_interests ui ON ui.user_id = u.id
		LEFT JOIN interests i ON i.id = ui.interest_id
		WHERE u.college = ? AND u.id <> ?
		ORDER BY u.id, i.id`
)

// Create inserts the user and its interest links in one transaction and returns the new ID.
func (r *UserSQLite) Create(ctx context.Context, u NewUser) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin create user tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, insertUserSQL,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.College,
		u.Bio,
		u.ContactInfo,
		sql.NullString{String: u.ProfilePic, Valid: u.ProfilePic != ""},
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("insert user %q: %w", u.Email, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", u.Email, err)
	}

	for _, interestID := range u.InterestIDs {
		if _, err := tx.ExecContext(ctx, attachInterestSQL, lastID, interestID); err != nil {
			return 0, fmt.Errorf("attach interest %d to user %d: %w", interestID, lastID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("commit create user %q: %w", u.Email, err)
	}
	return int(lastID), nil
}

// GetByEmail fetches a user with its interests. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, selectUserByEmailSQL, email)
}

// GetByID fetches a user with its interests. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByID(ctx context.Context, id int) (*models.User, error) {
	return r.getOne(ctx, selectUserByIDSQL, id)
}

func (r *UserSQLite) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	var (
		u   models.User
		pic sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.College,
		&u.Bio, &u.ContactInfo, &pic, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %v: %w", arg, err)
	}
	u.ProfilePic = pic.String
	u.CreatedAt = u.CreatedAt.UTC()

	interests, err := r.interestsOf(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	u.Interests = interests
	return &u, nil
}

func (r *UserSQLite) interestsOf(ctx context.Context, userID int) ([]models.Interest, error) {
	rows, err := r.db.QueryContext(ctx, selectUserInterestsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select interests of user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Interest, 0, 8)
	for rows.Next() {
		var i models.Interest
		if err := rows.Scan(&i.ID, &i.Name); err != nil {
			return nil, fmt.Errorf("scan interest of user %d: %w", userID, err)
		}
		out = append(out, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate interests of user %d: %w", userID, err)
	}
	return out, nil
}

// ListByCollege returns every user of the college except excludeID, ordered by id,
// each with its interests attached. Password hashes are not loaded.
func (r *UserSQLite) ListByCollege(ctx context.Context, college string, excludeID int) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, selectCollegePeersSQL, college, excludeID)
	if err != nil {
		return nil, fmt.Errorf("select users of college %q: %w", college, err)
	}
	defer rows.Close()

	out := make([]models.User, 0, 16)
	for rows.Next() {
		var (
			u            models.User
			pic          sql.NullString
			interestID   sql.NullInt64
			interestName sql.NullString
		)
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.College, &u.Bio, &u.ContactInfo, &pic, &u.CreatedAt,
			&interestID, &interestName,
		); err != nil {
			return nil, fmt.Errorf("scan user of college %q: %w", college, err)
		}

		// rows arrive grouped by user id
		if n := len(out); n == 0 || out[n-1].ID != u.ID {
			u.ProfilePic = pic.String
			u.CreatedAt = u.CreatedAt.UTC()
			u.Interests = []models.Interest{}
			out = append(out, u)
		}
		if interestID.Valid {
			last := &out[len(out)-1]
			last.Interests = append(last.Interests, models.Interest{ID: int(interestID.Int64), Name: interestName.String})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users of college %q: %w", college, err)
	}
	return out, nil
}

// isUniqueViolation reports whether err comes from a UNIQUE constraint.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		code := se.Code()
		if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
			return true
		}
		return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(se.Error(), "UNIQUE")
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
