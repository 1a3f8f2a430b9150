package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// User is a challenge owner. IDs are uuids minted on first use so that
// renames and display concerns never touch challenge ownership.
type User struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// UserRepo resolves user names to stable identities.
type UserRepo interface {
	// GetOrCreateByName returns the user with the given name, creating
	// it if necessary.
	GetOrCreateByName(ctx context.Context, name string) (*User, error)

	// List returns all users, oldest first.
	List(ctx context.Context) ([]*User, error)
}

type userRepo struct {
	db *sql.DB
}

func (r *userRepo) GetOrCreateByName(ctx context.Context, name string) (*User, error) {
	if name == "" {
		return nil, errors.New("user name must not be empty")
	}

	u, err := r.getByName(ctx, name)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user %q: %w", name, err)
	}

	created := &User{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, created_at) VALUES (?, ?, ?)`,
		created.ID, created.Name, created.CreatedAt.Format(time.RFC3339Nano))
	if err == nil {
		return created, nil
	}

	// Two first-use callers can race on the same name; the unique
	// constraint picks the winner and the loser re-reads.
	if u, getErr := r.getByName(ctx, name); getErr == nil {
		return u, nil
	}
	return nil, fmt.Errorf("create user %q: %w", name, err)
}

func (r *userRepo) getByName(ctx context.Context, name string) (*User, error) {
	var u User
	var createdAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM users WHERE name = ?`, name).
		Scan(&u.ID, &u.Name, &createdAt)
	if err != nil {
		return nil, err
	}
	if u.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	return &u, nil
}

func (r *userRepo) List(ctx context.Context) ([]*User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []*User
	for rows.Next() {
		var u User
		var createdAt string
		if err := rows.Scan(&u.ID, &u.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		if u.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
		}
		out = append(out, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return out, nil
}
