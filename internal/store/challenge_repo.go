package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/chriscasey/codechallenger/internal/challenge"
)

// challengeRepo implements ChallengeRepo over raw SQL. Optimistic
// concurrency lives here: every UPDATE carries the version the caller
// loaded, and zero affected rows means a concurrent writer won.
type challengeRepo struct {
	db *sql.DB
}

const challengeColumns = `id, owner_id, title, description, solution, difficulty,
	status, failed_attempts, last_attempt_at, completed_at, version`

func (r *challengeRepo) Get(ctx context.Context, id int64, ownerID string) (*challenge.Challenge, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+challengeColumns+` FROM challenges WHERE id = ? AND owner_id = ?`,
		id, ownerID)

	ch, err := scanChallenge(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, challenge.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get challenge %d: %w", id, err)
	}
	return ch, nil
}

func (r *challengeRepo) Create(ctx context.Context, ch *challenge.Challenge) (*challenge.Challenge, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO challenges
			(owner_id, title, description, solution, difficulty, status,
			 failed_attempts, last_attempt_at, completed_at, version)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 1)`,
		ch.OwnerID, ch.Title, ch.Description, ch.Solution, ch.Difficulty,
		string(ch.Status), ch.FailedAttempts,
		timeText(ch.LastAttemptAt), timeText(ch.CompletedAt))
	if err != nil {
		return nil, fmt.Errorf("create challenge: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create challenge: %w", err)
	}

	out := *ch
	out.ID = id
	out.Version = 1
	return &out, nil
}

func (r *challengeRepo) Update(ctx context.Context, ch *challenge.Challenge) (*challenge.Challenge, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE challenges
		 SET title = ?, description = ?, solution = ?, difficulty = ?,
		     status = ?, failed_attempts = ?, last_attempt_at = ?,
		     completed_at = ?, version = version + 1
		 WHERE id = ? AND owner_id = ? AND version = ?`,
		ch.Title, ch.Description, ch.Solution, ch.Difficulty,
		string(ch.Status), ch.FailedAttempts,
		timeText(ch.LastAttemptAt), timeText(ch.CompletedAt),
		ch.ID, ch.OwnerID, ch.Version)
	if err != nil {
		return nil, fmt.Errorf("update challenge %d: %w", ch.ID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update challenge %d: %w", ch.ID, err)
	}
	if n == 0 {
		return nil, challenge.ErrConflict
	}

	out := *ch
	out.Version = ch.Version + 1
	return &out, nil
}

func (r *challengeRepo) CountByStatus(ctx context.Context, ownerID string, status challenge.Status) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM challenges WHERE owner_id = ? AND status = ?`,
		ownerID, string(status)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count challenges: %w", err)
	}
	return n, nil
}

func (r *challengeRepo) ListByOwner(ctx context.Context, ownerID string) ([]*challenge.Challenge, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+challengeColumns+` FROM challenges WHERE owner_id = ? ORDER BY id DESC`,
		ownerID)
	if err != nil {
		return nil, fmt.Errorf("list challenges: %w", err)
	}
	defer rows.Close()
	return collectChallenges(rows)
}

func (r *challengeRepo) ListAll(ctx context.Context) ([]*challenge.Challenge, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+challengeColumns+` FROM challenges ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list all challenges: %w", err)
	}
	defer rows.Close()
	return collectChallenges(rows)
}

func collectChallenges(rows *sql.Rows) ([]*challenge.Challenge, error) {
	var out []*challenge.Challenge
	for rows.Next() {
		ch, err := scanChallenge(rows)
		if err != nil {
			return nil, fmt.Errorf("scan challenge: %w", err)
		}
		out = append(out, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate challenges: %w", err)
	}
	return out, nil
}

// rowScanner lets scanChallenge work for both QueryRow and Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanChallenge(row rowScanner) (*challenge.Challenge, error) {
	var ch challenge.Challenge
	var status string
	var lastAttempt, completed sql.NullString

	err := row.Scan(&ch.ID, &ch.OwnerID, &ch.Title, &ch.Description,
		&ch.Solution, &ch.Difficulty, &status, &ch.FailedAttempts,
		&lastAttempt, &completed, &ch.Version)
	if err != nil {
		return nil, err
	}

	ch.Status = challenge.Status(status)
	if ch.LastAttemptAt, err = parseTimeText(lastAttempt); err != nil {
		return nil, err
	}
	if ch.CompletedAt, err = parseTimeText(completed); err != nil {
		return nil, err
	}
	return &ch, nil
}

// timeText converts an optional timestamp to its stored TEXT form.
// Timestamps persist as RFC 3339 in UTC.
func timeText(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(time.RFC3339Nano), Valid: true}
}

func parseTimeText(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s.String)
	if err != nil {
		return nil, fmt.Errorf("parse timestamp %q: %w", s.String, err)
	}
	return &t, nil
}
