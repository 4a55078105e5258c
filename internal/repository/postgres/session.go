package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// SessionRepo implements repository.SessionRepository
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// EnsureUserExists creates session row if not exists and marks it as used
func (r *SessionRepo) EnsureUserExists(userID int64) error {
	query := `
		INSERT INTO sessions (user_id)
		VALUES ($1)
		ON CONFLICT (user_id)
		DO UPDATE SET updated_at = NOW()
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// GetToken returns the stored token, or "" if the user never logged in
func (r *SessionRepo) GetToken(userID int64) (string, error) {
	var token string
	query := `SELECT token FROM sessions WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&token)

	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return token, nil
}

// SaveToken stores the token and touches the session
func (r *SessionRepo) SaveToken(userID int64, token string) error {
	query := `
		INSERT INTO sessions (user_id, token)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET token = EXCLUDED.token, updated_at = NOW()
	`
	_, err := r.db.Exec(query, userID, token)
	return err
}

// DeleteToken clears the token but keeps the session row
func (r *SessionRepo) DeleteToken(userID int64) error {
	query := `
		UPDATE sessions
		SET token = '', updated_at = NOW()
		WHERE user_id = $1
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// TouchSessions marks sessions of the given users as used
func (r *SessionRepo) TouchSessions(userIDs []int64) error {
	if len(userIDs) == 0 {
		return nil
	}
	query := `
		UPDATE sessions
		SET updated_at = NOW()
		WHERE user_id = ANY($1)
	`
	_, err := r.db.Exec(query, pq.Array(userIDs))
	return err
}

// CleanStaleSessions deletes sessions not touched for the given number of days
func (r *SessionRepo) CleanStaleSessions(days int) (int64, error) {
	query := `
		DELETE FROM sessions
		WHERE updated_at < NOW() - INTERVAL '1 day' * $1
	`
	res, err := r.db.Exec(query, days)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
