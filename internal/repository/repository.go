package repository

// SessionRepository stores the six-cities auth token of each chat user
type SessionRepository interface {
	EnsureUserExists(userID int64) error
	GetToken(userID int64) (string, error)
	SaveToken(userID int64, token string) error
	DeleteToken(userID int64) error
	TouchSessions(userIDs []int64) error
	CleanStaleSessions(days int) (int64, error)
}
