package service

import (
	"fmt"

	"sixcities/internal/repository"
)

// TokenService keeps the six-cities auth token of each chat user
type TokenService struct {
	sessionRepo repository.SessionRepository
}

// NewTokenService creates a new token service
func NewTokenService(sessionRepo repository.SessionRepository) *TokenService {
	return &TokenService{sessionRepo: sessionRepo}
}

// Restore returns the stored token, creating the session row on first contact
func (s *TokenService) Restore(userID int64) (string, error) {
	if err := s.sessionRepo.EnsureUserExists(userID); err != nil {
		return "", fmt.Errorf("ensure session: %w", err)
	}

	token, err := s.sessionRepo.GetToken(userID)
	if err != nil {
		return "", fmt.Errorf("get token: %w", err)
	}

	return token, nil
}

// Remember stores a token received from the login endpoint
func (s *TokenService) Remember(userID int64, token string) error {
	if token == "" {
		return s.Forget(userID)
	}
	return s.sessionRepo.SaveToken(userID, token)
}

// Forget drops the token after logout or an unauthorized response
func (s *TokenService) Forget(userID int64) error {
	return s.sessionRepo.DeleteToken(userID)
}
