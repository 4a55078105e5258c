package handler

import (
	"context"
	"fmt"

	"sixcities/internal/action"
	"sixcities/internal/domain"
	"sixcities/internal/selector"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	lock := h.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	s, err := h.sessions.Get(context.Background(), userID)
	if err != nil {
		h.logger.Error("Failed to get session", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	h.ResetDialog(userID)
	return h.sendView(context.Background(), s, view{route: domain.RouteMain, page: 1})
}

// handleLogin handles /login command
func (h *Handler) handleLogin(c tele.Context) error {
	userID := c.Sender().ID

	lock := h.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	s, err := h.sessions.Get(context.Background(), userID)
	if err != nil {
		h.logger.Error("Failed to get session", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	if user := selector.User(s.State()); user != nil && selector.IsAuthorized(s.State()) {
		return c.Send(fmt.Sprintf("You are signed in as %s. Send /logout to sign out.", user.Email))
	}

	s.Dispatch(action.RedirectToRoute(domain.RouteLogin))
	return nil
}

// handleLogout handles /logout command
func (h *Handler) handleLogout(c tele.Context) error {
	userID := c.Sender().ID

	lock := h.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	s, err := h.sessions.Get(context.Background(), userID)
	if err != nil {
		h.logger.Error("Failed to get session", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	h.ResetDialog(userID)
	s.Run(context.Background(), action.Logout())

	h.logger.Info("User signed out", zap.Int64("user_id", userID))
	return nil
}

// handleFavorites handles /favorites command
func (h *Handler) handleFavorites(c tele.Context) error {
	userID := c.Sender().ID

	lock := h.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	s, err := h.sessions.Get(context.Background(), userID)
	if err != nil {
		h.logger.Error("Failed to get session", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	return h.sendView(context.Background(), s, view{route: domain.RouteFavorites, reload: true})
}
