package handler

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"sixcities/internal/action"
	"sixcities/internal/domain"
	"sixcities/internal/selector"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on dialog state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	lock := h.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	dialog := h.GetDialog(userID)

	switch dialog.State {
	case domain.StateWaitingEmail:
		return h.handleEmail(c, text)
	case domain.StateWaitingPassword:
		return h.handlePassword(c, dialog, text)
	case domain.StateWaitingRating:
		return c.Send("Choose a rating first", ratingMarkup())
	case domain.StateWaitingReview:
		return h.handleReviewText(c, dialog, text)
	default:
		return c.Send("Use the buttons below the offers or send /start")
	}
}

func (h *Handler) handleEmail(c tele.Context, text string) error {
	if !isEmail(text) {
		return c.Send("That does not look like an e-mail. Try again:", cancelMarkup())
	}

	h.SetDialog(c.Sender().ID, &domain.DialogData{
		State: domain.StateWaitingPassword,
		Email: text,
	})
	return c.Send("Now send your password:", cancelMarkup())
}

func (h *Handler) handlePassword(c tele.Context, dialog *domain.DialogData, password string) error {
	userID := c.Sender().ID

	// Passwords should not stay in the chat history
	if err := c.Delete(); err != nil {
		h.logger.Debug("Failed to delete password message", zap.Int64("user_id", userID), zap.Error(err))
	}

	if password == "" || strings.ContainsAny(password, " \t") {
		return c.Send("Password must not contain spaces. Send your password:", cancelMarkup())
	}

	s, err := h.sessions.Get(context.Background(), userID)
	if err != nil {
		h.logger.Error("Failed to get session", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	h.ResetDialog(userID)
	s.Run(context.Background(), action.Login(dialog.Email, password))

	state := s.State()
	if selector.IsAuthorized(state) {
		h.logger.Info("User signed in", zap.Int64("user_id", userID))
		return nil
	}

	// Failed attempt: show the error and start over
	text, markup, _ := h.compose(s, view{route: domain.RouteLogin})
	return c.Send(text, markup)
}

func (h *Handler) handleReviewText(c tele.Context, dialog *domain.DialogData, text string) error {
	userID := c.Sender().ID

	if dialog.Review == nil {
		h.ResetDialog(userID)
		return c.Send("Open an offer and press Write a review")
	}
	if dialog.Review.IsSubmitting {
		return c.Send("Your review is being sent")
	}

	form := *dialog.Review
	form.Comment = text
	if err := form.Validate(); err != nil {
		return c.Send(fmt.Sprintf("%s\n\n%s", err, reviewPrompt(form.Rating)), cancelMarkup())
	}

	s, err := h.sessions.Get(context.Background(), userID)
	if err != nil {
		h.logger.Error("Failed to get session", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	form.IsSubmitting = true
	h.SetDialog(userID, &domain.DialogData{
		State:   domain.StateWaitingReview,
		OfferID: dialog.OfferID,
		Review:  &form,
	})

	s.Run(context.Background(), action.UploadReview(dialog.OfferID, form))
	h.ResetDialog(userID)

	return h.sendView(context.Background(), s, view{route: domain.RouteOffer, offerID: dialog.OfferID})
}

func reviewPrompt(rating int) string {
	return fmt.Sprintf(
		"Rating: %s\n\nTell how was your stay, what you like and what can be improved (%d to %d characters):",
		strings.Repeat("★", rating)+strings.Repeat("☆", domain.MaxReviewRating-rating),
		domain.MinCommentLength,
		domain.MaxCommentLength,
	)
}

func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
