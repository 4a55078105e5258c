package handler

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"unicode"

	"sixcities/internal/action"
	"sixcities/internal/domain"
	"sixcities/internal/selector"
	"sixcities/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// parseID extracts a positive number following prefix
func parseID(data, prefix string) (int, bool) {
	if !strings.HasPrefix(data, prefix) {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimPrefix(data, prefix))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	if data == "" {
		data = callback.Unique
	}
	userID := c.Sender().ID

	h.logger.Debug("Processing callback",
		zap.String("data", data),
		zap.String("id", callback.ID),
		zap.Int64("user_id", userID),
	)

	lock := h.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	s, err := h.sessions.Get(context.Background(), userID)
	if err != nil {
		h.logger.Error("Failed to get session", zap.Int64("user_id", userID), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Something went wrong"})
	}

	switch data {
	case cbMain:
		return h.showView(c, s, view{route: domain.RouteMain, page: 1})
	case cbFavorites:
		if !selector.IsAuthorized(s.State()) {
			return h.redirectToLogin(c, s)
		}
		return h.showView(c, s, view{route: domain.RouteFavorites})
	case cbLogin:
		return h.redirectToLogin(c, s)
	case cbLogout:
		s.Run(context.Background(), action.Logout())
		return c.Respond()
	case cbCancel:
		return h.handleCancel(c, s)
	case cbSort:
		s.Dispatch(action.ChangeSort(selector.ActiveSort(s.State()).Next()))
		return h.showView(c, s, view{route: domain.RouteMain, page: 1})
	}

	switch {
	case strings.HasPrefix(data, prefixPage):
		return h.handlePagination(c, s, data)
	case strings.HasPrefix(data, prefixCity):
		return h.handleCity(c, s, strings.TrimPrefix(data, prefixCity))
	case strings.HasPrefix(data, prefixOffer):
		return h.handleOffer(c, s, data)
	case strings.HasPrefix(data, prefixFav):
		return h.handleFavorite(c, s, data)
	case strings.HasPrefix(data, prefixReview):
		return h.handleReview(c, s, data)
	case strings.HasPrefix(data, prefixRate):
		return h.handleRate(c, data)
	}

	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

func (h *Handler) redirectToLogin(c tele.Context, s *session.Session) error {
	s.Dispatch(action.RedirectToRoute(domain.RouteLogin))
	return c.Respond(&tele.CallbackResponse{Text: "Please sign in"})
}

// handleCancel cancels current dialog and returns to the offers
func (h *Handler) handleCancel(c tele.Context, s *session.Session) error {
	h.ResetDialog(s.UserID)
	return h.showView(c, s, view{route: domain.RouteMain, page: 1})
}

// handlePagination handles page navigation
func (h *Handler) handlePagination(c tele.Context, s *session.Session, data string) error {
	page, ok := parseID(data, prefixPage)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid page"})
	}
	return h.showView(c, s, view{route: domain.RouteMain, page: page})
}

func (h *Handler) handleCity(c tele.Context, s *session.Session, city string) error {
	known := false
	for _, name := range selector.Cities(s.State()) {
		if name == city {
			known = true
			break
		}
	}
	if !known {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown city"})
	}

	s.Dispatch(action.ChangeCity(city))
	return h.showView(c, s, view{route: domain.RouteMain, page: 1})
}

// handleOffer opens the offer screen through the navigator
func (h *Handler) handleOffer(c tele.Context, s *session.Session, data string) error {
	id, ok := parseID(data, prefixOffer)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid offer"})
	}

	s.Dispatch(action.RedirectToOffer(id))
	return c.Respond()
}

// Reasons a favorite toggle is not started
var (
	errSignInRequired = errors.New("sign in required")
	errOfferNotFound  = errors.New("offer not found")
	errStillSaving    = errors.New("still saving")
)

// startToggle flags the offer as saving and toggles it in the background.
// An offer already saving is left alone.
func startToggle(ctx context.Context, s *session.Session, id int) (<-chan struct{}, error) {
	state := s.State()
	if !selector.IsAuthorized(state) {
		return nil, errSignInRequired
	}

	offer, ok := selector.FindOffer(state, id)
	if !ok {
		return nil, errOfferNotFound
	}
	if offer.IsSaving {
		return nil, errStillSaving
	}

	s.Dispatch(action.MarkSaving(id))
	return s.Go(ctx, action.ToggleFavorite(offer)), nil
}

// handleFavorite toggles the favorite flag of an offer in the background
func (h *Handler) handleFavorite(c tele.Context, s *session.Session, data string) error {
	id, ok := parseID(data, prefixFav)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid offer"})
	}

	done, err := startToggle(context.Background(), s, id)
	switch {
	case errors.Is(err, errSignInRequired):
		return h.redirectToLogin(c, s)
	case errors.Is(err, errOfferNotFound):
		return c.Respond(&tele.CallbackResponse{Text: "Offer not found"})
	case errors.Is(err, errStillSaving):
		return c.Respond(&tele.CallbackResponse{Text: "Still saving, please wait"})
	}

	msg := c.Message()
	h.refreshView(s, msg)

	go func() {
		<-done

		lock := h.userLock(s.UserID)
		lock.Lock()
		defer lock.Unlock()

		h.refreshView(s, msg)
	}()

	return c.Respond()
}

// handleReview starts the review form for an offer
func (h *Handler) handleReview(c tele.Context, s *session.Session, data string) error {
	id, ok := parseID(data, prefixReview)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid offer"})
	}
	if !selector.IsAuthorized(s.State()) {
		return h.redirectToLogin(c, s)
	}

	h.SetDialog(s.UserID, &domain.DialogData{
		State:   domain.StateWaitingRating,
		OfferID: id,
		Review:  &domain.ReviewForm{},
	})

	if err := c.Send("Your review\n\nHow would you rate your stay?", ratingMarkup()); err != nil {
		return err
	}
	return c.Respond()
}

// handleRate stores the rating and asks for the review text
func (h *Handler) handleRate(c tele.Context, data string) error {
	userID := c.Sender().ID

	rating, ok := parseID(data, prefixRate)
	if !ok || rating < domain.MinReviewRating || rating > domain.MaxReviewRating {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid rating"})
	}

	dialog := h.GetDialog(userID)
	if dialog.State != domain.StateWaitingRating || dialog.Review == nil {
		return c.Respond(&tele.CallbackResponse{Text: "Open an offer and press Write a review"})
	}

	form := *dialog.Review
	form.Rating = rating
	h.SetDialog(userID, &domain.DialogData{
		State:   domain.StateWaitingReview,
		OfferID: dialog.OfferID,
		Review:  &form,
	})

	text := reviewPrompt(rating)
	if err := c.Edit(text, cancelMarkup()); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, cancelMarkup())
	}
	return c.Respond()
}
