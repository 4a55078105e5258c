package handler

import (
	"context"
	"strings"

	"sixcities/internal/action"
	"sixcities/internal/domain"
	"sixcities/internal/selector"
	"sixcities/internal/session"
	"sixcities/internal/store"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// navigatorFor renders redirects of a user as new messages
func (h *Handler) navigatorFor(userID int64) store.Navigator {
	return store.NavigatorFunc(func(route domain.AppRoute, offerID int) {
		s, ok := h.sessions.Lookup(userID)
		if !ok {
			return
		}

		v := view{route: route, page: 1, offerID: offerID}
		if err := h.sendView(context.Background(), s, v); err != nil {
			h.logger.Error("Failed to render redirect",
				zap.Int64("user_id", userID),
				zap.String("route", string(route)),
				zap.Error(err),
			)
		}
	})
}

// load fetches what a screen needs and not yet in the state
func (h *Handler) load(ctx context.Context, s *session.Session, v view) {
	state := s.State()

	if v.route != domain.RouteOffer && state.Place.OfferID != 0 {
		s.Dispatch(action.ClosePlace())
	}

	switch v.route {
	case domain.RouteMain:
		if !selector.IsOffersLoaded(state) {
			s.Run(ctx, action.FetchOffers())
		}
	case domain.RouteFavorites:
		if v.reload || !selector.IsFavoritesLoaded(state) {
			s.Run(ctx, action.FetchFavorites())
		}
	case domain.RouteOffer:
		if state.Place.OfferID != v.offerID || state.Place.Offer == nil {
			h.openOffer(ctx, s, v.offerID)
		}
	}
}

// openOffer binds the place slice to the offer and loads its detail data
func (h *Handler) openOffer(ctx context.Context, s *session.Session, offerID int) {
	s.Dispatch(action.OpenPlace(offerID))

	done := []<-chan struct{}{
		s.Go(ctx, action.FetchOffer(offerID)),
		s.Go(ctx, action.FetchReviews(offerID)),
		s.Go(ctx, action.FetchSimilarOffers(offerID)),
	}
	for _, d := range done {
		<-d
	}
}

// compose renders the screen from the current state.
// A rendered error is cleared so it is shown once; a newer one is kept.
func (h *Handler) compose(s *session.Session, v view) (string, *tele.ReplyMarkup, view) {
	state := s.State()

	var text string
	var markup *tele.ReplyMarkup

	switch v.route {
	case domain.RouteLogin:
		h.SetDialog(s.UserID, &domain.DialogData{State: domain.StateWaitingEmail})
		text, markup = loginScreen(state)
	case domain.RouteFavorites:
		text, markup = favoritesScreen(state)
	case domain.RouteOffer:
		text, markup = offerScreen(state)
	default:
		v.route = domain.RouteMain
		text, markup, v.page = mainScreen(state, v.page)
	}

	if shown := selector.LastError(state); shown != nil {
		s.Dispatch(action.ClearShownError(*shown))
	}

	v.reload = false
	h.setView(s.UserID, v)
	return text, markup, v
}

// sendView renders a screen as a new message
func (h *Handler) sendView(ctx context.Context, s *session.Session, v view) error {
	h.load(ctx, s, v)
	text, markup, v := h.compose(s, v)

	to := tele.ChatID(s.UserID)
	if _, err := h.bot.Send(to, text, markup); err != nil {
		return err
	}

	if v.route == domain.RouteOffer {
		h.renderMarkers(to, s.State())
	}
	return nil
}

// showView renders a screen in place of the message with the pressed button
func (h *Handler) showView(c tele.Context, s *session.Session, v view) error {
	h.load(context.Background(), s, v)
	text, markup, _ := h.compose(s, v)

	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, s.UserID); handleErr == nil {
			return nil // Message was already modified, just acknowledged
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// refreshView redraws the current screen of a message without loading
func (h *Handler) refreshView(s *session.Session, msg *tele.Message) {
	text, markup, _ := h.compose(s, h.currentView(s.UserID))

	var err error
	if msg != nil {
		_, err = h.bot.Edit(msg, text, markup)
	} else {
		_, err = h.bot.Send(tele.ChatID(s.UserID), text, markup)
	}
	if err != nil && !strings.Contains(err.Error(), "message is not modified") {
		h.logger.Warn("Failed to refresh view", zap.Int64("user_id", s.UserID), zap.Error(err))
	}
}

func (h *Handler) renderMarkers(to tele.Recipient, state store.State) {
	offer := selector.Offer(state)
	if offer == nil {
		return
	}

	offers := append([]domain.Offer{}, selector.SimilarOffers(state)...)
	offers = append(offers, *offer)

	if err := h.markers.RenderMarkers(to, offer.City, offers, offer.ID); err != nil {
		h.logger.Warn("Failed to render map markers", zap.Int("offer_id", offer.ID), zap.Error(err))
	}
}
