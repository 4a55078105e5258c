package store

import (
	"sixcities/internal/domain"

	"go.uber.org/zap"
)

// Navigator moves the client to another screen
type Navigator interface {
	Navigate(route domain.AppRoute, offerID int)
}

// NavigatorFunc adapts a function to Navigator
type NavigatorFunc func(route domain.AppRoute, offerID int)

// Navigate calls f(route, offerID)
func (f NavigatorFunc) Navigate(route domain.AppRoute, offerID int) {
	f(route, offerID)
}

// LoggingMiddleware logs every dispatched action
func LoggingMiddleware(logger *zap.Logger) Middleware {
	return func(next Dispatch) Dispatch {
		return func(a Action) {
			switch e := a.(type) {
			case SetError:
				logger.Warn("Error dispatched",
					zap.String("slice", string(e.Error.Slice)),
					zap.Int("status", e.Error.Status),
					zap.String("message", e.Error.Message),
				)
			case RedirectToRoute:
				logger.Debug("Redirect dispatched", zap.String("path", e.Path()))
			default:
				logger.Debug("Action dispatched", zap.String("type", string(a.Type())))
			}
			next(a)
		}
	}
}

// RedirectMiddleware hands RedirectToRoute actions to the navigator
// after they passed the rest of the chain.
func RedirectMiddleware(nav Navigator) Middleware {
	return func(next Dispatch) Dispatch {
		return func(a Action) {
			next(a)
			if r, ok := a.(RedirectToRoute); ok && nav != nil {
				nav.Navigate(r.Route, r.OfferID)
			}
		}
	}
}
