package middleware

import (
	"context"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AuthChecker resolves the authorization status of a chat user
type AuthChecker interface {
	IsAuthorized(ctx context.Context, userID int64) (bool, error)
}

// AuthRequired lets only users signed in to the server through
func AuthRequired(checker AuthChecker, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			authorized, err := checker.IsAuthorized(context.Background(), userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware",
					zap.Int64("user_id", userID),
					zap.Error(err),
				)
				return c.Send("Something went wrong. Please try again later.")
			}

			if !authorized {
				if c.Callback() != nil {
					return c.Respond(&tele.CallbackResponse{
						Text:      "Please sign in first: /login",
						ShowAlert: true,
					})
				}
				return c.Send("Please sign in first: /login")
			}

			return next(c)
		}
	}
}
