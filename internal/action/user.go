package action

import (
	"context"

	"sixcities/internal/adapter"
	"sixcities/internal/api"
	"sixcities/internal/domain"
	"sixcities/internal/store"
)

// SetAuthStatus records the auth status; UNKNOWN is never restored
func SetAuthStatus(status domain.AuthStatus) store.SetAuthStatus {
	return store.SetAuthStatus{Status: status}
}

// SetUser sets the current user; nil clears it
func SetUser(user *domain.User) store.SetUser {
	return store.SetUser{User: user}
}

// RedirectToRoute moves the client to a screen
func RedirectToRoute(route domain.AppRoute) store.RedirectToRoute {
	return store.RedirectToRoute{Route: route}
}

// RedirectToOffer opens the screen of a single offer
func RedirectToOffer(offerID int) store.RedirectToRoute {
	return store.RedirectToRoute{Route: domain.RouteOffer, OfferID: offerID}
}

// CheckAuth resolves the initial UNKNOWN status
func CheckAuth() Task {
	return func(ctx context.Context, d store.Dispatcher, gw api.Gateway) {
		var user adapter.ServerUser
		if err := gw.Get(ctx, api.RouteLogin, &user); err != nil {
			d.Dispatch(SetAuthStatus(domain.AuthStatusNoAuth))
			d.Dispatch(SetError(err, domain.SliceUser))
			return
		}

		u := adapter.AdaptUserToClient(user)
		d.Dispatch(SetUser(&u))
		d.Dispatch(SetAuthStatus(domain.AuthStatusAuth))
	}
}

// Login signs in and redirects to the main screen.
// A failed attempt leaves the user slice untouched.
func Login(email, password string) Task {
	return func(ctx context.Context, d store.Dispatcher, gw api.Gateway) {
		body := adapter.AdaptCredentialsToServer(domain.Credentials{Email: email, Password: password})

		var user adapter.ServerUser
		if err := gw.Post(ctx, api.RouteLogin, body, &user); err != nil {
			d.Dispatch(SetError(err, domain.SliceUser))
			return
		}

		u := adapter.AdaptUserToClient(user)
		d.Dispatch(SetUser(&u))
		d.Dispatch(SetAuthStatus(domain.AuthStatusAuth))
		d.Dispatch(RedirectToRoute(domain.RouteMain))
	}
}

// Logout drops the user locally without a request
func Logout() Task {
	return func(ctx context.Context, d store.Dispatcher, gw api.Gateway) {
		d.Dispatch(SetUser(nil))
		d.Dispatch(SetAuthStatus(domain.AuthStatusNoAuth))
		d.Dispatch(RedirectToRoute(domain.RouteLogin))
	}
}
