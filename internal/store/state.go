package store

import "sixcities/internal/domain"

// State is the union of independent slices.
// A slice reducer only ever reads its own slice.
type State struct {
	Places    PlacesState
	Place     PlaceState
	Favorites FavoritesState
	User      UserState
	App       AppState
}

// PlacesState is the offers list with its city and order
type PlacesState struct {
	Offers   []domain.Offer
	City     string
	Sort     domain.SortType
	IsLoaded bool
}

// PlaceState is the detail screen of a single offer.
// OfferID is 0 when no offer screen is open.
type PlaceState struct {
	OfferID       int
	Offer         *domain.Offer
	Reviews       []domain.Review
	SimilarOffers []domain.Offer
}

// FavoritesState holds the bookmarked offers
type FavoritesState struct {
	Offers   []domain.Offer
	IsLoaded bool
}

// UserState is the auth status and the signed in user
type UserState struct {
	Status domain.AuthStatus
	User   *domain.User
}

// AppState holds the last error
type AppState struct {
	Error *domain.AppError
}

// InitialState returns the state before any action is dispatched
func InitialState() State {
	return State{
		Places: PlacesState{
			Offers: []domain.Offer{},
			City:   domain.DefaultCity,
			Sort:   domain.SortPopular,
		},
		Favorites: FavoritesState{
			Offers: []domain.Offer{},
		},
		User: UserState{
			Status: domain.AuthStatusUnknown,
		},
	}
}
