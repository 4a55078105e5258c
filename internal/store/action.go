// Package store holds the client state container: actions, reducers and the Store.
package store

import "sixcities/internal/domain"

// ActionType is the wire name of an action
type ActionType string

const (
	ActionLoadOffers        ActionType = "LOAD_OFFERS"
	ActionChangeCity        ActionType = "CHANGE_CITY"
	ActionChangeSort        ActionType = "CHANGE_SORT"
	ActionOpenPlace         ActionType = "OPEN_PLACE"
	ActionClosePlace        ActionType = "CLOSE_PLACE"
	ActionLoadOffer         ActionType = "LOAD_OFFER"
	ActionLoadComments      ActionType = "LOAD_COMMENTS"
	ActionUploadComment     ActionType = "UPLOAD_COMMENT"
	ActionLoadSimilarOffers ActionType = "LOAD_SIMILAR_OFFERS"
	ActionLoadFavorites     ActionType = "LOAD_FAVORITES"
	ActionUpdateFavorite    ActionType = "UPDATE_FAVORITE"
	ActionMarkSaving        ActionType = "MARK_SAVING"
	ActionClearSaving       ActionType = "CLEAR_SAVING"
	ActionSetAuthStatus     ActionType = "SET_AUTH_STATUS"
	ActionSetUser           ActionType = "SET_USER"
	ActionRedirectToRoute   ActionType = "REDIRECT_TO_ROUTE"
	ActionSetError          ActionType = "SET_ERROR"
	ActionClearError        ActionType = "CLEAR_ERROR"
)

// Action is a closed set of state transitions.
// Only types declared in this package implement it.
type Action interface {
	Type() ActionType
	action()
}

// Result is implemented by actions that carry a successful server response
// for a slice. A result clears a pending error of the same slice.
type Result interface {
	Action
	ResultSlice() domain.Slice
}

// Places

// LoadOffers replaces the offers list with a fresh server response
type LoadOffers struct {
	Offers []domain.Offer
}

// ChangeCity selects the city whose offers are listed
type ChangeCity struct {
	City string
}

// ChangeSort selects the order of the offers list
type ChangeSort struct {
	Sort domain.SortType
}

// Place

// OpenPlace binds the place slice to an offer and drops previous detail data
type OpenPlace struct {
	OfferID int
}

// ClosePlace tears the place slice down. Results arriving later are ignored.
type ClosePlace struct{}

// LoadOffer sets the detail offer of the open place
type LoadOffer struct {
	Offer domain.Offer
}

// LoadComments sets the reviews of the open place
type LoadComments struct {
	OfferID int
	Reviews []domain.Review
}

// UploadComment carries the review list returned after posting a review
type UploadComment struct {
	OfferID int
	Reviews []domain.Review
}

// LoadSimilarOffers sets the offers near the open place
type LoadSimilarOffers struct {
	OfferID int
	Offers  []domain.Offer
}

// Favorites

// LoadFavorites replaces the favorites list
type LoadFavorites struct {
	Offers []domain.Offer
}

// UpdateFavorite carries an offer confirmed by the server after a toggle
type UpdateFavorite struct {
	Offer domain.Offer
}

// MarkSaving flags an offer as having a favorite toggle in flight
type MarkSaving struct {
	OfferID int
}

// ClearSaving drops the in-flight flag after a failed toggle
type ClearSaving struct {
	OfferID int
}

// User

// SetAuthStatus records the result of an auth check, login or logout
type SetAuthStatus struct {
	Status domain.AuthStatus
}

// SetUser replaces the current user, nil means anonymous
type SetUser struct {
	User *domain.User
}

// RedirectToRoute is handled by RedirectMiddleware and leaves state unchanged
type RedirectToRoute struct {
	Route   domain.AppRoute
	OfferID int
}

// Path returns the client path of the redirect target
func (a RedirectToRoute) Path() string {
	if a.Route == domain.RouteOffer {
		return domain.OfferLink(a.OfferID)
	}
	return a.Route.Path()
}

// App

// SetError replaces the last error
type SetError struct {
	Error domain.AppError
}

// ClearError drops the last error. With Error set, it only drops that exact
// error, so an error raised after the screen was rendered survives.
type ClearError struct {
	Error *domain.AppError
}

func (LoadOffers) Type() ActionType { return ActionLoadOffers }
func (ChangeCity) Type() ActionType { return ActionChangeCity }
func (ChangeSort) Type() ActionType { return ActionChangeSort }
func (OpenPlace) Type() ActionType { return ActionOpenPlace }
func (ClosePlace) Type() ActionType { return ActionClosePlace }
func (LoadOffer) Type() ActionType { return ActionLoadOffer }
func (LoadComments) Type() ActionType { return ActionLoadComments }
func (UploadComment) Type() ActionType { return ActionUploadComment }
func (LoadSimilarOffers) Type() ActionType { return ActionLoadSimilarOffers }
func (LoadFavorites) Type() ActionType { return ActionLoadFavorites }
func (UpdateFavorite) Type() ActionType { return ActionUpdateFavorite }
func (MarkSaving) Type() ActionType { return ActionMarkSaving }
func (ClearSaving) Type() ActionType { return ActionClearSaving }
func (SetAuthStatus) Type() ActionType { return ActionSetAuthStatus }
func (SetUser) Type() ActionType { return ActionSetUser }
func (RedirectToRoute) Type() ActionType { return ActionRedirectToRoute }
func (SetError) Type() ActionType { return ActionSetError }
func (ClearError) Type() ActionType { return ActionClearError }

func (LoadOffers) action() {}
func (ChangeCity) action() {}
func (ChangeSort) action() {}
func (OpenPlace) action() {}
func (ClosePlace) action() {}
func (LoadOffer) action() {}
func (LoadComments) action() {}
func (UploadComment) action() {}
func (LoadSimilarOffers) action() {}
func (LoadFavorites) action() {}
func (UpdateFavorite) action() {}
func (MarkSaving) action() {}
func (ClearSaving) action() {}
func (SetAuthStatus) action() {}
func (SetUser) action() {}
func (RedirectToRoute) action() {}
func (SetError) action() {}
func (ClearError) action() {}

func (LoadOffers) ResultSlice() domain.Slice { return domain.SlicePlaces }
func (LoadOffer) ResultSlice() domain.Slice { return domain.SlicePlace }
func (LoadComments) ResultSlice() domain.Slice { return domain.SlicePlace }
func (UploadComment) ResultSlice() domain.Slice { return domain.SlicePlace }
func (LoadSimilarOffers) ResultSlice() domain.Slice { return domain.SlicePlace }
func (LoadFavorites) ResultSlice() domain.Slice { return domain.SliceFavorites }
func (UpdateFavorite) ResultSlice() domain.Slice { return domain.SliceFavorites }
func (SetUser) ResultSlice() domain.Slice { return domain.SliceUser }
