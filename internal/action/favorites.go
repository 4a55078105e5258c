package action

import (
	"context"

	"sixcities/internal/adapter"
	"sixcities/internal/api"
	"sixcities/internal/domain"
	"sixcities/internal/store"
)

// LoadFavorites replaces the favorites list
func LoadFavorites(offers []domain.Offer) store.LoadFavorites {
	return store.LoadFavorites{Offers: offers}
}

// UpdateFavorite merges an offer confirmed by the server into every slice
func UpdateFavorite(offer domain.Offer) store.UpdateFavorite {
	return store.UpdateFavorite{Offer: offer}
}

// MarkSaving is dispatched by the view before a toggle task starts
func MarkSaving(offerID int) store.MarkSaving {
	return store.MarkSaving{OfferID: offerID}
}

// ClearSaving drops the in-flight flag of an offer
func ClearSaving(offerID int) store.ClearSaving {
	return store.ClearSaving{OfferID: offerID}
}

// FetchFavorites loads the favorite offers of the current user
func FetchFavorites() Task {
	return func(ctx context.Context, d store.Dispatcher, gw api.Gateway) {
		var offers []adapter.ServerOffer
		if err := gw.Get(ctx, api.RouteFavorite, &offers); err != nil {
			d.Dispatch(SetError(err, domain.SliceFavorites))
			return
		}
		d.Dispatch(LoadFavorites(adapter.AdaptOffersToClient(offers)))
	}
}

// ToggleFavorite flips the favorite flag of offer on the server.
// On failure the saving flag is cleared and the favorite flag stays as it was.
func ToggleFavorite(offer domain.Offer) Task {
	return func(ctx context.Context, d store.Dispatcher, gw api.Gateway) {
		status := api.FavoriteStatusOf(!offer.IsFavorite)

		var updated adapter.ServerOffer
		if err := gw.Post(ctx, api.FavoriteTogglePath(offer.ID, status), nil, &updated); err != nil {
			d.Dispatch(ClearSaving(offer.ID))
			d.Dispatch(SetError(err, domain.SliceFavorites))
			return
		}
		d.Dispatch(UpdateFavorite(adapter.AdaptOfferToClient(updated)))
	}
}
