package action

import (
	"context"

	"sixcities/internal/adapter"
	"sixcities/internal/api"
	"sixcities/internal/domain"
	"sixcities/internal/store"
)

// OpenPlace binds the place slice to an offer
func OpenPlace(offerID int) store.OpenPlace {
	return store.OpenPlace{OfferID: offerID}
}

// ClosePlace releases the place slice
func ClosePlace() store.ClosePlace {
	return store.ClosePlace{}
}

// LoadOffer sets the detail offer
func LoadOffer(offer domain.Offer) store.LoadOffer {
	return store.LoadOffer{Offer: offer}
}

// LoadComments sets the reviews of an offer
func LoadComments(offerID int, reviews []domain.Review) store.LoadComments {
	return store.LoadComments{OfferID: offerID, Reviews: reviews}
}

// UploadComment sets the reviews returned after posting one
func UploadComment(offerID int, reviews []domain.Review) store.UploadComment {
	return store.UploadComment{OfferID: offerID, Reviews: reviews}
}

// LoadSimilarOffers sets the offers near an offer
func LoadSimilarOffers(offerID int, offers []domain.Offer) store.LoadSimilarOffers {
	return store.LoadSimilarOffers{OfferID: offerID, Offers: offers}
}

// FetchOffer loads the detail offer
func FetchOffer(offerID int) Task {
	return func(ctx context.Context, d store.Dispatcher, gw api.Gateway) {
		var offer adapter.ServerOffer
		if err := gw.Get(ctx, api.OfferPath(offerID), &offer); err != nil {
			d.Dispatch(SetError(err, domain.SlicePlace))
			return
		}
		d.Dispatch(LoadOffer(adapter.AdaptOfferToClient(offer)))
	}
}

// FetchReviews loads the reviews of an offer
func FetchReviews(offerID int) Task {
	return func(ctx context.Context, d store.Dispatcher, gw api.Gateway) {
		var reviews []adapter.ServerReview
		if err := gw.Get(ctx, api.CommentsPath(offerID), &reviews); err != nil {
			d.Dispatch(SetError(err, domain.SlicePlace))
			return
		}
		d.Dispatch(LoadComments(offerID, adapter.AdaptReviewsToClient(reviews)))
	}
}

// FetchSimilarOffers loads the offers near an offer
func FetchSimilarOffers(offerID int) Task {
	return func(ctx context.Context, d store.Dispatcher, gw api.Gateway) {
		var offers []adapter.ServerOffer
		if err := gw.Get(ctx, api.NearbyPath(offerID), &offers); err != nil {
			d.Dispatch(SetError(err, domain.SlicePlace))
			return
		}
		d.Dispatch(LoadSimilarOffers(offerID, adapter.AdaptOffersToClient(offers)))
	}
}

// UploadReview posts a review and stores the updated review list.
// An invalid form is rejected without a request.
func UploadReview(offerID int, form domain.ReviewForm) Task {
	return func(ctx context.Context, d store.Dispatcher, gw api.Gateway) {
		if err := form.Validate(); err != nil {
			d.Dispatch(SetError(err, domain.SlicePlace))
			return
		}

		var reviews []adapter.ServerReview
		if err := gw.Post(ctx, api.CommentsPath(offerID), adapter.AdaptReviewToServer(form), &reviews); err != nil {
			d.Dispatch(SetError(err, domain.SlicePlace))
			return
		}
		d.Dispatch(UploadComment(offerID, adapter.AdaptReviewsToClient(reviews)))
	}
}

// ToggleSimilarOfferFavorite toggles an offer from the nearby list
func ToggleSimilarOfferFavorite(offer domain.Offer) Task {
	return ToggleFavorite(offer)
}
