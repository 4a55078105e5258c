package action

import (
	"context"

	"sixcities/internal/adapter"
	"sixcities/internal/api"
	"sixcities/internal/domain"
	"sixcities/internal/store"
)

// LoadOffers replaces the offers list
func LoadOffers(offers []domain.Offer) store.LoadOffers {
	return store.LoadOffers{Offers: offers}
}

// ChangeCity switches the listed city
func ChangeCity(city string) store.ChangeCity {
	return store.ChangeCity{City: city}
}

// ChangeSort switches the order of the listed offers
func ChangeSort(sort domain.SortType) store.ChangeSort {
	return store.ChangeSort{Sort: sort}
}

// FetchOffers loads all offers
func FetchOffers() Task {
	return func(ctx context.Context, d store.Dispatcher, gw api.Gateway) {
		var offers []adapter.ServerOffer
		if err := gw.Get(ctx, api.RouteOffers, &offers); err != nil {
			d.Dispatch(SetError(err, domain.SlicePlaces))
			return
		}
		d.Dispatch(LoadOffers(adapter.AdaptOffersToClient(offers)))
	}
}
