// Package selector projects store state into view data.
// Selectors never modify the state they read.
package selector

import (
	"sort"

	"sixcities/internal/domain"
	"sixcities/internal/store"
)

// MaxReviews is the number of reviews shown on the offer screen
const MaxReviews = 10

// Offers returns every loaded offer regardless of city
func Offers(s store.State) []domain.Offer {
	return s.Places.Offers
}

// ActiveCity returns the city whose offers are listed
func ActiveCity(s store.State) string {
	return s.Places.City
}

// ActiveSort returns the order of the offers list
func ActiveSort(s store.State) domain.SortType {
	return s.Places.Sort
}

// IsOffersLoaded reports whether the offers list was fetched
func IsOffersLoaded(s store.State) bool {
	return s.Places.IsLoaded
}

// Cities returns the cities offered in the city switch
func Cities(store.State) []string {
	return domain.Cities
}

// CityOffers returns offers of the active city in the active order
func CityOffers(s store.State) []domain.Offer {
	city := ActiveCity(s)

	out := make([]domain.Offer, 0, len(s.Places.Offers))
	for _, o := range s.Places.Offers {
		if o.City.Name == city {
			out = append(out, o)
		}
	}

	SortOffers(out, ActiveSort(s))
	return out
}

// SortOffers orders offers in place; SortPopular keeps server order
func SortOffers(offers []domain.Offer, sortType domain.SortType) {
	var less func(a, b domain.Offer) bool
	switch sortType {
	case domain.SortPriceLowToHigh:
		less = func(a, b domain.Offer) bool { return a.Price < b.Price }
	case domain.SortPriceHighToLow:
		less = func(a, b domain.Offer) bool { return a.Price > b.Price }
	case domain.SortTopRatedFirst:
		less = func(a, b domain.Offer) bool { return a.Rating > b.Rating }
	default:
		return
	}

	sort.SliceStable(offers, func(i, j int) bool {
		return less(offers[i], offers[j])
	})
}

// Offer returns the offer of the open detail screen
func Offer(s store.State) *domain.Offer {
	return s.Place.Offer
}

// Reviews returns all reviews of the open offer in server order
func Reviews(s store.State) []domain.Review {
	return s.Place.Reviews
}

// FilteredReviews returns at most MaxReviews reviews, newest first
func FilteredReviews(s store.State) []domain.Review {
	out := make([]domain.Review, len(s.Place.Reviews))
	copy(out, s.Place.Reviews)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})

	if len(out) > MaxReviews {
		out = out[:MaxReviews]
	}
	return out
}

// SimilarOffers returns offers near the open one
func SimilarOffers(s store.State) []domain.Offer {
	return s.Place.SimilarOffers
}

// Favorites returns the bookmarked offers
func Favorites(s store.State) []domain.Offer {
	return s.Favorites.Offers
}

// IsFavoritesLoaded reports whether the favorites list was fetched
func IsFavoritesLoaded(s store.State) bool {
	return s.Favorites.IsLoaded
}

// CityGroup is a set of favorite offers located in one city
type CityGroup struct {
	City   string
	Offers []domain.Offer
}

// FavoritesByCity groups favorites by city, cities in order of first appearance
func FavoritesByCity(s store.State) []CityGroup {
	var groups []CityGroup
	index := make(map[string]int)

	for _, o := range s.Favorites.Offers {
		i, ok := index[o.City.Name]
		if !ok {
			i = len(groups)
			index[o.City.Name] = i
			groups = append(groups, CityGroup{City: o.City.Name})
		}
		groups[i].Offers = append(groups[i].Offers, o)
	}

	return groups
}

// FindOffer looks an offer up in the detail screen, the list and the favorites
func FindOffer(s store.State, id int) (domain.Offer, bool) {
	if o := s.Place.Offer; o != nil && o.ID == id {
		return *o, true
	}
	for _, offers := range [][]domain.Offer{s.Place.SimilarOffers, s.Places.Offers, s.Favorites.Offers} {
		for _, o := range offers {
			if o.ID == id {
				return o, true
			}
		}
	}
	return domain.Offer{}, false
}

// User returns the signed in user, or nil
func User(s store.State) *domain.User {
	return s.User.User
}

// UserStatus returns the current auth status
func UserStatus(s store.State) domain.AuthStatus {
	return s.User.Status
}

// IsAuthorized reports whether the server accepted the user
func IsAuthorized(s store.State) bool {
	return s.User.Status == domain.AuthStatusAuth
}

// LastError returns the error to show in the banner, or nil
func LastError(s store.State) *domain.AppError {
	return s.App.Error
}
