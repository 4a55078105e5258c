package api

import "fmt"

// Server endpoints. Logout has no endpoint: the client just drops its token.
const (
	RouteLogin    = "/login"
	RouteOffers   = "/hotels"
	RouteFavorite = "/favorite"
)

// FavoriteStatus is the literal status token of the favorite toggle endpoint
type FavoriteStatus int

const (
	FavoriteStatusFalse FavoriteStatus = 0
	FavoriteStatusTrue  FavoriteStatus = 1
)

// FavoriteStatusOf returns the token that sets the favorite flag to v
func FavoriteStatusOf(v bool) FavoriteStatus {
	if v {
		return FavoriteStatusTrue
	}
	return FavoriteStatusFalse
}

// OfferPath returns the endpoint of a single offer
func OfferPath(id int) string {
	return fmt.Sprintf("%s/%d", RouteOffers, id)
}

// NearbyPath returns the endpoint of offers near the given one
func NearbyPath(id int) string {
	return fmt.Sprintf("%s/%d/nearby", RouteOffers, id)
}

// CommentsPath returns the endpoint listing and accepting reviews of an offer
func CommentsPath(id int) string {
	return fmt.Sprintf("/comments/%d", id)
}

// FavoriteTogglePath returns the endpoint setting the favorite flag of an offer
func FavoriteTogglePath(id int, status FavoriteStatus) string {
	return fmt.Sprintf("%s/%d/%d", RouteFavorite, id, status)
}
