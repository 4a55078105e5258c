package domain

import "fmt"

// Slice names a partition of the client state
type Slice string

const (
	SlicePlaces    Slice = "places"
	SlicePlace     Slice = "place"
	SliceFavorites Slice = "favorites"
	SliceUser      Slice = "user"
	SliceApp       Slice = "app"
)

// AppError is the last request failure surfaced to the user
type AppError struct {
	Status  int
	Message string
	Slice   Slice
}

func (e *AppError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// AppRoute is a client-side screen
type AppRoute string

const (
	RouteMain      AppRoute = "MAIN"
	RouteLogin     AppRoute = "LOGIN"
	RouteFavorites AppRoute = "FAVORITES"
	RouteOffer     AppRoute = "OFFER"
)

// Path returns URL path of the route
func (r AppRoute) Path() string {
	switch r {
	case RouteLogin:
		return "/login"
	case RouteFavorites:
		return "/favorites"
	case RouteOffer:
		return "/offer/:id"
	default:
		return "/"
	}
}

// SortType is the ordering of the offers list
type SortType string

const (
	SortPopular        SortType = "POPULAR"
	SortPriceLowToHigh SortType = "PRICE_LOW_TO_HIGH"
	SortPriceHighToLow SortType = "PRICE_HIGH_TO_LOW"
	SortTopRatedFirst  SortType = "TOP_RATED"
)

var sortOrder = []SortType{SortPopular, SortPriceLowToHigh, SortPriceHighToLow, SortTopRatedFirst}

// Title returns the label shown in the sort menu
func (s SortType) Title() string {
	switch s {
	case SortPriceLowToHigh:
		return "Price: low to high"
	case SortPriceHighToLow:
		return "Price: high to low"
	case SortTopRatedFirst:
		return "Top rated first"
	default:
		return "Popular"
	}
}

// Next returns the sort type following s in the menu, wrapping around
func (s SortType) Next() SortType {
	for i, t := range sortOrder {
		if t == s {
			return sortOrder[(i+1)%len(sortOrder)]
		}
	}
	return SortPopular
}
