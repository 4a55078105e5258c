package domain

import (
	"fmt"
	"math"
)

// Location is a point on the map with its preferred zoom level
type Location struct {
	Latitude  float64
	Longitude float64
	Zoom      int
}

// City is the city an offer belongs to
type City struct {
	Name     string
	Location Location
}

// Host is the owner of an offer
type Host struct {
	ID        int
	Name      string
	AvatarURL string
	IsPro     bool
}

// Offer represents a rental offer in client shape
type Offer struct {
	ID           int
	Title        string
	Type         string
	Description  string
	Price        int
	Rating       float64
	Bedrooms     int
	MaxAdults    int
	Goods        []string
	Location     Location
	City         City
	Host         Host
	PreviewImage string
	Images       []string
	IsPremium    bool
	IsFavorite   bool

	// IsSaving is true while a favorite toggle for this offer is in flight
	IsSaving bool
}

// Default cities shown on the main screen
var Cities = []string{
	"Paris",
	"Cologne",
	"Brussels",
	"Amsterdam",
	"Hamburg",
	"Dusseldorf",
}

// DefaultCity is the city selected before the user picks one
const DefaultCity = "Paris"

const maxRatingPercent = 100

// RatingPercent converts a 0..5 rating to the width of the stars bar
func RatingPercent(rating float64) int {
	percent := int(math.Round(rating)) * 20
	if percent > maxRatingPercent {
		return maxRatingPercent
	}
	if percent < 0 {
		return 0
	}
	return percent
}

// OfferLink returns the client route of an offer
func OfferLink(id int) string {
	return fmt.Sprintf("/offer/%d", id)
}
