package testutil

import (
	"fmt"
	"strings"

	"sixcities/internal/adapter"
	"sixcities/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewServerOffer creates a server offer located in the given city
func NewServerOffer(id int, city string, favorite bool) adapter.ServerOffer {
	return adapter.ServerOffer{
		ID:          id,
		Title:       fmt.Sprintf("Beautiful & luxurious studio #%d", id),
		Type:        "apartment",
		Description: "A quiet cozy and picturesque that hides behind a a river by the unique lightness of Amsterdam.",
		Price:       100 + id,
		Rating:      4.2,
		Bedrooms:    2,
		MaxAdults:   4,
		Goods:       []string{"Heating", "Kitchen", "Washing machine"},
		Location: adapter.ServerLocation{
			Latitude:  52.35514938496378 + float64(id)/1000,
			Longitude: 4.673877537499948,
			Zoom:      8,
		},
		City: adapter.ServerCity{
			Name: city,
			Location: adapter.ServerLocation{
				Latitude:  52.370216,
				Longitude: 4.895168,
				Zoom:      10,
			},
		},
		Host:         NewServerUser(3, "", ""),
		PreviewImage: fmt.Sprintf("img/%d.png", id),
		Images:       []string{"img/1.png", "img/2.png"},
		IsPremium:    id%2 == 0,
		IsFavorite:   favorite,
	}
}

// NewServerUser creates a server user; name is derived from the email
func NewServerUser(id int, email, token string) adapter.ServerUser {
	name := "Angelina"
	if email != "" {
		name, _, _ = strings.Cut(email, "@")
	}
	return adapter.ServerUser{
		ID:        id,
		Email:     email,
		Name:      name,
		AvatarURL: fmt.Sprintf("img/avatar-%d.jpg", id),
		IsPro:     id == 3,
		Token:     token,
	}
}

// NewServerReview creates a server review with the given raw date
func NewServerReview(id int, rating float64, date string) adapter.ServerReview {
	return adapter.ServerReview{
		ID:      id,
		User:    NewServerUser(4, "", ""),
		Rating:  rating,
		Comment: "A quiet cozy and picturesque that hides behind a a river by the unique lightness of Amsterdam.",
		Date:    date,
	}
}

// NewTestOffer creates a client offer
func NewTestOffer(id int, city string, favorite bool) domain.Offer {
	return adapter.AdaptOfferToClient(NewServerOffer(id, city, favorite))
}
