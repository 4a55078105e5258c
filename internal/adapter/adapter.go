// Package adapter maps six-cities server payloads to client records and back.
package adapter

import (
	"time"

	"sixcities/internal/domain"
)

// AdaptLocationToClient maps a server location
func AdaptLocationToClient(l ServerLocation) domain.Location {
	return domain.Location{
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Zoom:      l.Zoom,
	}
}

// AdaptCityToClient maps a server city
func AdaptCityToClient(c ServerCity) domain.City {
	return domain.City{
		Name:     c.Name,
		Location: AdaptLocationToClient(c.Location),
	}
}

// AdaptOfferToClient converts a server offer; IsSaving always starts false.
func AdaptOfferToClient(o ServerOffer) domain.Offer {
	return domain.Offer{
		ID:          o.ID,
		Title:       o.Title,
		Type:        o.Type,
		Description: o.Description,
		Price:       o.Price,
		Rating:      o.Rating,
		Bedrooms:    o.Bedrooms,
		MaxAdults:   o.MaxAdults,
		Goods:       cloneStrings(o.Goods),
		Location:    AdaptLocationToClient(o.Location),
		City:        AdaptCityToClient(o.City),
		Host: domain.Host{
			ID:        o.Host.ID,
			Name:      o.Host.Name,
			AvatarURL: o.Host.AvatarURL,
			IsPro:     o.Host.IsPro,
		},
		PreviewImage: o.PreviewImage,
		Images:       cloneStrings(o.Images),
		IsPremium:    o.IsPremium,
		IsFavorite:   o.IsFavorite,
	}
}

// AdaptOffersToClient maps offers keeping their order; it never returns nil
func AdaptOffersToClient(offers []ServerOffer) []domain.Offer {
	out := make([]domain.Offer, 0, len(offers))
	for _, o := range offers {
		out = append(out, AdaptOfferToClient(o))
	}
	return out
}

// AdaptUserToClient maps the login response, token included
func AdaptUserToClient(u ServerUser) domain.User {
	return domain.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		IsPro:     u.IsPro,
		Token:     u.Token,
	}
}

// AdaptReviewToClient maps a review; an unparsable date becomes the zero time
func AdaptReviewToClient(r ServerReview) domain.Review {
	return domain.Review{
		ID:      r.ID,
		Author:  AdaptUserToClient(r.User),
		Rating:  r.Rating,
		Comment: r.Comment,
		Date:    parseDate(r.Date),
	}
}

// AdaptReviewsToClient maps reviews keeping their order
func AdaptReviewsToClient(reviews []ServerReview) []domain.Review {
	out := make([]domain.Review, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, AdaptReviewToClient(r))
	}
	return out
}

// AdaptReviewToServer builds the body of a review post
func AdaptReviewToServer(f domain.ReviewForm) ServerReviewPost {
	return ServerReviewPost{
		Comment: f.Comment,
		Rating:  f.Rating,
	}
}

// AdaptCredentialsToServer builds the body of a login request
func AdaptCredentialsToServer(c domain.Credentials) ServerCredentials {
	return ServerCredentials{
		Email:    c.Email,
		Password: c.Password,
	}
}

// parseDate accepts RFC 3339 with or without fractional seconds.
// Anything else yields the zero time.
func parseDate(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
