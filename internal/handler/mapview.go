package handler

import (
	"fmt"

	"sixcities/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// MarkerRenderer shows located offers on a map
type MarkerRenderer interface {
	RenderMarkers(to tele.Recipient, city domain.City, offers []domain.Offer, activeID int) error
}

// TelegramMarkers renders the city centre as a location and every offer as a venue
type TelegramMarkers struct {
	bot *tele.Bot
}

// NewTelegramMarkers creates a marker renderer sending through bot
func NewTelegramMarkers(bot *tele.Bot) *TelegramMarkers {
	return &TelegramMarkers{bot: bot}
}

// RenderMarkers sends the city location followed by one venue per offer
func (m *TelegramMarkers) RenderMarkers(to tele.Recipient, city domain.City, offers []domain.Offer, activeID int) error {
	if _, err := m.bot.Send(to, cityLocation(city)); err != nil {
		return fmt.Errorf("send city location: %w", err)
	}

	for _, o := range markerOrder(offers, activeID) {
		if _, err := m.bot.Send(to, offerVenue(o, o.ID == activeID)); err != nil {
			return fmt.Errorf("send offer %d venue: %w", o.ID, err)
		}
	}
	return nil
}

func cityLocation(c domain.City) *tele.Location {
	return &tele.Location{
		Lat: float32(c.Location.Latitude),
		Lng: float32(c.Location.Longitude),
	}
}

func offerVenue(o domain.Offer, active bool) *tele.Venue {
	title := o.Title
	if active {
		title = "📍 " + title
	}
	return &tele.Venue{
		Location: tele.Location{
			Lat: float32(o.Location.Latitude),
			Lng: float32(o.Location.Longitude),
		},
		Title:   title,
		Address: fmt.Sprintf("€%d / night · %s", o.Price, o.Type),
	}
}

// markerOrder keeps the input order and moves the active offer to the end
func markerOrder(offers []domain.Offer, activeID int) []domain.Offer {
	out := make([]domain.Offer, 0, len(offers))
	var active *domain.Offer
	for i := range offers {
		if offers[i].ID == activeID {
			active = &offers[i]
			continue
		}
		out = append(out, offers[i])
	}
	if active != nil {
		out = append(out, *active)
	}
	return out
}
