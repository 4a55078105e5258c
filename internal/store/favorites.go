package store

import "sixcities/internal/domain"

// ReduceFavorites folds an action into the favorites slice
func ReduceFavorites(s FavoritesState, a Action) FavoritesState {
	switch a := a.(type) {
	case LoadFavorites:
		s.Offers = a.Offers
		s.IsLoaded = true
	case UpdateFavorite:
		if !a.Offer.IsFavorite {
			s.Offers, _ = removeOffer(s.Offers, a.Offer.ID)
			return s
		}
		var ok bool
		if s.Offers, ok = mergeOffer(s.Offers, a.Offer); !ok {
			offers := make([]domain.Offer, 0, len(s.Offers)+1)
			offers = append(offers, s.Offers...)
			s.Offers = append(offers, a.Offer)
		}
	case MarkSaving:
		s.Offers, _ = setSaving(s.Offers, a.OfferID, true)
	case ClearSaving:
		s.Offers, _ = setSaving(s.Offers, a.OfferID, false)
	}
	return s
}
