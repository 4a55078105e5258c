package store

// ReducePlaces folds an action into the offers list slice
func ReducePlaces(s PlacesState, a Action) PlacesState {
	switch a := a.(type) {
	case LoadOffers:
		s.Offers = a.Offers
		s.IsLoaded = true
	case ChangeCity:
		s.City = a.City
	case ChangeSort:
		s.Sort = a.Sort
	case UpdateFavorite:
		s.Offers, _ = mergeOffer(s.Offers, a.Offer)
	case MarkSaving:
		s.Offers, _ = setSaving(s.Offers, a.OfferID, true)
	case ClearSaving:
		s.Offers, _ = setSaving(s.Offers, a.OfferID, false)
	}
	return s
}
