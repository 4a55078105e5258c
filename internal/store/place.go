package store

// ReducePlace folds an action into the offer detail slice.
// Results for an offer other than the open one are dropped.
func ReducePlace(s PlaceState, a Action) PlaceState {
	switch a := a.(type) {
	case OpenPlace:
		return PlaceState{OfferID: a.OfferID}
	case ClosePlace:
		return PlaceState{}
	case LoadOffer:
		if !s.isOpen(a.Offer.ID) {
			return s
		}
		offer := a.Offer
		s.Offer = &offer
	case LoadComments:
		if s.isOpen(a.OfferID) {
			s.Reviews = a.Reviews
		}
	case UploadComment:
		if s.isOpen(a.OfferID) {
			s.Reviews = a.Reviews
		}
	case LoadSimilarOffers:
		if s.isOpen(a.OfferID) {
			s.SimilarOffers = a.Offers
		}
	case UpdateFavorite:
		if s.Offer != nil && s.Offer.ID == a.Offer.ID {
			offer := a.Offer
			s.Offer = &offer
		}
		s.SimilarOffers, _ = mergeOffer(s.SimilarOffers, a.Offer)
	case MarkSaving:
		s = s.withSaving(a.OfferID, true)
	case ClearSaving:
		s = s.withSaving(a.OfferID, false)
	}
	return s
}

func (s PlaceState) isOpen(id int) bool {
	return s.OfferID != 0 && s.OfferID == id
}

func (s PlaceState) withSaving(id int, saving bool) PlaceState {
	if s.Offer != nil && s.Offer.ID == id && s.Offer.IsSaving != saving {
		offer := *s.Offer
		offer.IsSaving = saving
		s.Offer = &offer
	}
	s.SimilarOffers, _ = setSaving(s.SimilarOffers, id, saving)
	return s
}
