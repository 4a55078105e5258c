package store

import "sixcities/internal/domain"

// mergeOffer replaces the offer with the same id. The input is never modified;
// ok is false when no offer matched.
func mergeOffer(offers []domain.Offer, offer domain.Offer) ([]domain.Offer, bool) {
	i := indexOf(offers, offer.ID)
	if i < 0 {
		return offers, false
	}
	out := make([]domain.Offer, len(offers))
	copy(out, offers)
	out[i] = offer
	return out, true
}

func removeOffer(offers []domain.Offer, id int) ([]domain.Offer, bool) {
	i := indexOf(offers, id)
	if i < 0 {
		return offers, false
	}
	out := make([]domain.Offer, 0, len(offers)-1)
	out = append(out, offers[:i]...)
	out = append(out, offers[i+1:]...)
	return out, true
}

func setSaving(offers []domain.Offer, id int, saving bool) ([]domain.Offer, bool) {
	i := indexOf(offers, id)
	if i < 0 || offers[i].IsSaving == saving {
		return offers, false
	}
	offer := offers[i]
	offer.IsSaving = saving
	return mergeOffer(offers, offer)
}

func indexOf(offers []domain.Offer, id int) int {
	for i := range offers {
		if offers[i].ID == id {
			return i
		}
	}
	return -1
}
