package store

import (
	"testing"

	"sixcities/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offer(id int, city string, favorite bool) domain.Offer {
	return domain.Offer{
		ID:         id,
		Title:      "Offer",
		Price:      100 * id,
		City:       domain.City{Name: city},
		IsFavorite: favorite,
	}
}

func allActions() []Action {
	return []Action{
		LoadOffers{Offers: []domain.Offer{offer(1, "Paris", false)}},
		ChangeCity{City: "Hamburg"},
		ChangeSort{Sort: domain.SortTopRatedFirst},
		OpenPlace{OfferID: 1},
		ClosePlace{},
		LoadOffer{Offer: offer(1, "Paris", false)},
		LoadComments{OfferID: 1},
		UploadComment{OfferID: 1},
		LoadSimilarOffers{OfferID: 1},
		LoadFavorites{Offers: []domain.Offer{offer(2, "Paris", true)}},
		UpdateFavorite{Offer: offer(1, "Paris", true)},
		MarkSaving{OfferID: 1},
		ClearSaving{OfferID: 1},
		SetAuthStatus{Status: domain.AuthStatusAuth},
		SetUser{User: &domain.User{ID: 1}},
		RedirectToRoute{Route: domain.RouteMain},
		SetError{Error: domain.AppError{Message: "boom", Slice: domain.SliceApp}},
		ClearError{},
	}
}

func TestReducers_IdentityOnUnrecognizedActions(t *testing.T) {
	state := InitialState()
	state.Places.Offers = []domain.Offer{offer(5, "Paris", false)}
	state.Place = PlaceState{OfferID: 5, Offer: &domain.Offer{ID: 5}}
	state.Favorites.Offers = []domain.Offer{offer(6, "Paris", true)}
	state.User = UserState{Status: domain.AuthStatusAuth, User: &domain.User{ID: 9}}
	state.App.Error = &domain.AppError{Message: "boom", Slice: domain.SliceApp}

	handled := map[string]map[ActionType]bool{
		"places": {
			ActionLoadOffers: true, ActionChangeCity: true, ActionChangeSort: true,
			ActionUpdateFavorite: true, ActionMarkSaving: true, ActionClearSaving: true,
		},
		"place": {
			ActionOpenPlace: true, ActionClosePlace: true, ActionLoadOffer: true,
			ActionLoadComments: true, ActionUploadComment: true, ActionLoadSimilarOffers: true,
			ActionUpdateFavorite: true, ActionMarkSaving: true, ActionClearSaving: true,
		},
		"favorites": {
			ActionLoadFavorites: true, ActionUpdateFavorite: true,
			ActionMarkSaving: true, ActionClearSaving: true,
		},
		"user": {
			ActionSetAuthStatus: true, ActionSetUser: true,
		},
		"app": {
			ActionSetError: true, ActionClearError: true, ActionLoadOffers: true,
			ActionLoadOffer: true, ActionLoadComments: true, ActionUploadComment: true,
			ActionLoadSimilarOffers: true, ActionLoadFavorites: true,
			ActionUpdateFavorite: true, ActionSetUser: true,
		},
	}

	for _, a := range allActions() {
		t.Run(string(a.Type()), func(t *testing.T) {
			if !handled["places"][a.Type()] {
				assert.Equal(t, state.Places, ReducePlaces(state.Places, a))
			}
			if !handled["place"][a.Type()] {
				assert.Equal(t, state.Place, ReducePlace(state.Place, a))
			}
			if !handled["favorites"][a.Type()] {
				assert.Equal(t, state.Favorites, ReduceFavorites(state.Favorites, a))
			}
			if !handled["user"][a.Type()] {
				assert.Equal(t, state.User, ReduceUser(state.User, a))
			}
			if !handled["app"][a.Type()] {
				assert.Equal(t, state.App, ReduceApp(state.App, a))
			}
		})
	}
}

func TestReducePlaces(t *testing.T) {
	initial := InitialState().Places
	loaded := initial
	loaded.Offers = []domain.Offer{offer(1, "Paris", false), offer(2, "Paris", false)}
	loaded.IsLoaded = true

	tests := []struct {
		name   string
		state  PlacesState
		action Action
		want   PlacesState
	}{
		{
			name:   "load offers replaces list",
			state:  initial,
			action: LoadOffers{Offers: loaded.Offers},
			want:   loaded,
		},
		{
			name:   "change city",
			state:  initial,
			action: ChangeCity{City: "Amsterdam"},
			want:   PlacesState{Offers: initial.Offers, City: "Amsterdam", Sort: domain.SortPopular},
		},
		{
			name:   "change sort",
			state:  initial,
			action: ChangeSort{Sort: domain.SortPriceHighToLow},
			want:   PlacesState{Offers: initial.Offers, City: domain.DefaultCity, Sort: domain.SortPriceHighToLow},
		},
		{
			name:   "update favorite merges by id",
			state:  loaded,
			action: UpdateFavorite{Offer: offer(2, "Paris", true)},
			want: PlacesState{
				Offers:   []domain.Offer{offer(1, "Paris", false), offer(2, "Paris", true)},
				City:     domain.DefaultCity,
				Sort:     domain.SortPopular,
				IsLoaded: true,
			},
		},
		{
			name:   "update favorite for unknown offer",
			state:  loaded,
			action: UpdateFavorite{Offer: offer(9, "Paris", true)},
			want:   loaded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReducePlaces(tt.state, tt.action)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReducePlaces_DoesNotMutateInput(t *testing.T) {
	offers := []domain.Offer{offer(1, "Paris", false), offer(2, "Paris", false)}
	state := PlacesState{Offers: offers}

	got := ReducePlaces(state, MarkSaving{OfferID: 2})
	got = ReducePlaces(got, UpdateFavorite{Offer: offer(1, "Paris", true)})

	assert.False(t, offers[1].IsSaving)
	assert.False(t, offers[0].IsFavorite)
	assert.True(t, got.Offers[1].IsSaving)
	assert.True(t, got.Offers[0].IsFavorite)
}

func TestReducePlace_TeardownGuard(t *testing.T) {
	review := domain.Review{ID: 1, Comment: "Nice"}

	tests := []struct {
		name    string
		actions []Action
		want    PlaceState
	}{
		{
			name:    "results for open offer are applied",
			actions: []Action{OpenPlace{OfferID: 1}, LoadOffer{Offer: offer(1, "Paris", false)}, LoadComments{OfferID: 1, Reviews: []domain.Review{review}}},
			want:    PlaceState{OfferID: 1, Offer: &domain.Offer{ID: 1, Title: "Offer", Price: 100, City: domain.City{Name: "Paris"}}, Reviews: []domain.Review{review}},
		},
		{
			name:    "results for another offer are dropped",
			actions: []Action{OpenPlace{OfferID: 2}, LoadOffer{Offer: offer(1, "Paris", false)}, LoadSimilarOffers{OfferID: 1, Offers: []domain.Offer{offer(3, "Paris", false)}}},
			want:    PlaceState{OfferID: 2},
		},
		{
			name:    "results after close are dropped",
			actions: []Action{OpenPlace{OfferID: 1}, ClosePlace{}, LoadOffer{Offer: offer(1, "Paris", false)}, UploadComment{OfferID: 1, Reviews: []domain.Review{review}}},
			want:    PlaceState{},
		},
		{
			name:    "open resets previous offer",
			actions: []Action{OpenPlace{OfferID: 1}, LoadOffer{Offer: offer(1, "Paris", false)}, OpenPlace{OfferID: 2}},
			want:    PlaceState{OfferID: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s PlaceState
			for _, a := range tt.actions {
				s = ReducePlace(s, a)
			}
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestReducePlace_UpdateFavorite(t *testing.T) {
	s := ReducePlace(PlaceState{}, OpenPlace{OfferID: 1})
	s = ReducePlace(s, LoadOffer{Offer: offer(1, "Paris", false)})
	s = ReducePlace(s, LoadSimilarOffers{OfferID: 1, Offers: []domain.Offer{offer(2, "Paris", false), offer(3, "Paris", false)}})

	s = ReducePlace(s, MarkSaving{OfferID: 1})
	s = ReducePlace(s, MarkSaving{OfferID: 3})
	require.NotNil(t, s.Offer)
	assert.True(t, s.Offer.IsSaving)
	assert.True(t, s.SimilarOffers[1].IsSaving)

	s = ReducePlace(s, UpdateFavorite{Offer: offer(1, "Paris", true)})
	s = ReducePlace(s, UpdateFavorite{Offer: offer(3, "Paris", true)})

	assert.True(t, s.Offer.IsFavorite)
	assert.False(t, s.Offer.IsSaving)
	assert.False(t, s.SimilarOffers[0].IsFavorite)
	assert.True(t, s.SimilarOffers[1].IsFavorite)
	assert.False(t, s.SimilarOffers[1].IsSaving)
}

func TestReducePlace_ClearSavingKeepsFavoriteFlag(t *testing.T) {
	s := ReducePlace(PlaceState{}, OpenPlace{OfferID: 1})
	s = ReducePlace(s, LoadOffer{Offer: offer(1, "Paris", false)})
	before := *s.Offer

	s = ReducePlace(s, MarkSaving{OfferID: 1})
	s = ReducePlace(s, ClearSaving{OfferID: 1})

	assert.Equal(t, before, *s.Offer)
}

func TestReduceFavorites(t *testing.T) {
	base := FavoritesState{Offers: []domain.Offer{offer(1, "Paris", true), offer(2, "Cologne", true)}, IsLoaded: true}

	tests := []struct {
		name    string
		action  Action
		wantIDs []int
	}{
		{name: "load replaces list", action: LoadFavorites{Offers: []domain.Offer{offer(7, "Paris", true)}}, wantIDs: []int{7}},
		{name: "favorite added", action: UpdateFavorite{Offer: offer(3, "Paris", true)}, wantIDs: []int{1, 2, 3}},
		{name: "favorite replaced", action: UpdateFavorite{Offer: offer(2, "Cologne", true)}, wantIDs: []int{1, 2}},
		{name: "unfavorite removes", action: UpdateFavorite{Offer: offer(1, "Paris", false)}, wantIDs: []int{2}},
		{name: "unfavorite unknown", action: UpdateFavorite{Offer: offer(9, "Paris", false)}, wantIDs: []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReduceFavorites(base, tt.action)

			ids := make([]int, 0, len(got.Offers))
			for _, o := range got.Offers {
				ids = append(ids, o.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.True(t, got.IsLoaded)
			assert.Len(t, base.Offers, 2)
		})
	}
}

func TestReduceUser_StateMachine(t *testing.T) {
	user := &domain.User{ID: 1, Email: "a@b.c"}

	tests := []struct {
		name       string
		actions    []Action
		wantStatus domain.AuthStatus
		wantUser   *domain.User
	}{
		{name: "initial", actions: nil, wantStatus: domain.AuthStatusUnknown},
		{
			name:       "check auth success",
			actions:    []Action{SetUser{User: user}, SetAuthStatus{Status: domain.AuthStatusAuth}},
			wantStatus: domain.AuthStatusAuth,
			wantUser:   user,
		},
		{
			name:       "check auth failure",
			actions:    []Action{SetAuthStatus{Status: domain.AuthStatusNoAuth}},
			wantStatus: domain.AuthStatusNoAuth,
		},
		{
			name:       "logout",
			actions:    []Action{SetUser{User: user}, SetAuthStatus{Status: domain.AuthStatusAuth}, SetUser{User: nil}, SetAuthStatus{Status: domain.AuthStatusNoAuth}},
			wantStatus: domain.AuthStatusNoAuth,
		},
		{
			name:       "never back to unknown",
			actions:    []Action{SetAuthStatus{Status: domain.AuthStatusAuth}, SetAuthStatus{Status: domain.AuthStatusUnknown}},
			wantStatus: domain.AuthStatusAuth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := InitialState().User
			for _, a := range tt.actions {
				s = ReduceUser(s, a)
			}
			assert.Equal(t, tt.wantStatus, s.Status)
			assert.Equal(t, tt.wantUser, s.User)
		})
	}
}

func TestReduceApp_ErrorPolicy(t *testing.T) {
	placesErr := domain.AppError{Status: 500, Message: "down", Slice: domain.SlicePlaces}
	favErr := domain.AppError{Status: 401, Message: "no auth", Slice: domain.SliceFavorites}

	tests := []struct {
		name    string
		actions []Action
		want    *domain.AppError
	}{
		{name: "set error", actions: []Action{SetError{Error: placesErr}}, want: &placesErr},
		{name: "overwrite", actions: []Action{SetError{Error: placesErr}, SetError{Error: favErr}}, want: &favErr},
		{name: "cleared by same slice result", actions: []Action{SetError{Error: placesErr}, LoadOffers{}}, want: nil},
		{name: "kept on other slice result", actions: []Action{SetError{Error: placesErr}, LoadFavorites{}}, want: &placesErr},
		{name: "cleared by update favorite", actions: []Action{SetError{Error: favErr}, UpdateFavorite{Offer: offer(1, "Paris", true)}}, want: nil},
		{name: "clear error", actions: []Action{SetError{Error: favErr}, ClearError{}}, want: nil},
		{name: "clear rendered error", actions: []Action{SetError{Error: placesErr}, ClearError{Error: &domain.AppError{Status: 500, Message: "down", Slice: domain.SlicePlaces}}}, want: nil},
		{name: "newer error survives clear of rendered one", actions: []Action{SetError{Error: placesErr}, SetError{Error: favErr}, ClearError{Error: &placesErr}}, want: &favErr},
		{name: "clear rendered error with nothing set", actions: []Action{ClearError{Error: &placesErr}}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s AppState
			for _, a := range tt.actions {
				s = ReduceApp(s, a)
			}
			assert.Equal(t, tt.want, s.Error)
		})
	}
}

func TestReduce_SlicesIndependent(t *testing.T) {
	s := InitialState()
	s = Reduce(s, LoadOffers{Offers: []domain.Offer{offer(1, "Paris", false)}})
	s = Reduce(s, LoadFavorites{Offers: []domain.Offer{offer(2, "Paris", true)}})
	s = Reduce(s, OpenPlace{OfferID: 1})
	s = Reduce(s, LoadOffer{Offer: offer(1, "Paris", false)})

	s = Reduce(s, UpdateFavorite{Offer: offer(1, "Paris", true)})

	assert.True(t, s.Places.Offers[0].IsFavorite)
	assert.True(t, s.Place.Offer.IsFavorite)
	require.Len(t, s.Favorites.Offers, 2)
	assert.Equal(t, 1, s.Favorites.Offers[1].ID)
	assert.Equal(t, domain.AuthStatusUnknown, s.User.Status)
}
