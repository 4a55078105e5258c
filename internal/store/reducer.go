package store

// Reduce applies an action to every slice
func Reduce(s State, a Action) State {
	return State{
		Places:    ReducePlaces(s.Places, a),
		Place:     ReducePlace(s.Place, a),
		Favorites: ReduceFavorites(s.Favorites, a),
		User:      ReduceUser(s.User, a),
		App:       ReduceApp(s.App, a),
	}
}
