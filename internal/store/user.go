package store

import "sixcities/internal/domain"

// ReduceUser folds an action into the user slice.
// Once resolved, the status never returns to UNKNOWN.
func ReduceUser(s UserState, a Action) UserState {
	switch a := a.(type) {
	case SetAuthStatus:
		if a.Status == domain.AuthStatusUnknown {
			return s
		}
		s.Status = a.Status
	case SetUser:
		if a.User == nil {
			s.User = nil
			return s
		}
		user := *a.User
		s.User = &user
	}
	return s
}
