package store

// ReduceApp folds an action into the app slice.
// SetError overwrites the previous error; a result for the failed slice clears it.
// ClearError carrying an error clears only when that error is still the last one.
func ReduceApp(s AppState, a Action) AppState {
	switch a := a.(type) {
	case SetError:
		err := a.Error
		s.Error = &err
	case ClearError:
		if a.Error == nil || (s.Error != nil && *s.Error == *a.Error) {
			s.Error = nil
		}
	case Result:
		if s.Error != nil && s.Error.Slice == a.ResultSlice() {
			s.Error = nil
		}
	}
	return s
}
