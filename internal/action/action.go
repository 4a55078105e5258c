// Package action holds action creators: plain constructors of store actions
// and tasks that talk to the server and dispatch their results.
package action

import (
	"context"
	"errors"

	"sixcities/internal/api"
	"sixcities/internal/domain"
	"sixcities/internal/store"
)

// Task performs one server round-trip and dispatches the outcome.
// Failures are dispatched as SetError and never returned.
type Task func(ctx context.Context, d store.Dispatcher, gw api.Gateway)

// SetError converts err into an app error attributed to slice
func SetError(err error, slice domain.Slice) store.SetError {
	return store.SetError{Error: toAppError(err, slice)}
}

// ClearError drops the last error unconditionally
func ClearError() store.ClearError {
	return store.ClearError{}
}

// ClearShownError drops err only if it is still the last error
func ClearShownError(err domain.AppError) store.ClearError {
	return store.ClearError{Error: &err}
}

func toAppError(err error, slice domain.Slice) domain.AppError {
	appErr := domain.AppError{Slice: slice}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		appErr.Status = apiErr.Status
		appErr.Message = apiErr.Message
	} else if err != nil {
		appErr.Message = err.Error()
	}

	if appErr.Message == "" {
		appErr.Message = "request failed"
	}
	return appErr
}
