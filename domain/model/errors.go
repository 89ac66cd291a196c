package model

import (
	"errors"
	"fmt"
)

// Failure taxonomy of a playlist render. All of them end up as an inline error block.
var (
	ErrConfigurationMissing = errors.New("configuration missing")
	ErrTransport            = errors.New("transport error")
	ErrProvider             = errors.New("provider error")
	ErrEmptyResult          = errors.New("empty result")
)

// ErrSettingsNotFound is returned by settings stores when the record was never saved.
var ErrSettingsNotFound = errors.New("settings: not found")

// FetchError describes a failed playlist fetch. Kind is one of ErrTransport or ErrProvider.
type FetchError struct {
	Kind       error
	PlaylistID string
	StatusCode int
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%v fetching playlist %q (status %d): %s", e.Kind, e.PlaylistID, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%v fetching playlist %q: %s", e.Kind, e.PlaylistID, e.Message)
}

func (e *FetchError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
