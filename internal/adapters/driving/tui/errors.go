package tui

import "errors"

// ErrMissingQuoteService is returned when the quote service is not provided.
var ErrMissingQuoteService = errors.New("tui: quote service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
