package models

import "errors"

// ErrValidation indicates a malformed or out-of-range input value.
var ErrValidation = errors.New("validation error")

// ErrInsufficientData indicates an aggregate or ratio was requested over zero eligible records.
var ErrInsufficientData = errors.New("insufficient data")

// ErrConfiguration indicates a lookup into static configuration failed, e.g. an unknown threshold key.
var ErrConfiguration = errors.New("configuration error")
