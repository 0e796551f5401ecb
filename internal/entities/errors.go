package entities

import "errors"

// ErrRegionNotFound is returned when a requested region code has no
// matching region. It surfaces to the caller in single-region mode but
// never aborts a batch evaluation of other regions.
var ErrRegionNotFound = errors.New("region not found")

// ErrPredictionUnavailable is returned by the prediction client when the
// external model call fails, times out or returns a malformed response.
// Callers must treat it as non-fatal and fall back to weather+historical
// scoring.
var ErrPredictionUnavailable = errors.New("prediction unavailable")
