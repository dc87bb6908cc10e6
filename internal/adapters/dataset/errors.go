package dataset

import "errors"

// Sentinel kinds for load failures. All are fatal at startup.
var (
	ErrOpen          = errors.New("open dataset file")
	ErrMissingColumn = errors.New("missing required column")
	ErrMalformedRow  = errors.New("malformed row")
)
