package search

import "errors"

// ErrInvalidInput is returned, before any search work, for empty letters,
// letters outside A-Z, letters over the length bound, or non-positive
// beam width or result cap.
var ErrInvalidInput = errors.New("invalid input")
