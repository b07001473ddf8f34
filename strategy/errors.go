package strategy

import "errors"

// ErrMinSize indicates a non-positive minimum group size was passed to a builder.
var ErrMinSize = errors.New("minimum group size must be at least 1")
