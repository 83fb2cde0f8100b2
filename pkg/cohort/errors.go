package cohort

import "errors"

// ErrInvalidConfig reports a configuration rejected before any sampling
// begins: non-positive cohort size, an inverted target interval, a negative
// noise standard deviation, or similar.
var ErrInvalidConfig = errors.New("invalid configuration")
