package ratelimit

import "errors"

// ErrStoreUnavailable indicates the counter store could not be reached.
var ErrStoreUnavailable = errors.New("ratelimit.store_unavailable")
