package artists

import "errors"

var ErrNotFound = errors.New("artist not found")
