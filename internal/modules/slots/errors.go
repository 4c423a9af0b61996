package slots

import "errors"

var ErrValidation = errors.New("validation error")
