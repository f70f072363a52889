package domain

import "errors"

// ErrMalformed marks plaintext that does not follow the exchange wire format.
var ErrMalformed = errors.New("malformed payload")
