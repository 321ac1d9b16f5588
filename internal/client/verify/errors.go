package verify

import "errors"

var (
	ErrEmptyEndpoint   = errors.New("empty verification endpoint")
	ErrEmptyToken      = errors.New("empty token")
	ErrInvalidEndpoint = errors.New("verification endpoint is not an absolute URL")
)
