package sdk

import "errors"

// Sentinel errors for server-side rejections. Use errors.Is() to check.
var (
	ErrUnauthorized = errors.New("sdk: unauthorized")
	ErrBadRequest   = errors.New("sdk: bad request")
	ErrServer       = errors.New("sdk: server error")
)
