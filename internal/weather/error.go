package weather

import "errors"

var (
	// ErrUnauthorized indicates that the provider rejected the configured API credential
	ErrUnauthorized = errors.New("the weather provider rejected the API credential")

	// ErrLocationNotFound indicates that the provider does not know the requested location
	ErrLocationNotFound = errors.New("the weather provider does not know the requested location")

	// ErrUnavailable indicates any other provider failure (unexpected status, network error or timeout)
	ErrUnavailable = errors.New("the weather provider is unavailable")
)
