package service

import (
	"errors"

	"tube_analytics/internal/source/youtube"
)

// Alert is the user-visible form of a failed view action. Err keeps the cause.
type Alert struct {
	Message string
	Err     error
}

func (a *Alert) Error() string {
	return a.Message
}

func (a *Alert) Unwrap() error {
	return a.Err
}

// IsNotFound reports whether err means the looked up item does not exist,
// including upstream answers too malformed to normalise.
func IsNotFound(err error) bool {
	return errors.Is(err, youtube.ErrNotFound) || errors.Is(err, youtube.ErrMalformedResponse)
}
