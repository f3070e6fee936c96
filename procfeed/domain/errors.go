package domain

import "errors"

var (
	ErrSourceFailed       = errors.New("process source failed")
	ErrSubscriptionClosed = errors.New("subscription closed")
	ErrBroadcasterClosed  = errors.New("broadcaster closed")
	ErrInvalidQuery       = errors.New("invalid query parameter")
	ErrEmptyOwnerID       = errors.New("empty owner id")
)
