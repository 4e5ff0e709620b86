package state

import "errors"

var (
	// ErrUnknownPost signals an event for a post which has no state entry.
	ErrUnknownPost = errors.New("state: unknown post")
	// ErrUnknownEvent signals an event value outside the closed event set.
	ErrUnknownEvent = errors.New("state: unknown event kind")
	// ErrStoreClosed signals use of a store after Close.
	ErrStoreClosed = errors.New("state: store is closed")
)
