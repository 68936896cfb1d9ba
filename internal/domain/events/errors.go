package events

import "errors"

// ErrNotFound is returned when no event matches the requested id, and by
// Update when the store reports zero modified documents. The API contract
// deliberately reports a no-op update the same way as a missing document.
var ErrNotFound = errors.New("event not found")
