// Package registration holds the decision rule for attendee registration.
//
// The rule is pure: it looks at the event's capacity and a snapshot of the
// current attendees. Callers are responsible for taking that snapshot and
// applying the decision atomically (see storage/postgres.RegisterAttendee).
package registration

import (
	"strings"

	"eventRegistry/internal/models"
	"eventRegistry/internal/storage"
)

// NormalizeEmail brings an email to the canonical form used for the
// per-event uniqueness check.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Decide reports whether a registration may proceed for the given event.
// count is the number of attendees already registered for the event and
// emailTaken whether the candidate email is among them.
//
// A duplicate email is reported before a full event: the caller sees a
// conflict even when the event has no seats left.
func Decide(event *models.Event, count int, emailTaken bool) error {
	if emailTaken {
		return storage.ErrDuplicateEmail
	}
	if count >= event.MaxCapacity {
		return storage.ErrCapacityReached
	}
	return nil
}
