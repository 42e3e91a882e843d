// Package storage defines the errors shared between the persistence layer
// and the HTTP handlers that translate them into response statuses.
package storage

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrAttendeeNotFound = errors.New("attendee not found")
	ErrDuplicateEmail   = errors.New("email already registered for this event")
	ErrCapacityReached  = errors.New("event capacity reached")

	ErrUserExists      = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidOTP      = errors.New("invalid otp")
	ErrOTPExpired      = errors.New("otp expired")
	ErrSessionNotFound = errors.New("session not found")
)
