package domain

import "errors"

var (
	// ErrActivityNotFound is returned when no activity has the requested name.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyRegistered is returned when the email is already signed up.
	ErrAlreadyRegistered = errors.New("participant already registered")
	// ErrNotRegistered is returned when unregistering an email that is not signed up.
	ErrNotRegistered = errors.New("participant not registered")
	// ErrActivityFull is returned when capacity is enforced and no spots are left.
	ErrActivityFull = errors.New("activity is full")
	// ErrEmailRequired is returned for a blank email.
	ErrEmailRequired = errors.New("email is required")
	// ErrActivityNameRequired is returned by NewActivity for a blank name.
	ErrActivityNameRequired = errors.New("activity name is required")
	// ErrInvalidCapacity is returned by NewActivity for a negative capacity.
	ErrInvalidCapacity = errors.New("max participants must be >= 0")
)
