package service

import (
	"errors"
	"fmt"
)

var (
	// Resolver
	ErrEmptyQuery       = errors.New("please enter your name")
	ErrGuestNotFound    = errors.New("guest not found")
	ErrStoreUnavailable = errors.New("store unavailable")

	// Collector
	ErrNoMembersSelected = errors.New("please select at least one guest")
	ErrUnknownMember     = errors.New("guest is not a member of this party")
	ErrMemberNotSelected = errors.New("guest is not selected")
	ErrInvalidTransition = errors.New("action not allowed in the current state")
	ErrMissingMealChoice = errors.New("meal choice required")

	// Directory
	ErrInvalidPartyCode = errors.New("party code must be 4-10 uppercase letters or digits")
	ErrPartyCodeTaken   = errors.New("party code already in use")
	ErrPartyNotFound    = errors.New("party not found")
	ErrNoSuchGuest      = errors.New("guest does not exist")
)

// storeError marks err as a store failure while keeping the cause in the chain
func storeError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}
