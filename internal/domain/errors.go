package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgInsufficientFunds   = "insufficient funds"
	ErrMsgInsufficientTickets = "insufficient tickets"
	ErrMsgInvalidAction       = "invalid action"
	ErrMsgTerminalState       = "game is over"
	ErrMsgSessionNotFound     = "session not found"
	ErrMsgItemNotFound        = "item not found"
	ErrMsgTalismanNotFound    = "talisman not found"
	ErrMsgAlreadyOwned        = "talisman already owned"
	ErrMsgSlotsFull           = "talisman slots are full"
	ErrMsgSpinInFlight        = "a spin is already in flight"
	ErrMsgNoSpinsLeft         = "no spins left"
	ErrMsgSpinsRemaining      = "finish your spins first"
)

// Common domain errors
// These errors should be used consistently across all layers of the engine.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for
// additional context. Every validation is a guard check with an early return;
// no operation partially applies state on a rejected precondition.
var (
	// ErrInsufficientFunds covers credits or tickets below price.
	ErrInsufficientFunds   = errors.New(ErrMsgInsufficientFunds)
	ErrInsufficientTickets = errors.New(ErrMsgInsufficientTickets)

	// ErrInvalidAction covers spin while busy, spin with 0 spins left,
	// day-end with spins remaining, out-of-range payments, and purchasing
	// an already-owned or slot-full talisman.
	ErrInvalidAction = errors.New(ErrMsgInvalidAction)

	// ErrTerminalState marks mutating intents after game over. Callers
	// treat it as an ignorable no-op, not a failure.
	ErrTerminalState = errors.New(ErrMsgTerminalState)

	ErrSessionNotFound  = errors.New(ErrMsgSessionNotFound)
	ErrItemNotFound     = errors.New(ErrMsgItemNotFound)
	ErrTalismanNotFound = errors.New(ErrMsgTalismanNotFound)
)
