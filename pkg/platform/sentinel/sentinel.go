package sentinel

import "errors"

// Sentinel errors for storage facts. Stores return these (optionally wrapped);
// services translate them into domain errors.
//
//   - ErrNotFound: row does not exist (or is hidden from the caller's read path)
//   - ErrConflict: a uniqueness constraint rejected the write
//   - ErrInvalidState: row is in the wrong state for a conditional update
//   - ErrAlreadyUsed: one-shot mutation already applied (e.g. flag reviewed)
//   - ErrUnavailable: backing store temporarily unavailable
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	ErrAlreadyUsed  = errors.New("already used")
	ErrUnavailable  = errors.New("unavailable")
)
