package domain

import (
	"github.com/google/uuid"

	dErrors "radar/pkg/domain-errors"
)

// Typed identifiers keep participant, consent and flag IDs from being mixed up
// at call sites. All are UUIDs on the wire and in storage.
type (
	ParticipantID uuid.UUID
	ConsentID     uuid.UUID
	FlagID        uuid.UUID
)

func NewParticipantID() ParticipantID { return ParticipantID(uuid.New()) }
func NewConsentID() ConsentID         { return ConsentID(uuid.New()) }
func NewFlagID() FlagID               { return FlagID(uuid.New()) }

func (id ParticipantID) String() string { return uuid.UUID(id).String() }
func (id ParticipantID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id ConsentID) String() string     { return uuid.UUID(id).String() }
func (id FlagID) String() string        { return uuid.UUID(id).String() }
func (id FlagID) IsNil() bool           { return uuid.UUID(id) == uuid.Nil }

// ParseParticipantID parses external input into a ParticipantID.
// Errors: CodeInvalidInput for empty, malformed or nil UUIDs.
func ParseParticipantID(s string) (ParticipantID, error) {
	u, err := parseUUID(s)
	return ParticipantID(u), err
}

func ParseConsentID(s string) (ConsentID, error) {
	u, err := parseUUID(s)
	return ConsentID(u), err
}

func ParseFlagID(s string) (FlagID, error) {
	u, err := parseUUID(s)
	return FlagID(u), err
}

func parseUUID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id cannot be empty")
	}
	// uuid.Parse accepts a few non-canonical encodings; only the 36-char form is allowed here.
	if len(s) != 36 {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid id format")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid id format")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id cannot be nil")
	}
	return u, nil
}
