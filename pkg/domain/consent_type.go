package domain

import dErrors "radar/pkg/domain-errors"

// ConsentType identifies what a consent record covers.
// Invariant: the value must be one of the supported types.
//
// Usage: construct via ParseConsentType at trust boundaries; direct casting
// bypasses validation.
type ConsentType string

const (
	ConsentTypeAssessment     ConsentType = "assessment"
	ConsentTypeAnalytics      ConsentType = "analytics"
	ConsentTypePublicRadar    ConsentType = "public_radar"
	ConsentTypeDataProcessing ConsentType = "data_processing"
)

var validConsentTypes = map[ConsentType]bool{
	ConsentTypeAssessment:     true,
	ConsentTypeAnalytics:      true,
	ConsentTypePublicRadar:    true,
	ConsentTypeDataProcessing: true,
}

// ParseConsentType constructs a ConsentType from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseConsentType(s string) (ConsentType, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "consent type cannot be empty")
	}
	t := ConsentType(s)
	if !t.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid consent type")
	}
	return t, nil
}

func (t ConsentType) IsValid() bool {
	return validConsentTypes[t]
}

func (t ConsentType) String() string {
	return string(t)
}

// AllConsentTypes returns every type in a fixed order.
func AllConsentTypes() []ConsentType {
	return []ConsentType{
		ConsentTypeAssessment,
		ConsentTypeAnalytics,
		ConsentTypePublicRadar,
		ConsentTypeDataProcessing,
	}
}
