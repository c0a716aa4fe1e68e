package models

import (
	"fmt"
	"time"
)

// EndpointClass groups routes that share a request budget.
type EndpointClass string

const (
	// ClassRead covers unauthenticated reads such as the questionnaire and
	// shared radars.
	ClassRead EndpointClass = "read"
	// ClassWrite covers authenticated lifecycle calls.
	ClassWrite EndpointClass = "write"
	// ClassSensitive covers export and erasure.
	ClassSensitive EndpointClass = "sensitive"
)

func (c EndpointClass) IsValid() bool {
	switch c {
	case ClassRead, ClassWrite, ClassSensitive:
		return true
	}
	return false
}

// KeyPrefix says which identity a bucket counts.
type KeyPrefix string

const (
	KeyPrefixIP      KeyPrefix = "ip"
	KeyPrefixSubject KeyPrefix = "subject"
)

// Key builds the bucket key "ratelimit:<prefix>:<class>:<identifier>".
func Key(prefix KeyPrefix, class EndpointClass, identifier string) string {
	return fmt.Sprintf("ratelimit:%s:%s:%s", prefix, class, identifier)
}

// Limit is the budget for one class.
type Limit struct {
	Requests int
	Window   time.Duration
}

// Result is the outcome of a rate limit check.
type Result struct {
	Allowed    bool      `json:"allowed"`
	Limit      int       `json:"limit"`
	Remaining  int       `json:"remaining"`
	ResetAt    time.Time `json:"reset_at"`
	RetryAfter int       `json:"retry_after,omitempty"` // seconds, only set when denied
}
