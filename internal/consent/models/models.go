package models

import (
	"sort"
	"time"

	id "radar/pkg/domain"
)

// Record is one append-only entry in a subject's consent history. A row with
// Granted=false is a revocation and carries RevokedAt.
type Record struct {
	ID        id.ConsentID
	SubjectID id.ParticipantID
	Type      id.ConsentType
	Granted   bool
	GrantedAt *time.Time
	RevokedAt *time.Time
	Text      string
	IPAddress string
	UserAgent string
	CreatedAt time.Time
	// Seq orders rows created within the same instant. Assigned by the store.
	Seq int64
}

// IsActive reports whether this row grants consent.
func (r *Record) IsActive() bool {
	return r != nil && r.Granted && r.RevokedAt == nil
}

// Metadata is captured with every consent decision.
type Metadata struct {
	Text      string
	IPAddress string
	UserAgent string
}

// Before orders records by creation time, then insertion sequence.
func Before(a, b *Record) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.Seq < b.Seq
}

// SortOldestFirst sorts records in place.
func SortOldestFirst(records []*Record) {
	sort.SliceStable(records, func(i, j int) bool { return Before(records[i], records[j]) })
}

// Latest returns the most recent record of type t, or nil.
func Latest(records []*Record, t id.ConsentType) *Record {
	var latest *Record
	for _, r := range records {
		if r.Type != t {
			continue
		}
		if latest == nil || Before(latest, r) {
			latest = r
		}
	}
	return latest
}
