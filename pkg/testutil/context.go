package testutil

import (
	"net/http"

	"radar/pkg/requestcontext"
)

// AsParticipant marks the request as authenticated by the participant itself.
// This simulates what the auth middleware would do.
func AsParticipant(req *http.Request, participantID string) *http.Request {
	ctx := requestcontext.WithSubject(req.Context(), participantID, requestcontext.RoleParticipant)
	return req.WithContext(ctx)
}

// AsOrganizer marks the request as authenticated by an organizer.
func AsOrganizer(req *http.Request, organizerID string) *http.Request {
	ctx := requestcontext.WithSubject(req.Context(), organizerID, requestcontext.RoleOrganizer)
	return req.WithContext(ctx)
}
