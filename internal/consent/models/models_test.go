package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "radar/pkg/domain"
)

func TestLatest(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	grant := &Record{Type: id.ConsentTypeAnalytics, Granted: true, CreatedAt: t0, Seq: 1}
	revoke := &Record{Type: id.ConsentTypeAnalytics, Granted: false, RevokedAt: &t0, CreatedAt: t0, Seq: 2}
	other := &Record{Type: id.ConsentTypeAssessment, Granted: true, CreatedAt: t0.Add(time.Hour), Seq: 3}

	t.Run("same instant breaks ties by sequence", func(t *testing.T) {
		got := Latest([]*Record{revoke, grant, other}, id.ConsentTypeAnalytics)
		require.NotNil(t, got)
		assert.False(t, got.IsActive())
	})

	t.Run("no rows of type", func(t *testing.T) {
		assert.Nil(t, Latest([]*Record{other}, id.ConsentTypePublicRadar))
	})

	t.Run("sort oldest first", func(t *testing.T) {
		records := []*Record{other, revoke, grant}
		SortOldestFirst(records)
		assert.Equal(t, []*Record{grant, revoke, other}, records)
	})
}

func TestRecordConsentRequestValidate(t *testing.T) {
	yes, no := true, false

	req := &RecordConsentRequest{Type: " Public_Radar ", Granted: &yes, Text: "share my radar"}
	req.Normalize()
	ct, err := req.Validate()
	require.NoError(t, err)
	assert.Equal(t, id.ConsentTypePublicRadar, ct)

	_, err = (&RecordConsentRequest{Type: "marketing", Granted: &yes, Text: "x"}).Validate()
	assert.Error(t, err)

	_, err = (&RecordConsentRequest{Type: "analytics"}).Validate()
	assert.Error(t, err)

	_, err = (&RecordConsentRequest{Type: "analytics", Granted: &no}).Validate()
	assert.NoError(t, err)
}
