package web

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amnona/uniref-annotations/database"
)

type mockFetcher struct {
	entries []database.AnnotationEntry
	err     error

	requested string
}

func (m *mockFetcher) GetAnnotationStrings(feature string) ([]database.AnnotationEntry, error) {
	m.requested = feature
	return m.entries, m.err
}

func echoEntry(feature string) database.AnnotationEntry {
	return database.AnnotationEntry{
		Detail:  database.AnnotationDetail{"unirefid": feature, "annotationtype": "other"},
		Summary: feature,
	}
}

func TestAnnotationsReturned(t *testing.T) {
	fetcher := &mockFetcher{entries: []database.AnnotationEntry{
		echoEntry("UniRef90_A0A174LDE8"),
		{Detail: database.AnnotationDetail{"annotationtype": "other"}, Summary: "name: X"},
	}}
	handler := NewAnnotationsHandler(fetcher)

	req := httptest.NewRequest("GET", "http://example.com/annotations/UniRef90_A0A174LDE8", nil)
	req.Header.Set("X-Request-Id", "tid_testing")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "tid_testing", w.Header().Get("X-Request-Id"), "transaction_id should be propagated")
	assert.Equal(t, "UniRef90_A0A174LDE8", fetcher.requested)

	var body FeatureAnnotations
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "UniRef90_A0A174LDE8", body.UnirefID)
	require.Len(t, body.Annotations, 2)
	assert.Equal(t, "UniRef90_A0A174LDE8", body.Annotations[0].Summary)
	assert.Equal(t, "name: X", body.Annotations[1].Summary)
}

func TestRequestIDIsGeneratedWhenAbsent(t *testing.T) {
	fetcher := &mockFetcher{entries: []database.AnnotationEntry{echoEntry("UniRef90_A0A174LDE8")}}
	handler := NewAnnotationsHandler(fetcher)

	req := httptest.NewRequest("GET", "http://example.com/annotations/UniRef90_A0A174LDE8", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestMissingFeatureIsRejected(t *testing.T) {
	handler := NewAnnotationsHandler(&mockFetcher{})

	req := httptest.NewRequest("GET", "http://example.com/annotations/", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestNonGetMethodIsRejected(t *testing.T) {
	handler := NewAnnotationsHandler(&mockFetcher{})

	req := httptest.NewRequest("POST", "http://example.com/annotations/UniRef90_A0A174LDE8", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, 405, w.Code)
}

func TestLookupFailureIsBadGateway(t *testing.T) {
	fetcher := &mockFetcher{err: errors.New("connection refused")}
	handler := NewAnnotationsHandler(fetcher)

	req := httptest.NewRequest("GET", "http://example.com/annotations/UniRef90_A0A174LDE8", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, 502, w.Code)
}
