package share

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() (*Handler, *memRepo) {
	repo := newMemRepo()
	return NewHandler(NewService(repo, discardLogger()), discardLogger()), repo
}

// TestHandlerPublishAndResolve verifies the POST/GET round trip.
func TestHandlerPublishAndResolve(t *testing.T) {
	h, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/shares", strings.NewReader(`{"name":"Push","text":"Bench\n8*135"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created publishResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Len(t, created.Code, CodeLength)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/shares/"+strings.ToLower(created.Code), nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var got Workout
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, Workout{Name: "Push", Text: "Bench\n8*135"}, got)
}

func TestHandlerErrors(t *testing.T) {
	h, _ := newTestHandler()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"bad json", http.MethodPost, "/api/v1/shares", "{", http.StatusBadRequest},
		{"missing text", http.MethodPost, "/api/v1/shares", `{"name":"x"}`, http.StatusBadRequest},
		{"unknown code", http.MethodGet, "/api/v1/shares/ABCDEF", "", http.StatusNotFound},
		{"invalid code", http.MethodGet, "/api/v1/shares/abc", "", http.StatusBadRequest},
		{"preflight", http.MethodOptions, "/api/v1/shares", "", http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

// TestClientAgainstHandler runs the HTTP client against a live handler.
func TestClientAgainstHandler(t *testing.T) {
	h, repo := newTestHandler()
	ts := httptest.NewServer(h)
	defer ts.Close()

	client := NewClient(ts.URL + "/")
	ctx := context.Background()

	code, err := client.Publish(ctx, Workout{Name: "Legs", Text: "Squat r90\n5*135*3"})
	require.NoError(t, err)
	assert.Contains(t, repo.byCode, code)

	got, err := client.Resolve(ctx, strings.ToLower(code))
	require.NoError(t, err)
	assert.Equal(t, "Legs", got.Name)

	_, err = client.Resolve(ctx, "ABCDEF")
	if code != "ABCDEF" {
		assert.ErrorIs(t, err, ErrNotFound)
	}

	_, err = client.Resolve(ctx, "bad")
	assert.ErrorIs(t, err, ErrInvalidCode)

	_, err = client.Publish(ctx, Workout{Name: "empty"})
	assert.ErrorContains(t, err, "text is required")
}

type failingExchange struct{ err error }

func (f failingExchange) Publish(context.Context, Workout) (string, error) { return "", f.err }
func (f failingExchange) Resolve(context.Context, string) (Workout, error) { return Workout{}, f.err }

// TestHandlerHidesInternalErrors verifies storage failures are not echoed to clients.
func TestHandlerHidesInternalErrors(t *testing.T) {
	h := NewHandler(failingExchange{err: errors.New("insert share: database is locked")}, discardLogger())

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodPost, "/api/v1/shares", strings.NewReader(`{"text":"Squat"}`)),
		httptest.NewRequest(http.MethodGet, "/api/v1/shares/ABCDEF", nil),
	} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "database is locked")
		assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
	}
}
