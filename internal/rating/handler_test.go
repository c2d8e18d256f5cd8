package rating

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(svc *Service) *chi.Mux {
	h := NewHandler(svc)
	r := chi.NewRouter()
	r.Post("/photos/{id}/ratings", h.Add)
	r.Get("/photos/{id}/ratings/summary", h.Summarize)
	return r
}

func postRating(t *testing.T, r http.Handler, photoID, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/photos/"+photoID+"/ratings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAddRatingHTTP(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeProbe{known: map[string]bool{"p1": true}})
	r := newTestRouter(svc)

	rec := postRating(t, r, "p1", `{"rating":3}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rating added"`)
}

func TestAddRatingRejectsBadValues(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeProbe{known: map[string]bool{"p1": true}})
	r := newTestRouter(svc)

	for _, body := range []string{`{"rating":0}`, `{"rating":6}`, `{"rating":"three"}`, `not json`} {
		rec := postRating(t, r, "p1", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestAddRatingUnknownPhotoHTTP(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeProbe{known: map[string]bool{}})
	r := newTestRouter(svc)

	rec := postRating(t, r, "ghost", `{"rating":3}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSummaryHTTP(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeProbe{known: map[string]bool{"p1": true}})
	r := newTestRouter(svc)

	get := func() map[string]json.RawMessage {
		req := httptest.NewRequest(http.MethodGet, "/photos/p1/ratings/summary", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return body
	}

	body := get()
	assert.JSONEq(t, `null`, string(body["average"]), "average is null with no ratings")
	assert.JSONEq(t, `0`, string(body["count"]))

	_, err := svc.Add(context.Background(), "p1", 4)
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), "p1", 2)
	require.NoError(t, err)

	body = get()
	assert.JSONEq(t, `3`, string(body["average"]))
	assert.JSONEq(t, `2`, string(body["count"]))
	assert.JSONEq(t, `"p1"`, string(body["photoId"]))
}
