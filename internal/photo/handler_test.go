package photo

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
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
	r.Post("/photos", h.Create)
	r.Get("/photos", h.List)
	r.Get("/photos/{id}", h.Get)
	return r
}

func TestCreatePhotoJSON(t *testing.T) {
	r := newTestRouter(NewService(newFakeStore(), nil))

	body := `{"title":"Sunset","url":"http://x/a.jpg","tags":"beach,sunset"}`
	req := httptest.NewRequest(http.MethodPost, "/photos", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Message string `json:"message"`
		Photo   Photo  `json:"photo"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "photo created", resp.Message)
	assert.NotEmpty(t, resp.Photo.ID)
	assert.Equal(t, "public", resp.Photo.Visibility)
	assert.False(t, resp.Photo.CreatedAt.IsZero())
	assert.Equal(t, []string{"beach", "sunset"}, resp.Photo.Tags)
}

func TestCreatePhotoWithoutMedia(t *testing.T) {
	r := newTestRouter(NewService(newFakeStore(), nil))

	req := httptest.NewRequest(http.MethodPost, "/photos", strings.NewReader(`{"title":"Sunset"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestCreatePhotoWithoutTitle(t *testing.T) {
	r := newTestRouter(NewService(newFakeStore(), nil))

	req := httptest.NewRequest(http.MethodPost, "/photos", strings.NewReader(`{"url":"http://x/a.jpg"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePhotoMultipartUpload(t *testing.T) {
	media := &fakeMedia{}
	r := newTestRouter(NewService(newFakeStore(), media))

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "Sunset"))
	fw, err := mw.CreateFormFile("image", "a.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte("jpeg bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/photos", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, media.saved, 1)
	assert.Contains(t, rec.Body.String(), "http://cdn.local/key-a.jpg")
}

func TestGetPhotoNotFound(t *testing.T) {
	r := newTestRouter(NewService(newFakeStore(), nil))

	req := httptest.NewRequest(http.MethodGet, "/photos/ghost", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListPhotos(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, nil)
	r := newTestRouter(svc)

	_, err := svc.Create(context.Background(), CreateInput{Title: "Sunset", URL: "http://x/a.jpg"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/photos", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var photos []Photo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &photos))
	require.Len(t, photos, 1)
	assert.Equal(t, "Sunset", photos[0].Title)
}
