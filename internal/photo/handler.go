package photo

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/photofeed/service/internal/docstore"
	"github.com/photofeed/service/internal/response"
)

// Handler holds HTTP handlers for photo endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new photo Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type createPhotoRequest struct {
	Title      string `json:"title"      example:"Sunset Beach"`
	URL        string `json:"url"        example:"http://example.com/sunset.jpg"`
	Caption    string `json:"caption"    example:"Golden hour at the pier"`
	Location   string `json:"location"   example:"Santa Cruz"`
	People     string `json:"people"     example:"ana,bob"`
	Tags       string `json:"tags"       example:"beach,sunset"`
	Visibility string `json:"visibility" example:"public"`
}

type createPhotoResponse struct {
	Message string `json:"message" example:"photo created"`
	Photo   *Photo `json:"photo"`
}

// Create godoc
//
//	@Summary		Create photo
//	@Description	Create a photo from a multipart upload (field "image") or from a JSON body carrying an image URL. People and tags are comma-separated lists.
//	@Tags			photos
//	@Accept			json
//	@Accept			mpfd
//	@Produce		json
//	@Param			request	body		createPhotoRequest	true	"Photo fields (JSON variant)"
//	@Success		201		{object}	createPhotoResponse
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/photos [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeCreateInput(w, r)
	if !ok {
		return
	}

	p, err := h.svc.Create(r.Context(), in)
	switch {
	case err == nil:
		response.Created(w, createPhotoResponse{Message: "photo created", Photo: p})
	case errors.Is(err, ErrMissingTitle), errors.Is(err, ErrMissingMedia):
		response.BadRequest(w, err.Error())
	case errors.Is(err, docstore.ErrConflict):
		// Ids are random uuids; a collision is practically unreachable.
		response.Conflict(w, err.Error())
	default:
		// storage.ErrNotConfigured and transport failures both map to 500.
		response.InternalError(w, err.Error())
	}
}

// decodeCreateInput reads the create request in either of its two shapes.
// Reports false after writing a 400 when the body cannot be decoded.
func decodeCreateInput(w http.ResponseWriter, r *http.Request) (CreateInput, bool) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			response.BadRequest(w, "invalid multipart body")
			return CreateInput{}, false
		}

		in := CreateInput{
			Title:      r.FormValue("title"),
			URL:        r.FormValue("url"),
			Caption:    r.FormValue("caption"),
			Location:   r.FormValue("location"),
			People:     r.FormValue("people"),
			Tags:       r.FormValue("tags"),
			Visibility: r.FormValue("visibility"),
		}

		file, header, err := r.FormFile("image")
		if err == nil {
			defer file.Close()
			in.File = file
			in.FileName = header.Filename
			in.FileSize = header.Size
			in.ContentType = header.Header.Get("Content-Type")
		} else if !errors.Is(err, http.ErrMissingFile) {
			response.BadRequest(w, "invalid image upload")
			return CreateInput{}, false
		}
		return in, true
	}

	var req createPhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return CreateInput{}, false
	}
	return CreateInput{
		Title:      req.Title,
		URL:        req.URL,
		Caption:    req.Caption,
		Location:   req.Location,
		People:     req.People,
		Tags:       req.Tags,
		Visibility: req.Visibility,
	}, true
}

// List godoc
//
//	@Summary		List or search photos
//	@Description	Without q, lists all photos newest first. With q, returns case-insensitive substring matches on title, caption, or location.
//	@Tags			photos
//	@Produce		json
//	@Param			q	query		string	false	"search term"
//	@Success		200	{array}		Photo
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/photos [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	photos, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}
	response.OK(w, photos)
}

// Get godoc
//
//	@Summary		Get photo
//	@Tags			photos
//	@Produce		json
//	@Param			id	path		string	true	"photo id"
//	@Success		200	{object}	Photo
//	@Failure		404	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/photos/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, ErrNotFound) {
		response.NotFound(w, ErrNotFound.Error())
		return
	}
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}
	response.OK(w, p)
}
