package rating

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/photofeed/service/internal/photo"
	"github.com/photofeed/service/internal/response"
)

// Handler holds HTTP handlers for rating endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new rating Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type addRatingRequest struct {
	Rating int `json:"rating" example:"4"`
}

type addRatingResponse struct {
	Message string  `json:"message" example:"rating added"`
	Rating  *Rating `json:"rating"`
}

// Add godoc
//
//	@Summary		Add rating
//	@Description	Attach a 1–5 star rating to a photo.
//	@Tags			ratings
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"photo id"
//	@Param			request	body		addRatingRequest	true	"Rating value"
//	@Success		201		{object}	addRatingResponse
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		404		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/photos/{id}/ratings [post]
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var req addRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "rating must be a number")
		return
	}

	rec, err := h.svc.Add(r.Context(), chi.URLParam(r, "id"), req.Rating)
	switch {
	case err == nil:
		response.Created(w, addRatingResponse{Message: "rating added", Rating: rec})
	case errors.Is(err, ErrOutOfRange):
		response.BadRequest(w, err.Error())
	case errors.Is(err, photo.ErrNotFound):
		response.NotFound(w, err.Error())
	default:
		response.InternalError(w, err.Error())
	}
}

// Summarize godoc
//
//	@Summary		Rating summary
//	@Description	Count and mean of a photo's ratings. average is null when the photo has no ratings.
//	@Tags			ratings
//	@Produce		json
//	@Param			id	path		string	true	"photo id"
//	@Success		200	{object}	Summary
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/photos/{id}/ratings/summary [get]
func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}
	response.OK(w, summary)
}
