package comment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/photofeed/service/internal/photo"
	"github.com/photofeed/service/internal/response"
)

// Handler holds HTTP handlers for comment endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new comment Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type addCommentRequest struct {
	AuthorName string `json:"authorName" example:"ana"`
	Text       string `json:"text"       example:"Beautiful light!"`
}

type addCommentResponse struct {
	Message string   `json:"message" example:"comment added"`
	Comment *Comment `json:"comment"`
}

// Add godoc
//
//	@Summary		Add comment
//	@Tags			comments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"photo id"
//	@Param			request	body		addCommentRequest	true	"Comment fields"
//	@Success		201		{object}	addCommentResponse
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		404		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/photos/{id}/comments [post]
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var req addCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	c, err := h.svc.Add(r.Context(), chi.URLParam(r, "id"), req.AuthorName, req.Text)
	switch {
	case err == nil:
		response.Created(w, addCommentResponse{Message: "comment added", Comment: c})
	case errors.Is(err, ErrMissingAuthor), errors.Is(err, ErrMissingText):
		response.BadRequest(w, err.Error())
	case errors.Is(err, photo.ErrNotFound):
		response.NotFound(w, err.Error())
	default:
		response.InternalError(w, err.Error())
	}
}

// List godoc
//
//	@Summary		List comments
//	@Description	All comments on one photo, newest first.
//	@Tags			comments
//	@Produce		json
//	@Param			id	path		string	true	"photo id"
//	@Success		200	{array}		Comment
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/photos/{id}/comments [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	comments, err := h.svc.List(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.InternalError(w, err.Error())
		return
	}
	response.OK(w, comments)
}
