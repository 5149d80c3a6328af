package review

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cvbuilder-backend/internal/cvs"
	"cvbuilder-backend/internal/shared/server/middleware"
	"cvbuilder-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches review routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reviews", h.start)
	rg.GET("/reviews/:id", h.get)
	rg.GET("/reviews/:id/preview", h.preview)
	rg.POST("/reviews/:id/accept", h.accept)
	rg.POST("/reviews/:id/skip", h.skip)
	rg.POST("/reviews/:id/edit", h.edit)
	rg.POST("/reviews/:id/section", h.completeSection)
}

type startRequest struct {
	CVID        string       `json:"cvId"`
	Suggestions []Suggestion `json:"suggestions"`
}

func (h *Handler) start(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.CVID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "cvId is required", nil)
		return
	}

	session, err := h.Svc.Start(c.Request.Context(), userID, req.CVID, req.Suggestions)
	if err != nil {
		switch {
		case errors.Is(err, cvs.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "cv not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "nothing to review", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to start review", nil)
		}
		return
	}
	c.Set("cvId", req.CVID)
	c.Set("sessionId", session.ID)
	respond.JSON(c, http.StatusCreated, toSessionResponse(session, nil))
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Set("sessionId", c.Param("id"))

	session, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to load review")
		return
	}
	var final []Suggestion
	if session.Complete() {
		final = session.FinalSuggestions()
	}
	respond.OK(c, toSessionResponse(session, final))
}

func (h *Handler) preview(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	view, err := h.Svc.Preview(c.Request.Context(), userID, c.Param("id"), c.Query("value"))
	if err != nil {
		h.respondError(c, err, "failed to render preview")
		return
	}
	respond.OK(c, view)
}

func (h *Handler) accept(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	session, final, err := h.Svc.Accept(c.Request.Context(), userID, c.Param("id"))
	h.respondAdvance(c, session, final, err)
}

func (h *Handler) skip(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	session, final, err := h.Svc.Skip(c.Request.Context(), userID, c.Param("id"))
	h.respondAdvance(c, session, final, err)
}

type editRequest struct {
	Suggested string `json:"suggested"`
}

func (h *Handler) edit(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req editRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	session, final, err := h.Svc.Edit(c.Request.Context(), userID, c.Param("id"), req.Suggested)
	h.respondAdvance(c, session, final, err)
}

type sectionRequest struct {
	Data json.RawMessage `json:"data"`
}

func (h *Handler) completeSection(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req sectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	session, final, err := h.Svc.CompleteSection(c.Request.Context(), userID, c.Param("id"), req.Data)
	h.respondAdvance(c, session, final, err)
}

func (h *Handler) respondAdvance(c *gin.Context, session Session, final []Suggestion, err error) {
	c.Set("sessionId", c.Param("id"))
	if err != nil {
		h.respondError(c, err, "failed to advance review")
		return
	}
	c.Set("cvId", session.CVID)
	respond.OK(c, toSessionResponse(session, final))
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "review session not found", nil)
	case errors.Is(err, cvs.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "cv not found", nil)
	case errors.Is(err, ErrSessionComplete):
		respond.Error(c, http.StatusConflict, "session_complete", "review session already complete", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
