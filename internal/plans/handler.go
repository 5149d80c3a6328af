package plans

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cvbuilder-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/plans", h.list)
	rg.GET("/plans/:code", h.get)
}

func (h *Handler) list(c *gin.Context) {
	plans, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load plans", nil)
		return
	}
	respond.OK(c, gin.H{"plans": plans})
}

func (h *Handler) get(c *gin.Context) {
	plan, err := h.Svc.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "plan not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load plan", nil)
		return
	}
	respond.OK(c, plan)
}
