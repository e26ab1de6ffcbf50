package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/skillsnap/skillsnap-server/internal/application"
	"github.com/skillsnap/skillsnap-server/internal/interface/middleware"
	"github.com/skillsnap/skillsnap-server/pkg/response"
	"github.com/skillsnap/skillsnap-server/pkg/validation"
)

type PortfolioHandler struct {
	Svc    *app.PortfolioService
	Logger *logrus.Logger
}

func NewPortfolioHandler(svc *app.PortfolioService, logger *logrus.Logger) *PortfolioHandler {
	return &PortfolioHandler{Svc: svc, Logger: logger}
}

// createItemRequest deliberately has no owner field: the owner is always the
// authenticated caller, taken from validated claims.
type createItemRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"max=2000"`
}

// List GET /api/portfolio (public)
func (h *PortfolioHandler) List(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context())
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("list portfolio items failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "list failed", nil)
		return
	}
	response.Success(c, http.StatusOK, items, "portfolio items", map[string]any{"count": len(items)})
}

// Get GET /api/portfolio/:id (public)
func (h *PortfolioHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "not found", nil)
		return
	}
	item, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, app.ErrItemNotFound) {
			response.Error[any](c, http.StatusNotFound, "not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "get failed", nil)
		return
	}
	response.Success(c, http.StatusOK, item, "portfolio item", nil)
}

// Create POST /api/portfolio (bearer token required)
func (h *PortfolioHandler) Create(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	item, err := h.Svc.Create(c.Request.Context(), req.Title, req.Description, claims.Subject)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "create failed", nil)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/portfolio/%d", item.ID))
	response.Success(c, http.StatusCreated, item, "portfolio item created", nil)
}
