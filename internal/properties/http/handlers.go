package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	apimw "github.com/spacia-app/property-backend/internal/api/http/middleware"
	"github.com/spacia-app/property-backend/internal/auth"
	"github.com/spacia-app/property-backend/internal/properties/domain"
	"github.com/spacia-app/property-backend/internal/properties/service"
)

// Inquiry emails fan out to listing owners, so the contact route gets a
// small per-client budget.
const (
	contactRPS   = rate.Limit(0.2) // one inquiry per 5s sustained
	contactBurst = 3
)

type Handler struct {
	svc *service.Service
}

func Register(rg *gin.RouterGroup, svc *service.Service) {
	h := &Handler{svc: svc}

	rg.GET("", h.list)
	rg.GET("/myProperties", h.listMine)
	rg.POST("", h.create)
	rg.PUT("/:propertyId", h.update)
	rg.DELETE("/:propertyId", h.deactivate)
	rg.POST("/contact/:propertyId", apimw.RateLimit(contactRPS, contactBurst), h.contactOwner)
	rg.POST("/:propertyId/images", h.attachImage)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "properties": items})
}

func (h *Handler) listMine(c *gin.Context) {
	items, err := h.svc.ListMine(c.Request.Context(), auth.Username(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "properties": items})
}

func (h *Handler) create(c *gin.Context) {
	var draft domain.Property
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	res := h.svc.Create(c.Request.Context(), draft, auth.Username(c))
	c.JSON(statusFor(res, http.StatusCreated), res)
}

func (h *Handler) update(c *gin.Context) {
	id := strings.TrimSpace(c.Param("propertyId"))

	var patch domain.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	res := h.svc.Update(c.Request.Context(), id, patch, auth.Username(c))
	c.JSON(statusFor(res, http.StatusOK), res)
}

func (h *Handler) deactivate(c *gin.Context) {
	id := strings.TrimSpace(c.Param("propertyId"))

	res := h.svc.Deactivate(c.Request.Context(), id, auth.Username(c))
	c.JSON(statusFor(res, http.StatusOK), res)
}

func (h *Handler) contactOwner(c *gin.Context) {
	id := strings.TrimSpace(c.Param("propertyId"))

	res := h.svc.NotifyOwnerOfInterest(c.Request.Context(), id, auth.Username(c))
	c.JSON(statusFor(res, http.StatusCreated), res)
}

type attachImageReq struct {
	FileKey string `json:"fileKey"`
}

// attachImage is the upload-completion callback: storage has finished
// writing the object and reports its key here.
func (h *Handler) attachImage(c *gin.Context) {
	id := strings.TrimSpace(c.Param("propertyId"))

	var req attachImageReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.FileKey) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	if err := h.svc.AttachImage(c.Request.Context(), id, strings.TrimSpace(req.FileKey)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// statusFor translates a lifecycle outcome to an HTTP status, keeping
// the handlers free of any branching beyond this mapping.
func statusFor(res domain.Result, okStatus int) int {
	switch res.Outcome {
	case domain.OutcomeUnauthorized:
		return http.StatusForbidden
	case domain.OutcomeFailure:
		return http.StatusInternalServerError
	default:
		return okStatus
	}
}
