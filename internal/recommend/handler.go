package recommend

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skincare-backend/internal/catalog"
	"skincare-backend/internal/shared/metrics"
	"skincare-backend/internal/shared/server/respond"
)

// Handler serves product recommendations against the catalogue.
type Handler struct {
	Source catalog.Source
	Limit  int
}

// NewHandler constructs a Handler.
func NewHandler(source catalog.Source, limit int) *Handler {
	return &Handler{Source: source, Limit: limit}
}

// RegisterRoutes attaches recommendation routes.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/recommend", h.recommend)
}

type recommendRequest struct {
	Issues  []string       `json:"issues"`
	Answers map[string]any `json:"answers"`
}

func (h *Handler) recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	products, err := h.Source.Load(c.Request.Context())
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respond.Error(c, http.StatusInternalServerError, "catalog_not_found", "product catalogue could not be located", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to load product catalogue", nil)
		return
	}

	ranked := Recommend(req.Issues, req.Answers, products, h.Limit)
	c.Set("productCount", len(ranked))
	metrics.IncRecommendationsServed()
	respond.OK(c, ranked)
}
