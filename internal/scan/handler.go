package scan

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"skincare-backend/internal/shared/metrics"
	"skincare-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires the scan HTTP route to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches scan routes.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/scan", h.scan)
}

func (h *Handler) scan(c *gin.Context) {
	start := time.Now()
	metrics.IncScanStarted()

	scanID := uuid.NewString()
	c.Set("scanId", scanID)

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)
	data, err := readUpload(c)
	if err != nil {
		metrics.IncScanFailed()
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read uploaded file", nil)
		return
	}
	if len(data) == 0 {
		metrics.IncScanFailed()
		respond.Error(c, http.StatusBadRequest, "validation_error", "no file uploaded", nil)
		return
	}

	result, err := h.Svc.Scan(c.Request.Context(), data)
	if err != nil {
		metrics.IncScanFailed()
		respond.Error(c, http.StatusInternalServerError, "internal", "scan failed", nil)
		return
	}

	c.Set("issueCount", len(result.Issues))
	metrics.IncScanCompleted()
	metrics.ObserveScanDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	respond.OK(c, result)
}

// readUpload accepts either a multipart form with a "file" field or a raw
// request body.
func readUpload(c *gin.Context) ([]byte, error) {
	if fileHeader, err := c.FormFile("file"); err == nil {
		f, err := fileHeader.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}
	if c.Request.Body == nil {
		return nil, nil
	}
	return io.ReadAll(c.Request.Body)
}
