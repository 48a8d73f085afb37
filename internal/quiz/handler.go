package quiz

import (
	"github.com/gin-gonic/gin"

	"skincare-backend/internal/shared/server/respond"
)

// StartQuestion is the fixed opener for the consultation quiz.
const StartQuestion = "What’s your main skin issue today?"

// Handler serves the quiz starter.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches quiz routes.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/quiz/start", h.start)
}

func (h *Handler) start(c *gin.Context) {
	respond.OK(c, gin.H{"question": StartQuestion})
}
