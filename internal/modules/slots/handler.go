package slots

import (
	"errors"
	"net/http"
	"strconv"

	"artistbook/internal/domain"
	"artistbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/slots", h.ResolveSlots)
}

func (h *Handler) ResolveSlots(c *gin.Context) {
	artistID, err := strconv.ParseInt(c.Query("artistId"), 10, 64)
	if err != nil || artistID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "artistId is required")
		return
	}

	from, err := domain.ParseDate(c.Query("from"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "from must be a YYYY-MM-DD date")
		return
	}
	to, err := domain.ParseDate(c.Query("to"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "to must be a YYYY-MM-DD date")
		return
	}

	slots, err := h.service.ResolveSlots(c.Request.Context(), artistID, from, to)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to resolve slots")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"slots": slots})
}
