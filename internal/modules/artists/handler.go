package artists

import (
	"errors"
	"net/http"
	"strconv"

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
	rg.GET("/artists", h.ListArtists)
	rg.GET("/artists/:id", h.GetArtist)
}

func (h *Handler) ListArtists(c *gin.Context) {
	profiles, err := h.service.ListArtists(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list artists")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"artists": profiles})
}

func (h *Handler) GetArtist(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid artist ID")
		return
	}

	p, err := h.service.GetArtist(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Artist not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load artist")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"artist": p})
}
