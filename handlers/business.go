package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/invoicely/models"
	"github.com/yourusername/invoicely/services"
)

type BusinessHandler struct {
	business *services.BusinessService
}

func NewBusinessHandler(business *services.BusinessService) *BusinessHandler {
	return &BusinessHandler{business: business}
}

func (h *BusinessHandler) GetProfile(c *gin.Context) {
	profile, err := h.business.Get()
	if err != nil {
		respondError(c, err)
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business profile not set"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *BusinessHandler) SaveProfile(c *gin.Context) {
	var profile models.BusinessProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := h.business.Save(profile)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}
