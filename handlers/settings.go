package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/invoicely/models"
	"github.com/yourusername/invoicely/services"
)

type SettingsHandler struct {
	numbering *services.NumberingService
}

func NewSettingsHandler(numbering *services.NumberingService) *SettingsHandler {
	return &SettingsHandler{numbering: numbering}
}

func (h *SettingsHandler) GetNumberConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.numbering.Config())
}

func (h *SettingsHandler) SetNumberConfig(c *gin.Context) {
	var cfg models.InvoiceNumberConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if cfg.StartNumber < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start number must be at least 1", "field": "start_number"})
		return
	}
	if cfg.Padding < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "padding cannot be negative", "field": "padding"})
		return
	}

	if err := h.numbering.SetConfig(cfg); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.numbering.Config())
}

// NextNumber consumes and returns the next number in the sequence.
func (h *SettingsHandler) NextNumber(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"invoice_number": h.numbering.GenerateNextNumber()})
}
