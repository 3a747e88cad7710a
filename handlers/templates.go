package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/invoicely/models"
	"github.com/yourusername/invoicely/services"
)

type TemplateHandler struct {
	templates *services.TemplateService
}

func NewTemplateHandler(templates *services.TemplateService) *TemplateHandler {
	return &TemplateHandler{templates: templates}
}

func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var tpl models.Template
	if err := c.ShouldBindJSON(&tpl); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tpl.ID = ""

	created, err := h.templates.Create(tpl)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	tpl, err := h.templates.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if tpl == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}
	c.JSON(http.StatusOK, tpl)
}

func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	templates, err := h.templates.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	if templates == nil {
		templates = []models.Template{}
	}
	c.JSON(http.StatusOK, templates)
}

func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	var patch models.TemplatePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tpl, err := h.templates.Update(c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	if err := h.templates.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TemplateHandler) DuplicateTemplate(c *gin.Context) {
	tpl, err := h.templates.Duplicate(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tpl)
}
