package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/invoicely/models"
	"github.com/yourusername/invoicely/services"
)

type ClientHandler struct {
	clients *services.ClientService
}

func NewClientHandler(clients *services.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	client.ID = ""

	created, err := h.clients.Create(client)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.clients.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if client == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.clients.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	if clients == nil {
		clients = []models.Client{}
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) SearchClients(c *gin.Context) {
	clients, err := h.clients.Search(c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	if clients == nil {
		clients = []models.Client{}
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var patch models.ClientPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.clients.Update(c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) DeleteClient(c *gin.Context) {
	if err := h.clients.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
