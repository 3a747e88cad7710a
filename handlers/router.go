package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/invoicely/middleware"
	"github.com/yourusername/invoicely/services"
)

// Services bundles everything the router needs.
type Services struct {
	Invoices  *services.InvoiceService
	Numbering *services.NumberingService
	Clients   *services.ClientService
	Business  *services.BusinessService
	Templates *services.TemplateService
}

// SetupRouter wires every endpoint under /api/v1 plus the health
// check.
func SetupRouter(s Services) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "invoicely-api",
		})
	})

	invoiceHandler := NewInvoiceHandler(s.Invoices, s.Numbering, s.Business)
	clientHandler := NewClientHandler(s.Clients)
	businessHandler := NewBusinessHandler(s.Business)
	templateHandler := NewTemplateHandler(s.Templates)
	settingsHandler := NewSettingsHandler(s.Numbering)

	api := router.Group("/api/v1")
	{
		api.POST("/invoices", invoiceHandler.CreateInvoice)
		api.GET("/invoices", invoiceHandler.ListInvoices)
		api.GET("/invoices/:id", invoiceHandler.GetInvoice)
		api.PUT("/invoices/:id", invoiceHandler.UpdateInvoice)
		api.DELETE("/invoices/:id", invoiceHandler.DeleteInvoice)
		api.POST("/invoices/:id/payments", invoiceHandler.AddPayment)
		api.POST("/invoices/:id/toggle-paid", invoiceHandler.TogglePaid)
		api.POST("/invoices/overdue-sweep", invoiceHandler.OverdueSweep)

		api.POST("/clients", clientHandler.CreateClient)
		api.GET("/clients", clientHandler.ListClients)
		api.GET("/clients/search", clientHandler.SearchClients)
		api.GET("/clients/:id", clientHandler.GetClient)
		api.PUT("/clients/:id", clientHandler.UpdateClient)
		api.DELETE("/clients/:id", clientHandler.DeleteClient)

		api.GET("/business-profile", businessHandler.GetProfile)
		api.PUT("/business-profile", businessHandler.SaveProfile)

		api.POST("/templates", templateHandler.CreateTemplate)
		api.GET("/templates", templateHandler.ListTemplates)
		api.GET("/templates/:id", templateHandler.GetTemplate)
		api.PUT("/templates/:id", templateHandler.UpdateTemplate)
		api.DELETE("/templates/:id", templateHandler.DeleteTemplate)
		api.POST("/templates/:id/duplicate", templateHandler.DuplicateTemplate)

		api.GET("/settings/invoice-number", settingsHandler.GetNumberConfig)
		api.PUT("/settings/invoice-number", settingsHandler.SetNumberConfig)
		api.POST("/settings/invoice-number/next", settingsHandler.NextNumber)
	}

	return router
}
