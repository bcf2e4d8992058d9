package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/ledgerline/ledgerline/internal/core/domain"
	portssvc "github.com/ledgerline/ledgerline/internal/core/ports/services"
	"github.com/ledgerline/ledgerline/internal/importer"
)

// RegisterHandlers mounts every route group on the router.
func RegisterHandlers(router *gin.Engine, services *portssvc.ServiceContainer, registry *importer.Registry) {
	registerValidations()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	accountHandler := NewAccountHandler(services.Account)
	accounts := api.Group("/accounts")
	{
		accounts.POST("", accountHandler.CreateAccount)
		accounts.GET("", accountHandler.ListAccounts)
		accounts.GET("/:id", accountHandler.GetAccount)
		accounts.GET("/:id/records", accountHandler.ListRecords)
		accounts.GET("/:id/assets", accountHandler.ListAssets)
		accounts.GET("/:id/assets/:assetID", accountHandler.GetAsset)
	}

	ingestHandler := NewIngestHandler(services.Ingestion, registry)
	api.POST("/accounts/:id/ingest", ingestHandler.IngestStatement)
}

// registerValidations adds the change-type check to gin's binding validator.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("changetype", func(fl validator.FieldLevel) bool {
			return domain.RecordChangeType(fl.Field().String()).IsValid()
		})
	}
}
