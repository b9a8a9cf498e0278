package handlers

import (
	"github.com/SscSPs/truck_invoice_app/cmd/docs"
	portssvc "github.com/SscSPs/truck_invoice_app/internal/core/ports/services"
	"github.com/SscSPs/truck_invoice_app/internal/middleware"
	"github.com/SscSPs/truck_invoice_app/internal/platform/config"
	"github.com/SscSPs/truck_invoice_app/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
	ping PingFunc,
) {
	RegisterValidators()

	// Add health check route
	r.GET("/health", healthHandler(ping))

	setupAPIRoutes(r, services, posthogClient)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the /api group and delegates to specific entity route registrations
func setupAPIRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	api := r.Group("/api", middleware.PosthogMiddleware(posthogClient))

	RegisterTruckRoutes(api, services.Truck)
	RegisterCustomerRoutes(api, services.Customer)
	RegisterInvoiceRoutes(api, services.Invoice)
	RegisterInvoiceDetailRoutes(api, services.InvoiceDetail)
	RegisterDashboardRoutes(api, services.Reporting)
	RegisterExportRoutes(api, services.Export, posthogClient)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
