package handlers_test

import (
	"github.com/gin-gonic/gin"
	portssvc "github.com/swiftbill/invoicing_app/internal/core/ports/services"
	"github.com/swiftbill/invoicing_app/internal/dto"
	"github.com/swiftbill/invoicing_app/internal/handlers"
	"github.com/swiftbill/invoicing_app/pkg/config"
)

func init() {
	gin.SetMode(gin.TestMode)
	dto.RegisterCustomValidators()
}

// newTestRouter builds an engine with the full route table and the given
// service container. Swagger stays off via the production flag.
func newTestRouter(services *portssvc.ServiceContainer) *gin.Engine {
	r := gin.New()
	cfg := &config.Config{
		RateLimit:    "1000-M",
		IsProduction: true,
	}
	handlers.RegisterRoutes(r, cfg, services)
	return r
}
