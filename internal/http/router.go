package http

import (
	"github.com/gin-gonic/gin"
	"github.com/iyhunko/treko-inventory/internal/http/controller"
	"github.com/iyhunko/treko-inventory/internal/http/middleware"
)

// Controllers groups the handlers mounted by InitRouter.
type Controllers struct {
	Health  *controller.Controller
	Auth    *controller.AuthController
	Product *controller.ProductController
	// Sessions, when set, tags request logs with the caller's employee code.
	Sessions middleware.SessionParser
}

func InitRouter(server *gin.Engine, ctrs Controllers) *gin.Engine {
	// Apply recovery middleware globally to prevent panics from crashing the server
	server.Use(middleware.Recovery(), middleware.CORS())
	if ctrs.Sessions != nil {
		server.Use(middleware.Identify(ctrs.Sessions))
	}
	server.Use(middleware.Logger())

	server.GET("/health", ctrs.Health.Ping)

	api := server.Group("/api")
	{
		api.POST("/login", ctrs.Auth.Login)

		products := api.Group("/produtos")
		products.GET("", ctrs.Product.ListProducts)
		products.POST("", ctrs.Product.CreateProduct)
		products.PUT("/:id", ctrs.Product.UpdateProduct)
		products.DELETE("/:id", ctrs.Product.DeleteProduct)
	}

	return server
}
