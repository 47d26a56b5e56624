package http

import (
	"github.com/gin-gonic/gin"
	"github.com/rescuebite/rescuebite/internal/adapter/config"
	"github.com/rescuebite/rescuebite/internal/core/port"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	orderHandler *OrderHandler,
	packageHandler *PackageHandler,
	balanceHandler *BalanceHandler,
	settlementHandler *SettlementHandler,
	paymentHandler *PaymentHandler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		// Gateway callback; authenticated by the gateway's signature
		// at the edge, not by user tokens.
		api.POST("/payments/callback", paymentHandler.Callback)

		consumer := api.Group("/consumer")
		{
			consumer.Use(authCheck(tokenService, logger), roleCheck(port.RoleConsumer, logger))
			consumer.POST("/orders", orderHandler.CreateOrder)
			consumer.GET("/orders", orderHandler.ListMyOrders)
			consumer.GET("/orders/:id", orderHandler.GetOrder)
			consumer.POST("/orders/:id/cancel", orderHandler.CancelOrder)
		}

		restaurant := api.Group("/restaurant")
		{
			restaurant.Use(authCheck(tokenService, logger), roleCheck(port.RoleRestaurant, logger))
			restaurant.GET("/orders", orderHandler.ListRestaurantOrders)
			restaurant.POST("/orders/:id/ack", orderHandler.AcknowledgeOrder)
			restaurant.POST("/orders/:id/status", orderHandler.Transition)
			restaurant.POST("/packages", packageHandler.CreatePackage)
			restaurant.GET("/packages", packageHandler.ListPackages)
			restaurant.PUT("/packages/:id", packageHandler.UpdatePackage)
			restaurant.POST("/packages/:id/deactivate", packageHandler.DeactivatePackage)
			restaurant.POST("/packages/:id/reactivate", packageHandler.ReactivatePackage)
			restaurant.GET("/balance", balanceHandler.RestaurantBalance)
		}

		ops := api.Group("/ops")
		{
			ops.Use(authCheck(tokenService, logger), roleCheck(port.RoleOperator, logger))
			ops.POST("/settlements/:restaurantId/run", settlementHandler.RunBatch)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
