package routes

import (
	"ftwallet/internal/api/handlers"
	"ftwallet/internal/api/middleware"
	"ftwallet/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes wires every HTTP endpoint in §6 onto router, bound to deps.
func RegisterRoutes(router *gin.Engine, cfg *config.Config, deps handlers.HandlerDependencies) {
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Prometheus(cfg.Replica.Role))
	router.Use(middleware.RateLimit(cfg))

	router.POST("/deposit", handlers.MakeDepositHandler(deps))
	router.POST("/withdraw", handlers.MakeWithdrawHandler(deps))
	router.POST("/balance", handlers.MakeBalanceHandler(deps))
	router.GET("/health", handlers.MakeHealthHandler(deps))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
