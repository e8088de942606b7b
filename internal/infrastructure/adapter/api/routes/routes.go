package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/tip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/tip-processor/internal/infrastructure/adapter/gateway/mpesa"
)

// Handlers groups everything the router dispatches to
type Handlers struct {
	Transactions *handler.TransactionHandler
	Withdrawals  *handler.WithdrawalHandler
	Callbacks    *handler.CallbackHandler
	Events       *handler.EventHandler
	Health       *handler.HealthHandler
	Metrics      http.Handler // nil disables /metrics
	MetricsPath  string
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/healthz", h.Health.Health)
	if h.Metrics != nil {
		path := h.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		router.GET(path, gin.WrapH(h.Metrics))
	}

	payments := router.Group("/payments")
	{
		payments.POST("/tips", h.Transactions.InitiateTip)
		payments.GET("/tips/:transactionId/status", h.Transactions.CheckStatus)
	}

	creators := router.Group("/creators/:creatorId")
	{
		creators.GET("/transactions", h.Transactions.ListByCreator)
		creators.GET("/balance", h.Withdrawals.GetBalance)
		creators.GET("/withdrawals", h.Withdrawals.List)
		creators.POST("/withdrawals", h.Withdrawals.Create)
		creators.GET("/events", h.Events.Stream)
	}

	// gateway webhooks; paths must match the callback URLs sent with each request
	router.POST(mpesa.PushCallbackPath, h.Callbacks.PushCallback)
	router.POST(mpesa.PayoutResultPath, h.Callbacks.PayoutResult)
	router.POST(mpesa.PayoutTimeoutPath, h.Callbacks.PayoutTimeout)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, metrics coreport.Metrics, allowedOrigins []string) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics(metrics))
	router.Use(middleware.Logger(logger, "/healthz"))
	router.Use(middleware.CORS(allowedOrigins...))
	router.Use(middleware.ErrorHandler(logger))
}
