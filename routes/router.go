package routes

import (
	"time"

	"order-management-service/controllers"
	apperrors "order-management-service/errors"
	"order-management-service/logger"
	"order-management-service/middleware"
	"order-management-service/repository"
	"order-management-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	serviceName    = "order-management-service"
	requestTimeout = 30 * time.Second
)

// Deps is everything the router needs. Only DB is required.
type Deps struct {
	DB                 *gorm.DB
	Logger             *zap.Logger
	Notifier           *services.EventNotifier
	Metrics            middleware.MetricsRecorder
	StaticDir          string
	CORSOrigins        []string
	RateLimitPerMinute int
}

// SetupRouter wires repositories, services and controllers onto a new engine.
func SetupRouter(deps Deps) *gin.Engine {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	clientRepo := repository.NewGormClientRepository(deps.DB)
	productRepo := repository.NewGormProductRepository(deps.DB)
	orderRepo := repository.NewGormOrderRepository(deps.DB)
	itemRepo := repository.NewGormOrderItemRepository(deps.DB)
	objectRepo := repository.NewGormObjectRepository(deps.DB)

	clientSvc := services.NewClientService(clientRepo, deps.Notifier, log)
	productSvc := services.NewProductService(productRepo, deps.Notifier, log)
	orderSvc := services.NewOrderService(orderRepo, deps.Notifier, log)
	itemSvc := services.NewOrderItemService(itemRepo, deps.Notifier, log)
	objectSvc := services.NewObjectService(objectRepo, deps.Notifier, log)

	var health *controllers.HealthController
	if sqlDB, err := deps.DB.DB(); err == nil {
		health = controllers.NewHealthController(sqlDB)
	} else {
		health = controllers.NewHealthController(nil)
	}

	r := gin.New()
	r.Use(
		logger.RequestID(),
		apperrors.Recovery(log),
		middleware.RequestLogger(log),
		middleware.Metrics(deps.Metrics, serviceName),
		middleware.CORS(deps.CORSOrigins),
		middleware.SecurityHeaders(),
		middleware.RateLimit(deps.RateLimitPerMinute),
		middleware.Timeout(requestTimeout),
		apperrors.ErrorMiddleware(log),
	)

	RegisterHealthRoutes(r, health)
	RegisterClientRoutes(r, controllers.NewClientController(clientSvc))
	RegisterProductRoutes(r, controllers.NewProductController(productSvc))
	RegisterOrderRoutes(r, controllers.NewOrderController(orderSvc))
	RegisterOrderItemRoutes(r, controllers.NewOrderItemController(itemSvc))
	RegisterObjectRoutes(r, controllers.NewObjectController(objectSvc))

	r.NoRoute(apperrors.NoRoute(deps.StaticDir))
	return r
}
