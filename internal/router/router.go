// Package router assembles the HTTP engine: middleware, ledger routes, health,
// metrics and API docs.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"splitledger/internal/config"
	_ "splitledger/internal/docs" // Import swagger docs
	"splitledger/internal/handlers"
	"splitledger/internal/middleware"
	"splitledger/internal/services"
	"splitledger/internal/validator"
)

// New builds the gin engine serving the ledger backed by db.
func New(db *gorm.DB, cfg *config.Config) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.Register()

	// Initialize services
	personService := services.NewPersonService(db)
	expenseService := services.NewExpenseService(db)
	auditService := services.NewAuditService()

	// Initialize handlers
	personHandler := handlers.NewPersonHandler(personService, auditService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)

	router := gin.New()
	router.Use(middleware.RequestLogging())
	router.Use(middleware.Recovery())
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.NoRoute(middleware.RouteNotFound())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", healthCheck(db))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	people := router.Group("/people")
	people.GET("", personHandler.ListPeople)
	people.POST("", personHandler.CreatePerson)
	people.GET("/:id", personHandler.GetPerson)
	people.PUT("/:id", personHandler.UpdatePerson)
	people.DELETE("/:id", personHandler.DeletePerson)

	expenses := router.Group("/expenses")
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("/:id", expenseHandler.GetExpense)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	return router
}

// healthCheck reports ok when the database answers a ping.
func healthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
