package main

import (
	"log"
	"os"

	_ "cartool/api/swagger" // swagger docs
	"cartool/internal/handler"
	"cartool/internal/middleware"
	"cartool/internal/repository"
	"cartool/internal/service"
	"cartool/internal/store"
	"cartool/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Internal Audit Management API
// @version         1.0
// @description     Role-based API for audit plans, reports, CAR forms, remediation actions and analytics.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	db, err := store.New()
	if err != nil {
		log.Fatalf("Seeding demo data failed: %v", err)
	}
	log.Println("Demo dataset seeded.")

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	userRepo := repository.NewUserRepository(db)
	planRepo := repository.NewPlanRepository(db)
	reportRepo := repository.NewReportRepository(db)
	carRepo := repository.NewCARRepository(db)
	actionRepo := repository.NewActionRepository(db)
	dueDateRepo := repository.NewDueDateLogRepository(db)

	authService := service.NewAuthService(userRepo)
	navService := service.NewNavigationService()
	planService := service.NewPlanService(planRepo, userRepo, wsHub)
	reportService := service.NewReportService(reportRepo, planRepo, wsHub)
	carService := service.NewCARService(carRepo, reportRepo, userRepo, wsHub)
	actionService := service.NewActionService(actionRepo, carRepo, wsHub)
	dueDateService := service.NewDueDateService(dueDateRepo, actionRepo, wsHub)
	analyticsService := service.NewAnalyticsService(carRepo, actionRepo, planRepo)

	// Initialize Handlers
	authHandler := handler.NewAuthHandler(authService, navService)
	planHandler := handler.NewPlanHandler(planService)
	reportHandler := handler.NewReportHandler(reportService)
	carHandler := handler.NewCARHandler(carService)
	actionHandler := handler.NewActionHandler(actionService)
	dueDateHandler := handler.NewDueDateHandler(dueDateService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	navigationHandler := handler.NewNavigationHandler(navService)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:5174"} // Frontend URL
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	// Register API Routes
	authHandler.RegisterRoutes(router.Group(""))
	planHandler.RegisterRoutes(router.Group(""))
	reportHandler.RegisterRoutes(router.Group(""))
	carHandler.RegisterRoutes(router.Group(""))
	actionHandler.RegisterRoutes(router.Group(""))
	dueDateHandler.RegisterRoutes(router.Group(""))
	analyticsHandler.RegisterRoutes(router.Group(""))
	navigationHandler.RegisterRoutes(router.Group(""))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
