package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "fintrack/docs" // swagger docs

	"fintrack/internal/auth"
	"fintrack/internal/cache"
	"fintrack/internal/config"
	"fintrack/internal/db"
	"fintrack/internal/handler"
	"fintrack/internal/model"
	"fintrack/internal/repository"
	"fintrack/internal/router"
	"fintrack/internal/service"
)

// @title Finance Tracker API
// @version 1.0
// @description Personal finance tracker API: per-user income, expense, and budget records with monthly statistics.
// @host localhost:5000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Income{},
		&model.Expense{},
		&model.Budget{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	incomeRepo := repository.NewIncomeRepository(gormDB)
	expenseRepo := repository.NewExpenseRepository(gormDB)
	budgetRepo := repository.NewBudgetRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	incomeService := service.NewIncomeService(incomeRepo, cacheClient)
	expenseService := service.NewExpenseService(expenseRepo, cacheClient)
	budgetService := service.NewBudgetService(budgetRepo, cacheClient)
	statsService := service.NewStatsService(incomeRepo, expenseRepo, budgetRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	incomeHandler := handler.NewIncomeHandler(incomeService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	budgetHandler := handler.NewBudgetHandler(budgetService)
	statsHandler := handler.NewStatsHandler(statsService)

	// Register routes
	router.Register(
		e,
		jwtService,
		authHandler,
		incomeHandler,
		expenseHandler,
		budgetHandler,
		statsHandler,
	)

	log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
