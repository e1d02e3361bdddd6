package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fintrack/internal/config"
	"fintrack/internal/db"
	"fintrack/internal/model"
	"fintrack/internal/repository"
)

const (
	demoEmail    = "demo@fintrack.local"
	demoPassword = "demo-password"
)

func main() {
	log.Println("Starting seed script...")

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Income{},
		&model.Expense{},
		&model.Budget{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)

	user, err := userRepo.FindByEmail(ctx, demoEmail)
	if err == gorm.ErrRecordNotFound {
		hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), 10)
		if err != nil {
			log.Fatalf("Failed to hash demo password: %v", err)
		}
		user = &model.User{Email: demoEmail, PasswordHash: string(hash)}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create demo user: %v", err)
		}
		log.Printf("Created demo user %s", demoEmail)
	} else if err != nil {
		log.Fatalf("Failed to look up demo user: %v", err)
	} else {
		log.Printf("Demo user %s already exists, reseeding records", demoEmail)
	}

	year := time.Now().Year()
	incomeRepo := repository.NewIncomeRepository(gormDB)
	expenseRepo := repository.NewExpenseRepository(gormDB)
	budgetRepo := repository.NewBudgetRepository(gormDB)

	incomes := []model.Income{
		{UserID: user.ID, Source: "Salary", Amount: decimal.NewFromInt(50000), IncomeDate: time.Date(year, time.January, 5, 0, 0, 0, 0, time.UTC)},
		{UserID: user.ID, Source: "Salary", Amount: decimal.NewFromInt(50000), IncomeDate: time.Date(year, time.February, 5, 0, 0, 0, 0, time.UTC)},
		{UserID: user.ID, Source: "Freelance", Amount: decimal.NewFromInt(8000), IncomeDate: time.Date(year, time.January, 20, 0, 0, 0, 0, time.UTC)},
	}
	expenses := []model.Expense{
		{UserID: user.ID, Category: "Rent", Amount: decimal.NewFromInt(15000), ExpenseDate: time.Date(year, time.January, 10, 0, 0, 0, 0, time.UTC)},
		{UserID: user.ID, Category: "Groceries", Amount: decimal.NewFromFloat(4250.50), ExpenseDate: time.Date(year, time.January, 14, 0, 0, 0, 0, time.UTC)},
		{UserID: user.ID, Category: "Rent", Amount: decimal.NewFromInt(15000), ExpenseDate: time.Date(year, time.February, 10, 0, 0, 0, 0, time.UTC)},
	}
	budgets := []model.Budget{
		{UserID: user.ID, BudgetMonth: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Format(model.BudgetMonthLayout), BudgetAmount: decimal.NewFromInt(20000)},
		{UserID: user.ID, BudgetMonth: time.Date(year, time.February, 1, 0, 0, 0, 0, time.UTC).Format(model.BudgetMonthLayout), BudgetAmount: decimal.NewFromInt(20000)},
	}

	count := 0
	for i := range incomes {
		if err := incomeRepo.Create(ctx, &incomes[i]); err != nil {
			log.Fatalf("Failed to seed income: %v", err)
		}
		count++
	}
	for i := range expenses {
		if err := expenseRepo.Create(ctx, &expenses[i]); err != nil {
			log.Fatalf("Failed to seed expense: %v", err)
		}
		count++
	}
	for i := range budgets {
		if err := budgetRepo.Create(ctx, &budgets[i]); err != nil {
			log.Fatalf("Failed to seed budget: %v", err)
		}
		count++
	}

	log.Printf("Seed completed: %d records for %s (password %q)", count, demoEmail, demoPassword)
}
