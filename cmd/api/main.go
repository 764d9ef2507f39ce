package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "bike-finance-backend/internal/adapter/http"
	custommw "bike-finance-backend/internal/adapter/middleware"
	"bike-finance-backend/internal/adapter/repository/mysql"
	"bike-finance-backend/internal/config"
	customerDomain "bike-finance-backend/internal/domain/customer"
	loanDomain "bike-finance-backend/internal/domain/loan"
	paymentDomain "bike-finance-backend/internal/domain/payment"
	"bike-finance-backend/internal/infrastructure/cache"
	"bike-finance-backend/internal/infrastructure/db"
	customerUC "bike-finance-backend/internal/usecase/customer"
	loanUC "bike-finance-backend/internal/usecase/loan"
	paymentUC "bike-finance-backend/internal/usecase/payment"
	recoveryUC "bike-finance-backend/internal/usecase/recovery"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(
		&customerDomain.Customer{},
		&customerDomain.Vehicle{},
		&customerDomain.Guarantor{},
		&loanDomain.Loan{},
		&paymentDomain.Payment{},
	); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	uow := mysql.NewGormUoW(gdb)
	loans := loanUC.NewUsecase(uow)
	payments := paymentUC.NewUsecase(uow)
	recovery := recoveryUC.NewUsecase(uow)
	customers := customerUC.NewUsecase(uow)

	h := httpadp.NewHandler()
	lh := httpadp.NewLoanHandler(loans)
	ph := httpadp.NewPaymentHandler(payments)
	rh := httpadp.NewRecoveryHandler(recovery)
	ch := httpadp.NewCustomerHandler(customers)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	e.GET("/health", h.Health)

	api := e.Group("/api")
	api.Use(custommw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	api.GET("/customers", ch.ListCustomers)
	api.POST("/customers", ch.CreateCustomer)
	api.PUT("/customers/:customer_id", ch.UpdateCustomer)
	api.GET("/customer/:customer_id", ch.Profile)

	api.GET("/loans", lh.ListLoans)
	api.POST("/loans", lh.CreateLoan)
	api.GET("/dashboard", lh.Dashboard)

	api.POST("/payments", ph.PostPayment)
	api.GET("/loans/:loan_id/payments", ph.ListPayments)

	api.GET("/loans/:loan_id/overdue", rh.Overdue)
	api.GET("/recovery/:loan_id", rh.RecoveryNotice)
	api.GET("/noc/:loan_id", rh.NOC)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
